package http

import (
	"context"
	"net/http"

	"vidhub/domain/dto"
	"vidhub/usecase"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylistHandler interface {
	Create(c *gin.Context)
	GetMine(c *gin.Context)
	AddVideo(c *gin.Context)
	RemoveVideo(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (playlistHandler *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqCreatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	playlist, err := playlistHandler.playlistUsecase.CreateOrAppend(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

func (playlistHandler *PlaylistHandler) GetMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	playlists, err := playlistHandler.playlistUsecase.GetForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

func (playlistHandler *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistHandler.mutateVideos(c, playlistHandler.playlistUsecase.AddVideo)
}

func (playlistHandler *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistHandler.mutateVideos(c, playlistHandler.playlistUsecase.RemoveVideo)
}

func (playlistHandler *PlaylistHandler) mutateVideos(
	c *gin.Context,
	op func(ctx context.Context, caller, playlistID bson.ObjectID, videoPublicID string) (dto.PlaylistDetail, error),
) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	playlistID, err := bson.ObjectIDFromHex(c.Param("playlistId"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req dto.ReqPlaylistVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	detail, err := op(c.Request.Context(), userID, playlistID, req.VideoID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (playlistHandler *PlaylistHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	playlistID, err := bson.ObjectIDFromHex(c.Param("playlistId"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	var req dto.ReqUpdatePlaylist
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	detail, err := playlistHandler.playlistUsecase.Update(c.Request.Context(), userID, playlistID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (playlistHandler *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	playlistID, err := bson.ObjectIDFromHex(c.Param("playlistId"))
	if err != nil {
		writeBindError(c, err)
		return
	}

	if err := playlistHandler.playlistUsecase.Delete(c.Request.Context(), userID, playlistID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
}
