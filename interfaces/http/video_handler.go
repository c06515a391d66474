package http

import (
	"net/http"

	"vidhub/domain/dto"
	"vidhub/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	Upload(c *gin.Context)
	GetAll(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ToggleLike(c *gin.Context)
	ToggleDislike(c *gin.Context)
	AddView(c *gin.Context)
	AddToHistory(c *gin.Context)
	ToggleWatchLater(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (videoHandler *VideoHandler) Upload(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqUploadVideo
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.Upload(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (videoHandler *VideoHandler) GetAll(c *gin.Context) {
	videos, err := videoHandler.videoUsecase.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (videoHandler *VideoHandler) Get(c *gin.Context) {
	detail, err := videoHandler.videoUsecase.Get(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (videoHandler *VideoHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqUpdateVideo
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	video, err := videoHandler.videoUsecase.Update(c.Request.Context(), userID, c.Param("videoId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (videoHandler *VideoHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := videoHandler.videoUsecase.Delete(c.Request.Context(), userID, c.Param("videoId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

func (videoHandler *VideoHandler) ToggleLike(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	status, err := videoHandler.videoUsecase.ToggleLike(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (videoHandler *VideoHandler) ToggleDislike(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	status, err := videoHandler.videoUsecase.ToggleDislike(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (videoHandler *VideoHandler) AddView(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	views, err := videoHandler.videoUsecase.AddView(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": views})
}

func (videoHandler *VideoHandler) AddToHistory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	history, err := videoHandler.videoUsecase.AddToHistory(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (videoHandler *VideoHandler) ToggleWatchLater(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	saved, err := videoHandler.videoUsecase.ToggleWatchLater(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
