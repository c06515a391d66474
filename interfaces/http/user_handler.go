package http

import (
	"net/http"

	"vidhub/domain/dto"
	"vidhub/usecase"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	CheckEmail(c *gin.Context)
	ForgetPassword(c *gin.Context)
	GetProfile(c *gin.Context)
	SetDefaultChannel(c *gin.Context)
	GetHistory(c *gin.Context)
	ClearHistory(c *gin.Context)
	RemoveFromHistory(c *gin.Context)
	GetLikedVideos(c *gin.Context)
	RemoveFromLikedVideos(c *gin.Context)
	GetWatchLater(c *gin.Context)
	RemoveFromWatchLater(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (userHandler *UserHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := userHandler.userUsecase.Register(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := userHandler.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (userHandler *UserHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	exists, err := userHandler.userUsecase.CheckEmail(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (userHandler *UserHandler) ForgetPassword(c *gin.Context) {
	var req dto.ReqForgetPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := userHandler.userUsecase.ForgetPassword(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (userHandler *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	profile, err := userHandler.userUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (userHandler *UserHandler) SetDefaultChannel(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqSetDefaultChannel
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	profile, err := userHandler.userUsecase.SetDefaultChannel(c.Request.Context(), userID, req.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (userHandler *UserHandler) GetHistory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videos, err := userHandler.userUsecase.GetHistory(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (userHandler *UserHandler) ClearHistory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := userHandler.userUsecase.ClearHistory(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "History cleared"})
}

func (userHandler *UserHandler) RemoveFromHistory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, err := bson.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := userHandler.userUsecase.RemoveFromHistory(c.Request.Context(), userID, videoID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from history"})
}

func (userHandler *UserHandler) GetLikedVideos(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videos, err := userHandler.userUsecase.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (userHandler *UserHandler) RemoveFromLikedVideos(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, err := bson.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := userHandler.userUsecase.RemoveFromLikedVideos(c.Request.Context(), userID, videoID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from liked videos"})
}

func (userHandler *UserHandler) GetWatchLater(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videos, err := userHandler.userUsecase.GetWatchLater(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (userHandler *UserHandler) RemoveFromWatchLater(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	videoID, err := bson.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		writeBindError(c, err)
		return
	}
	if err := userHandler.userUsecase.RemoveFromWatchLater(c.Request.Context(), userID, videoID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from watch later"})
}
