package http

import (
	"net/http"

	"vidhub/domain/dto"
	"vidhub/usecase"

	"github.com/gin-gonic/gin"
)

type IChannelHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	GetMine(c *gin.Context)
	Delete(c *gin.Context)
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
	GetSubscribed(c *gin.Context)
}

type ChannelHandler struct {
	channelUsecase usecase.IChannelUsecase
}

func NewChannelHandler(channelUsecase usecase.IChannelUsecase) IChannelHandler {
	return &ChannelHandler{channelUsecase: channelUsecase}
}

func (channelHandler *ChannelHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqCreateChannel
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	channel, err := channelHandler.channelUsecase.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}

func (channelHandler *ChannelHandler) Get(c *gin.Context) {
	detail, err := channelHandler.channelUsecase.Get(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (channelHandler *ChannelHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqUpdateChannel
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := channelHandler.channelUsecase.Update(c.Request.Context(), userID, c.Param("channelId"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (channelHandler *ChannelHandler) GetMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	channels, err := channelHandler.channelUsecase.GetMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

func (channelHandler *ChannelHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	result, err := channelHandler.channelUsecase.Delete(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (channelHandler *ChannelHandler) Subscribe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	count, err := channelHandler.channelUsecase.Subscribe(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResSubscribe{Message: "Subscribed", Subscribers: count})
}

func (channelHandler *ChannelHandler) Unsubscribe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	count, err := channelHandler.channelUsecase.Unsubscribe(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ResSubscribe{Message: "Unsubscribed", Subscribers: count})
}

func (channelHandler *ChannelHandler) GetSubscribed(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	channels, err := channelHandler.channelUsecase.GetSubscribed(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}
