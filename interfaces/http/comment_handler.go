package http

import (
	"net/http"

	"vidhub/domain/dto"
	"vidhub/usecase"

	"github.com/gin-gonic/gin"
)

type ICommentHandler interface {
	Add(c *gin.Context)
	Delete(c *gin.Context)
}

type CommentHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewCommentHandler(videoUsecase usecase.IVideoUsecase) ICommentHandler {
	return &CommentHandler{videoUsecase: videoUsecase}
}

func (commentHandler *CommentHandler) Add(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.ReqAddComment
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	detail, err := commentHandler.videoUsecase.AddComment(c.Request.Context(), userID, c.Param("videoId"), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (commentHandler *CommentHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	detail, err := commentHandler.videoUsecase.DeleteComment(c.Request.Context(), userID, c.Param("videoId"), c.Param("commentId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
