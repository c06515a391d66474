package http

import (
	"net/http"

	"vidhub/usecase"

	"github.com/gin-gonic/gin"
)

type ISearchHandler interface {
	Suggest(c *gin.Context)
	Search(c *gin.Context)
}

type SearchHandler struct {
	searchUsecase usecase.ISearchUsecase
}

func NewSearchHandler(searchUsecase usecase.ISearchUsecase) ISearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

func (searchHandler *SearchHandler) Suggest(c *gin.Context) {
	entries, err := searchHandler.searchUsecase.Suggest(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (searchHandler *SearchHandler) Search(c *gin.Context) {
	result, err := searchHandler.searchUsecase.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
