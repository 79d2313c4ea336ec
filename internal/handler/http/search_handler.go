package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/handler/http/dto"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type SearchHandler struct {
	searchUsecase usecasecontract.ISearchUseCase
}

func NewSearchHandler(searchUsecase usecasecontract.ISearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
	}
}

// SearchHandler handles GET /search?query=...&type=...
// The requester is optional; private playlists only surface for their owner.
func (h *SearchHandler) SearchContentHandler(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	requesterID, _ := currentUserID(c)
	results, err := h.searchUsecase.Search(c.Request.Context(), q.Query, q.Type, requesterID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, results)
}
