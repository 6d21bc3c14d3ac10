package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/asher09/me-api/internal/application/usecase/search"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type SearchHandler struct {
	searchUseCase    *searchUC.SearchUseCase
	defaultProfileID int64
	logger           logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, defaultProfileID int64, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase:    uc,
		defaultProfileID: defaultProfileID,
		logger:           log,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Error(apperror.NewInvalidInput("'q' query param is required", nil))
		return
	}

	input := searchUC.SearchInput{
		ProfileID: h.defaultProfileID,
		Query:     query,
	}

	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	// An empty combined result is still a 200; nothing matched is not an
	// error condition.
	c.JSON(http.StatusOK, ToSearchResponseDTO(output.Result))
}
