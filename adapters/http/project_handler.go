package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	projectUC "github.com/asher09/me-api/internal/application/usecase/project"
	"github.com/asher09/me-api/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	defaultProfileID    int64
	logger              logger.Logger
}

func NewProjectHandler(listUC *projectUC.ListProjectsUseCase, defaultProfileID int64, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		defaultProfileID:    defaultProfileID,
		logger:              log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	input := projectUC.ListProjectsInput{
		ProfileID: h.defaultProfileID,
		Skill:     c.Query("skill"),
		Page:      page,
		Limit:     limit,
	}

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectSummaryDTOs(output.Projects))
}
