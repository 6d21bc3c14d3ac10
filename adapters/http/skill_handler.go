package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/asher09/me-api/internal/application/usecase/skill"
	"github.com/asher09/me-api/pkg/logger"
)

type SkillHandler struct {
	topSkillsUseCase *skillUC.TopSkillsUseCase
	logger           logger.Logger
}

func NewSkillHandler(topUC *skillUC.TopSkillsUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{topSkillsUseCase: topUC, logger: log}
}

func (h *SkillHandler) TopSkills(c *gin.Context) {
	output, err := h.topSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToTopSkillDTOs(output.Skills))
}
