package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileUC "github.com/asher09/me-api/internal/application/usecase/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/pkg/apperror"
	"github.com/asher09/me-api/pkg/logger"
)

type ProfileHandler struct {
	getProfileUseCase    *profileUC.GetProfileUseCase
	createProfileUseCase *profileUC.CreateProfileUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	defaultProfileID     int64
	logger               logger.Logger
}

func NewProfileHandler(
	getUC *profileUC.GetProfileUseCase,
	createUC *profileUC.CreateProfileUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	defaultProfileID int64,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getUC,
		createProfileUseCase: createUC,
		updateProfileUseCase: updateUC,
		defaultProfileID:     defaultProfileID,
		logger:               log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	input := profileUC.GetProfileInput{ProfileID: h.defaultProfileID}
	output, err := h.getProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToCompositeProfileDTO(output.Profile))
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and email are required", err))
		return
	}

	input := profileUC.CreateProfileInput{
		Name:         req.Name,
		Email:        req.Email,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		PortfolioURL: req.PortfolioURL,
		Projects:     toDomainDrafts(req.Projects),
	}

	output, err := h.createProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile id", err))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and email are required", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		ProfileID:    profileID,
		Name:         req.Name,
		Email:        req.Email,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		PortfolioURL: req.PortfolioURL,
	}
	if req.Projects != nil {
		input.ReplaceProjects = true
		input.Projects = toDomainDrafts(*req.Projects)
	} else {
		input.Projects = []project.Draft{}
	}

	output, err := h.updateProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
