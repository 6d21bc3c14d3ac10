package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asher09/me-api/pkg/logger"
)

// NewRouter wires the full HTTP surface. Kept out of main so handler tests
// can run the exact production routing.
func NewRouter(
	profileHandler *ProfileHandler,
	projectHandler *ProjectHandler,
	skillHandler *SkillHandler,
	searchHandler *SearchHandler,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(ErrorMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.GET("/profile", profileHandler.GetProfile)
	router.POST("/profile", profileHandler.CreateProfile)
	router.PUT("/profile/:id", profileHandler.UpdateProfile)

	router.GET("/projects", projectHandler.ListProjects)
	router.GET("/skills/top", skillHandler.TopSkills)
	router.GET("/search", searchHandler.Search)

	return router
}
