package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/asher09/me-api/adapters/event"
	httpAdapter "github.com/asher09/me-api/adapters/http"
	"github.com/asher09/me-api/adapters/persistence"
	profileUC "github.com/asher09/me-api/internal/application/usecase/profile"
	projectUC "github.com/asher09/me-api/internal/application/usecase/project"
	searchUC "github.com/asher09/me-api/internal/application/usecase/search"
	skillUC "github.com/asher09/me-api/internal/application/usecase/skill"
	"github.com/asher09/me-api/internal/config"
	"github.com/asher09/me-api/internal/domain/skill"
	"github.com/asher09/me-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Me-API server...", zap.String("env", cfg.App.Env))

	if err := persistence.RunMigrations(cfg.DB.DSN); err != nil {
		appLogger.Fatal("cannot run migrations", err)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Cache and events are optional: leave the address/brokers empty and
	// the service runs on Postgres alone.
	var topCache skill.TopCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		topCache = persistence.NewRedisTopSkillsCache(redisClient, cfg.Redis.CacheTTL, appLogger)
	} else {
		appLogger.Info("Redis address not configured, top-skills cache disabled.")
	}

	var events *event.ProfileEventProducer
	if len(cfg.Kafka.Brokers) > 0 {
		events, err = event.NewProfileEventProducer(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka producer", err)
		}
		defer events.Close()
	} else {
		appLogger.Info("Kafka brokers not configured, profile events disabled.")
	}

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)

	// Use cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	createProfileUseCase := profileUC.NewCreateProfileUseCase(profileRepo, topCache, events, appLogger)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, topCache, events, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	topSkillsUseCase := skillUC.NewTopSkillsUseCase(skillRepo, topCache, appLogger)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, appLogger)

	// HTTP handlers
	profileHandler := httpAdapter.NewProfileHandler(
		getProfileUseCase,
		createProfileUseCase,
		updateProfileUseCase,
		cfg.App.ProfileID,
		appLogger,
	)
	projectHandler := httpAdapter.NewProjectHandler(listProjectsUseCase, cfg.App.ProfileID, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(topSkillsUseCase, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, cfg.App.ProfileID, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(profileHandler, projectHandler, skillHandler, searchHandler, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
