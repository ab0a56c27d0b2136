package app

import (
	"context"

	"performx/internal/absence"
	"performx/internal/analytics"
	"performx/internal/assessment"
	"performx/internal/auth"
	"performx/internal/backup"
	"performx/internal/config"
	"performx/internal/employee"
	"performx/internal/events"
	"performx/internal/goal"
	"performx/internal/insight"
	"performx/internal/middleware"
	"performx/internal/note"
	"performx/internal/rbac"
	"performx/internal/review"
	"performx/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type registryDeps struct {
	sync      *syncer.Syncer
	pg        *gorm.DB
	redis     *redis.Client
	publisher events.Publisher
	logger    *zap.Logger
}

// moduleRepos exposes the repositories the shell needs after registration
// (seeding runs against them).
type moduleRepos struct {
	employeeRepo employee.Repository
	configRepo   config.Repository
	authRepo     auth.Repository
}

func registerModules(router *gin.Engine, deps registryDeps) (moduleRepos, error) {
	logger := deps.logger

	// --- Repositories ---
	employeeRepo := employee.NewRepository(deps.sync)
	configRepo := config.NewRepository(deps.sync)
	authRepo := auth.NewRepository(deps.pg)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return moduleRepos{}, err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, logger)
	employeeService := employee.NewService(employeeRepo, deps.publisher, logger)
	goalService := goal.NewService(employeeRepo, logger)
	reviewService := review.NewService(employeeRepo, logger)
	absenceService := absence.NewService(employeeRepo, logger)
	assessmentService := assessment.NewService(employeeRepo, logger)
	noteService := note.NewService(employeeRepo, logger)
	configService := config.NewService(configRepo, logger)
	analyticsService := analytics.NewService(employeeRepo, deps.redis, logger)
	backupService := backup.NewService(employeeRepo, configRepo, deps.sync, deps.publisher, logger)

	generator, err := insight.NewGeneratorFromEnv(context.Background())
	if err != nil {
		return moduleRepos{}, err
	}
	insightService := insight.NewService(generator, employeeRepo, analyticsService, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	goalHandler := goal.NewHandler(goalService, logger)
	reviewHandler := review.NewHandler(reviewService, logger)
	absenceHandler := absence.NewHandler(absenceService, logger)
	assessmentHandler := assessment.NewHandler(assessmentService, logger)
	noteHandler := note.NewHandler(noteService, logger)
	configHandler := config.NewHandler(configService, logger)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)
	backupHandler := backup.NewHandler(backupService, logger)
	insightHandler := insight.NewHandler(insightService, logger)
	syncHandler := syncer.NewHandler(deps.sync)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		goal.RegisterRoutes(api, goalHandler, rbacService, logger)
		review.RegisterRoutes(api, reviewHandler, rbacService, logger)
		absence.RegisterRoutes(api, absenceHandler, rbacService, logger)
		assessment.RegisterRoutes(api, assessmentHandler, rbacService, logger)
		note.RegisterRoutes(api, noteHandler, rbacService, logger)
		config.RegisterRoutes(api, configHandler, rbacService, logger)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService, logger)
		backup.RegisterRoutes(api, backupHandler, rbacService, logger)
		insight.RegisterRoutes(api, insightHandler, rbacService, logger)
		syncer.RegisterRoutes(api, syncHandler, rbacService, logger)
	}

	// Legacy proxy path, outside the v1 group.
	insight.RegisterRelayRoute(router, insightHandler, rbacService, logger)

	return moduleRepos{
		employeeRepo: employeeRepo,
		configRepo:   configRepo,
		authRepo:     authRepo,
	}, nil
}
