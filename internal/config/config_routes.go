package config

import (
	"performx/internal/middleware"
	"performx/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	cfg := r.Group("/config")
	cfg.Use(middleware.AuthMiddleware())
	cfg.Use(middleware.ContextLogger(logger))
	{
		cfg.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "config", "read"),
			handler.Get,
		)

		// Only Admin carries config:update; everyone else falls to the
		// default deny.
		cfg.PUT("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "config", "update"),
			handler.Update,
		)
	}
}
