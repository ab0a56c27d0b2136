package backup

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
	// Only Admin carries the backup resource; everyone else hits the
	// default deny.
	b := r.Group("/backup")
	b.Use(middleware.AuthMiddleware())
	b.Use(middleware.ContextLogger(logger))
	{
		b.GET("",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "backup", "read"),
			handler.Export,
		)

		b.POST("/restore",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "backup", "create"),
			handler.Restore,
		)
	}
}
