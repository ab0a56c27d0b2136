package analytics

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
	a := r.Group("/analytics")
	a.Use(middleware.AuthMiddleware())
	a.Use(middleware.ContextLogger(logger))
	{
		a.GET("/snapshot",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, "analytics", "read"),
			handler.Snapshot,
		)
	}
}
