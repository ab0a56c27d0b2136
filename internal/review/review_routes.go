package review

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
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.Use(middleware.ContextLogger(logger))
	{
		authed.POST("/employees/:id/reviews",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "review", "create"),
			handler.Add,
		)

		authed.POST("/reviews/batch",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "review", "create"),
			handler.BatchAdd,
		)
	}
}
