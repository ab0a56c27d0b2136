package goal

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
		authed.POST("/employees/:id/goals",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "goal", "create"),
			handler.Add,
		)

		// Progress updates span employees; Employee role reaches this via
		// the self-scoped single-item shape of the same endpoint.
		authed.PATCH("/goals/progress",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "goal", "update"),
			handler.BatchUpdate,
		)
	}
}
