package note

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
	authed := r.Group("/employees/:id/notes")
	authed.Use(middleware.AuthMiddleware())
	authed.Use(middleware.ContextLogger(logger))
	{
		authed.POST("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "note", "create"),
			handler.Add,
		)
	}
}
