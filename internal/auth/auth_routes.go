package auth

import (
	"performx/internal/middleware"
	"performx/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		group.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.RefreshToken)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)

		// Credential provisioning is Admin-only via the allow-list: no
		// policy line grants "credentials" to Manager or Employee.
		group.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "credentials", "create"),
			handler.Register,
		)
	}
}
