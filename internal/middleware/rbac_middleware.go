package middleware

import (
	"net/http"

	"performx/internal/rbac"
	"performx/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so any implementation with Enforce fits.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the session role against the static allow-list.
// Requests without a role, and roles without an explicit allow entry, are
// denied.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfScope restricts Employee-role sessions on ":id" routes to their own
// record. Admin and Manager pass through.
func SelfScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != "Employee" {
			c.Next()
			return
		}
		if c.Param("id") != c.GetString("employee_id") {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You can only access your own record", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
