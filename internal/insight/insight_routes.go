package insight

import (
	"performx/internal/middleware"
	"performx/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRelayRoute mounts the raw proxy at /api/genai, outside the v1
// group. Authentication still applies; the response shape does not change.
func RegisterRelayRoute(r *gin.Engine, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	r.POST("/api/genai",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(1, 3),
		middleware.RBACAuthorize(rbacService, "insight", "create"),
		handler.Relay,
	)
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	ins := r.Group("/insights")
	ins.Use(middleware.AuthMiddleware())
	ins.Use(middleware.ContextLogger(logger))
	{
		ins.POST("/employees/:id/summary",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "insight", "create"),
			middleware.SelfScope(),
			handler.EmployeeSummary,
		)

		ins.POST("/employees/:id/ytd",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "insight", "create"),
			middleware.SelfScope(),
			handler.YTDReport,
		)

		// Org-wide generation is its own resource: self-scoped insight
		// access must not open the company outlook to every employee.
		ins.POST("/org",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "insight-org", "create"),
			handler.OrgOutlook,
		)
	}
}
