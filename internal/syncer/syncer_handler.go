package syncer

import (
	"net/http"

	"performx/internal/middleware"
	"performx/internal/rbac"
	"performx/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	syncer *Syncer
}

func NewHandler(s *Syncer) *Handler {
	return &Handler{syncer: s}
}

func (h *Handler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, h.syncer.Status(), nil)
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	s := r.Group("/sync")
	s.Use(middleware.AuthMiddleware())
	s.Use(middleware.ContextLogger(logger))
	{
		s.GET("/status",
			middleware.RateLimitByUser(10, 20),
			middleware.RBACAuthorize(rbacService, "sync", "read"),
			handler.Status,
		)
	}
}
