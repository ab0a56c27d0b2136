package assessment

import (
	"net/http"

	"performx/internal/shared/apperror"
	"performx/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assessment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Add(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add assessment validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("assessment request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
