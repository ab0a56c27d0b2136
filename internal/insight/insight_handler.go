package insight

import (
	"errors"
	"net/http"

	insighterrors "performx/internal/insight/errors"
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
	l := zap.L().Named("insight.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.handler")
	}
	return &Handler{service: service, logger: l}
}

// Relay keeps the legacy proxy wire contract: plain {text} or {error}, no
// envelope, no wrapping of provider errors.
func (h *Handler) Relay(c *gin.Context) {
	var req RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing model or contents in request body"})
		return
	}
	if req.Model == "" || req.Contents == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing model or contents in request body"})
		return
	}

	text, err := h.service.Relay(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, insighterrors.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server not configured with GEMINI_API_KEY"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("insight request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) EmployeeSummary(c *gin.Context) {
	resp, err := h.service.EmployeeSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) YTDReport(c *gin.Context) {
	resp, err := h.service.YTDReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OrgOutlook(c *gin.Context) {
	resp, err := h.service.OrgOutlook(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
