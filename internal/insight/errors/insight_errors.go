package insighterrors

import (
	"net/http"

	"performx/internal/shared/apperror"
)

var (
	ErrNotConfigured = apperror.New(
		apperror.CodeNotConfigured,
		"Server not configured with GEMINI_API_KEY",
		http.StatusInternalServerError,
	)
	ErrProviderFailure = apperror.New(
		apperror.CodeInternalError,
		"Error generating AI insights",
		http.StatusInternalServerError,
	)
)
