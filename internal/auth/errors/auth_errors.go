package autherrors

import (
	"net/http"

	"performx/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials deliberately does not distinguish a wrong
	// password from a role mismatch.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials or role mismatch",
		http.StatusUnauthorized,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials or role mismatch",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Token is invalid",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		"INVALID_TOKEN",
		"Refresh token is invalid",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue session tokens",
		http.StatusInternalServerError,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already registered",
		http.StatusConflict,
	)
	ErrCredentialNotFound = apperror.New(
		apperror.CodeNotFound,
		"Credential not found",
		http.StatusNotFound,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)
