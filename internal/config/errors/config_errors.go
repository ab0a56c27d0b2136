package configerrors

import (
	"net/http"

	"performx/internal/shared/apperror"
)

var ErrConfigNotFound = apperror.New(
	apperror.CodeNotFound,
	"System configuration has not been initialized",
	http.StatusNotFound,
)
