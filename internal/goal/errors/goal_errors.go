package goalerrors

import (
	"net/http"

	"performx/internal/shared/apperror"
)

var ErrGoalNotFound = apperror.New(
	apperror.CodeNotFound,
	"Goal not found for this employee",
	http.StatusNotFound,
)
