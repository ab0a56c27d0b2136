package employeeerrors

import (
	"net/http"

	"performx/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this id already exists",
		http.StatusConflict,
	)
	ErrInvalidRoleAccess = apperror.New(
		apperror.CodeInvalidInput,
		"roleAccess must be Admin, Manager or Employee",
		http.StatusBadRequest,
	)
	ErrInvalidScore = apperror.New(
		apperror.CodeInvalidInput,
		"performanceScore must be between 0 and 5",
		http.StatusBadRequest,
	)
)
