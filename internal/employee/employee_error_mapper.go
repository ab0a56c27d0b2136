package employee

import (
	"errors"

	employeeerrors "performx/internal/employee/errors"
	"performx/internal/shared/apperror"
	"performx/internal/store"
)

// MapStoreError translates store sentinels into the employee error taxonomy.
// Exported because the sub-entity services (goal, review, absence, ...) write
// through this package's repository and surface the same failures.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, store.ErrDuplicateID):
		return employeeerrors.ErrEmployeeAlreadyExists
	case errors.Is(err, store.ErrRevisionConflict):
		return apperror.ErrRevisionConflict
	case errors.Is(err, store.ErrUnavailable):
		return apperror.ErrStoreUnavailable
	}

	return err
}
