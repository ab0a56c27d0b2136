package config

import (
	"errors"

	configerrors "performx/internal/config/errors"
	"performx/internal/shared/apperror"
	"performx/internal/store"
)

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return configerrors.ErrConfigNotFound
	case errors.Is(err, store.ErrRevisionConflict):
		return apperror.ErrRevisionConflict
	case errors.Is(err, store.ErrUnavailable):
		return apperror.ErrStoreUnavailable
	}

	return err
}
