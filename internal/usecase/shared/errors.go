package shared

import (
	"errors"

	"hotel-kiosk/internal/infra"
	"hotel-kiosk/internal/pkg/errs"
)

// StorageErr translates repository failures for callers: missing rows become
// notFound, everything else is marked as a database failure. Domain errors
// pass through untouched.
func StorageErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	var repoErr infra.RepositoryError
	if !errors.As(err, &repoErr) {
		return err
	}
	if repoErr.Kind == infra.KindNotFound && notFound != nil {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
