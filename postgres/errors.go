package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmholzer/outvoice-api/core"
)

// ConvertPgError will convert known postgres errors to their core variant.
// Unknown or unhandled errors will be returned as-is.
// Converting nil will simply return nil.
func ConvertPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return errors.Join(core.ErrDuplicateAddress, err)
		case pgerrcode.IsConnectionException(pgErr.Code):
			return errors.Join(core.ErrStorageUnavailable, err)
		default:
			return err
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Join(core.ErrNotFound, err)
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errors.Join(core.ErrStorageUnavailable, err)
	}
	return err
}
