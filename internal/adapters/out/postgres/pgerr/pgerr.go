// Package pgerr classifies postgres driver failures into the application's
// persistence error taxonomy.
package pgerr

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"

	"tavern/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class prefixes used for classification.
const (
	sqlstateIntegrityViolation = "23" // foreign key, unique, check, not null
	sqlstateConnectionFailure  = "08" // connection exceptions
)

// Classify maps a storage failure onto the error taxonomy:
//
//   - integrity violations become ConstraintViolationError carrying the
//     violated constraint, permanent and not retryable;
//   - connection failures become TransientError; the enclosing transaction
//     was rolled back, so the whole logical operation may be retried;
//   - anything else becomes PersistenceError with the cause preserved.
//
// Call sites handle sql.ErrNoRows themselves before classifying.
func Classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, sqlstateIntegrityViolation):
			relation := pgErr.ConstraintName
			if relation == "" {
				relation = pgErr.TableName
			}
			return errs.NewConstraintViolationErrorWithCause(relation, err)
		case strings.HasPrefix(pgErr.Code, sqlstateConnectionFailure):
			return errs.NewTransientError(op, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		pgconn.SafeToRetry(err) {
		return errs.NewTransientError(op, err)
	}

	return errs.NewPersistenceError(op, err)
}
