package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	apperrors "control-plane-backend/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapError classifies a storage error into the application taxonomy.
// gorm.ErrRecordNotFound is returned unchanged so callers can pick an
// entity-specific not-found error.
func mapError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return &apperrors.PersistenceError{Op: op, Entity: entity, Transient: true, Timeout: true, Err: err}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return &apperrors.PersistenceError{Op: op, Entity: entity, Transient: true, Err: err}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewPersistenceError(op, entity, err)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", apperrors.NewAlreadyExistsError(entity, ""), pgErr.ConstraintName)

	case pgerrcode.ForeignKeyViolation:
		// Every foreign key in the schema points at organisations
		return fmt.Errorf("%w: %s", apperrors.ErrOrganisationNotFound, pgErr.ConstraintName)

	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.InvalidTextRepresentation:
		field := pgErr.ColumnName
		if field == "" {
			field = pgErr.ConstraintName
		}
		return apperrors.NewValidationError(field, pgErr.Message)

	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return &apperrors.PersistenceError{Op: op, Entity: entity, Transient: true, Err: err}

	case pgerrcode.QueryCanceled:
		return &apperrors.PersistenceError{Op: op, Entity: entity, Transient: true, Timeout: true, Err: err}

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.TooManyConnections:
		return &apperrors.PersistenceError{Op: op, Entity: entity, Transient: true, Err: err}

	default:
		return apperrors.NewPersistenceError(op, entity, err)
	}
}
