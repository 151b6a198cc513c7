package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict marks a lock timeout or a lost concurrent race. Safe to retry.
var ErrConflict = errors.New("conflicting concurrent operation, retry")

// ValidationError is a violated precondition or invariant. Never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports an id that does not resolve to an entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

const (
	pgRaiseException   = "P0001"
	pgLockNotAvailable = "55P03"
	pgQueryCanceled    = "57014"
)

// FromStorage classifies a postgres error. Domain errors raised inside stored
// functions (RAISE EXCEPTION) come back as validation errors carrying the
// server message; lock timeouts become retryable conflicts; anything else is
// returned as-is and treated as a storage fault by the caller.
func FromStorage(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgRaiseException:
		return &ValidationError{Reason: pgErr.Message}
	case pgLockNotAvailable, pgQueryCanceled:
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.Message)
	}
	return err
}
