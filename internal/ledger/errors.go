package ledger

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can classify with errors.Is.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrNotOwner             = fmt.Errorf("%w: only the bill owner can do this", ErrForbidden)
	ErrUnknownUser          = fmt.Errorf("%w: no user with that email", ErrNotFound)
	ErrSelfShare            = fmt.Errorf("%w: a bill cannot be shared with its owner", ErrInvalidInput)
	ErrDuplicateShare       = fmt.Errorf("%w: bill is already shared with this user", ErrConflict)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	ErrTypeCategoryMismatch = fmt.Errorf("%w: category type does not match transaction type", ErrInvalidInput)
	ErrCategoryInUse        = fmt.Errorf("%w: category is still referenced", ErrConflict)
	ErrEmailExists          = fmt.Errorf("%w: email already registered", ErrConflict)
)

func notFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
