package errs

import (
	"errors"
)

// User-facing failures. Each aborts the operation with no state change.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidParams       = errors.New("invalid params")
	ErrInsufficientDeposit = errors.New("insufficient deposit")
	ErrBookUnavailable     = errors.New("book unavailable")
	ErrInvalidReturn       = errors.New("invalid return")
	ErrLimitExceeded       = errors.New("listing limit exceeded")
	ErrNotOwner            = errors.New("not owner")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidTitle        = errors.New("invalid title")
	ErrInvalidAuthor       = errors.New("invalid author")
	ErrInvalidBookId       = errors.New("invalid book id")
)

// ErrInvariant marks a broken internal invariant. It is a defect, never a
// result of caller input.
var ErrInvariant = errors.New("internal invariant violated")

type ErrorResponse struct {
	Message string `json:"message"`
}
