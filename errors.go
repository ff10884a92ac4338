package wallet

import "errors"

// Outcomes the caller is expected to branch on with errors.Is. None of them
// is fatal: a failed lookup, an invalid edit or a missing login leaves the
// store exactly as it was.
var (
	// ErrNotLoggedIn is reported when an operation is attempted without an
	// authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound is reported when no entry matches the requested id.
	ErrNotFound = errors.New("transaction not found")

	// ErrNothingFound is reported when a search or a listing produced no
	// entries. It is distinct from ErrUnknownMode.
	ErrNothingFound = errors.New("nothing found")

	// ErrUnknownMode is reported when a history filter mode is not one of
	// all, income or expense.
	ErrUnknownMode = errors.New("unknown mode")

	// Validation failures, in the order the validator checks them.
	ErrIDImmutable        = errors.New("transaction id cannot be changed")
	ErrOwnerImmutable     = errors.New("transaction owner cannot be changed")
	ErrInvalidNumber      = errors.New("amount must be a non-negative number")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrInvalidDate        = errors.New("invalid date")
	ErrDescriptionTooLong = errors.New("description too long")
)
