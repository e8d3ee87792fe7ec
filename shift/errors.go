/*
errors.go - Centralized error types for the shift domain

PURPOSE:
  All domain errors in one place for consistency and discoverability.
  Every failure in the workflow/report path resolves to one of these;
  none of them is fatal to the process.

ERROR CATEGORIES:
  1. Input errors     - Unparseable dates, times, minute counts (re-prompt)
  2. Conflict errors  - Duplicate (user, date) records (abort workflow)
  3. State errors     - No active user selected (block entry points)
  4. Storage errors   - Persistence failures (logged, surfaced generically)

USAGE:
  Callers branch with errors.Is / errors.As:

    if errors.Is(err, shift.ErrConflict) {
        // tell the user to delete the existing record first
    }
*/
package shift

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrBadFormat is returned for unparseable date/time/integer input.
	// Workflows recover locally by re-prompting in the same state.
	ErrBadFormat = errors.New("malformed input")

	// ErrConflict is returned when a record already exists for (user, date).
	// The owning workflow aborts; the user must delete the record first.
	ErrConflict = errors.New("record already exists for this date")

	// ErrOverDeduction is returned when break time meets or exceeds the
	// shift length. The workflow aborts and the draft is discarded.
	ErrOverDeduction = errors.New("break exceeds shift length")

	// ErrNoActiveUser blocks entry points until a user has been selected.
	ErrNoActiveUser = errors.New("no active user selected")

	// ErrUnknownUser is returned for codes outside the known-user roster.
	ErrUnknownUser = errors.New("unknown user code")

	// ErrStorage wraps persistence-layer failures. Surfaced to the user as a
	// generic failure; the operation is treated as not completed.
	ErrStorage = errors.New("storage failure")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FormatError reports which field failed to parse and what was expected.
type FormatError struct {
	Field string // "date", "time", "break", "month", "year"
	Input string
	Want  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s %q: want %s", e.Field, e.Input, e.Want)
}

func (e *FormatError) Unwrap() error { return ErrBadFormat }

// ConflictError identifies the record that blocked an insert.
type ConflictError struct {
	UserCode UserCode
	WorkDate string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("record for %s on %s already exists", e.UserCode, e.WorkDate)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// OverDeductionError carries the durations that made net time negative.
type OverDeductionError struct {
	ShiftMinutes     int
	DeductionMinutes int
}

func (e *OverDeductionError) Error() string {
	return fmt.Sprintf("deduction %d min exceeds shift length %d min",
		e.DeductionMinutes, e.ShiftMinutes)
}

func (e *OverDeductionError) Unwrap() error { return ErrOverDeduction }

// StorageError wraps a backend failure so callers can still errors.Is(ErrStorage).
type StorageError struct {
	Op  string // "insert", "query_month", ...
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return ErrStorage }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsUserError returns true if the error is due to user input or state, not
// infrastructure. User errors are rendered as-is; everything else is logged
// and replaced with a generic failure message.
func IsUserError(err error) bool {
	return errors.Is(err, ErrBadFormat) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrOverDeduction) ||
		errors.Is(err, ErrNoActiveUser) ||
		errors.Is(err, ErrUnknownUser)
}

// IsRecoverable returns true if the owning workflow should re-prompt in the
// same state instead of aborting.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrBadFormat)
}
