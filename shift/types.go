/*
Package shift contains the core domain of the shift ledger.

PURPOSE:
  This package defines the work-day record, the roster of known users, the
  time calculator that turns shift boundaries into net hours and pay, and the
  storage contract the rest of the system depends on. Everything here is
  transport-agnostic: the conversation engine (flow package) and the HTTP
  gateway (api package) both sit on top of these types.

KEY CONCEPTS IN THIS FILE (types.go):
  - UserCode: Type-safe identifier for a roster member
  - WorkRecord: One persisted work day for one user (unique per user+date)
  - RestMarker: Sentinel start/end value marking a zero-hour rest day

DESIGN PRINCIPLES:
  1. Immutability: Records are never updated, only deleted and re-created
  2. Precision: Uses decimal.Decimal for hours and pay, never float64
  3. Canonical dates: Dates are stored as zero-padded YYYY-MM-DD strings,
     normalized on the way in so prefix queries and equality are reliable

SEE ALSO:
  - calc.go: Net hours / pay computation
  - store.go: Persistence contract
  - errors.go: Domain error taxonomy
*/
package shift

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS AND FORMATS
// =============================================================================

// UserCode identifies a member of the known-user roster, e.g. "user_1".
type UserCode string

const (
	// DateFormat is the canonical calendar-date form, zero-padded.
	DateFormat = "2006-01-02"

	// MonthFormat is the year-month prefix used by monthly queries.
	MonthFormat = "2006-01"

	// ClockFormat is the wall-clock form for shift boundaries.
	ClockFormat = "15:04"

	// stampFormat combines date and clock; both shift boundaries must parse
	// with this single format.
	stampFormat = DateFormat + " " + ClockFormat

	// RestMarker is the sentinel stored in TimeStart/TimeEnd for a rest day.
	RestMarker = "-"
)

// =============================================================================
// WORK RECORD - One row per (user, date)
// =============================================================================

// WorkRecord is one persisted work day. At most one record may exist per
// (UserCode, WorkDate); NetHours and DailyPay are derived by the Calculator
// and never recomputed after the record is written.
type WorkRecord struct {
	ID           string
	UserCode     UserCode
	WorkDate     string // canonical YYYY-MM-DD
	TimeStart    string // HH:MM, or RestMarker
	TimeEnd      string // HH:MM, or RestMarker
	BreakMinutes int
	NetHours     decimal.Decimal
	DailyPay     decimal.Decimal
}

// IsRestDay reports whether the record is a zero-hour rest day.
func (r WorkRecord) IsRestDay() bool {
	return r.TimeStart == RestMarker && r.TimeEnd == RestMarker
}

// =============================================================================
// DATE NORMALIZATION AND PERIOD VALIDATION
// =============================================================================

// NormalizeDate parses raw calendar-date input and returns the canonical
// zero-padded form, so "2025-10-1" becomes "2025-10-01". Returns a
// FormatError for anything that does not parse as YYYY-MM-DD.
func NormalizeDate(input string) (string, error) {
	t, err := time.Parse(DateFormat, input)
	if err != nil {
		return "", &FormatError{Field: "date", Input: input, Want: "YYYY-MM-DD"}
	}
	return t.Format(DateFormat), nil
}

// ValidateMonth checks a YYYY-MM report argument.
func ValidateMonth(input string) (string, error) {
	t, err := time.Parse(MonthFormat, input)
	if err != nil {
		return "", &FormatError{Field: "month", Input: input, Want: "YYYY-MM"}
	}
	return t.Format(MonthFormat), nil
}

// ValidateYear checks a YYYY report argument.
func ValidateYear(input string) (string, error) {
	t, err := time.Parse("2006", input)
	if err != nil {
		return "", &FormatError{Field: "year", Input: input, Want: "YYYY"}
	}
	return t.Format("2006"), nil
}

// WeekdayLabel returns the short day-of-week label for a canonical date,
// or "" when the date does not parse (sentinel or malformed rows in reports).
func WeekdayLabel(date string) string {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// =============================================================================
// AMOUNT HELPERS
// =============================================================================

// FormatHours renders net hours with two decimals for user-facing output.
func FormatHours(d decimal.Decimal) string { return d.StringFixed(2) }

// FormatPay renders a pay amount with its currency symbol appended.
func FormatPay(d decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", d.StringFixed(2), currency)
}
