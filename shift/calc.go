/*
calc.go - Net hours and pay computation

PURPOSE:
  The Calculator is a pure function from shift boundaries and deductions to
  derived amounts. It owns the only rounding in the write path: net hours
  and pay are each rounded to two decimals exactly once, at the end.

POLICY:
  Deduction = user-supplied break minutes + FixedBreakMinutes. The fixed
  mandatory break is a named constant set to zero: only what the user enters
  is deducted. Changing the policy means changing one constant, not hunting
  for an implicit difference between code paths.

OVERNIGHT SHIFTS:
  End-before-start input produces a negative duration and is rejected as an
  over-deduction. Crossing midnight is not supported.
*/
package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation policy constants.
const (
	// FixedBreakMinutes is the mandatory break added on top of the
	// user-supplied break minutes. Zero: only the entered break is deducted.
	FixedBreakMinutes = 0

	// DefaultPayRate is the hourly rate applied when configuration does not
	// override it.
	DefaultPayRate = 7.0

	// DefaultCurrency is the symbol used in summaries and reports.
	DefaultCurrency = "€"
)

// minutesPerHour as a decimal, for the single rounding division.
var minutesPerHour = decimal.NewFromInt(60)

// Calculator derives net hours and daily pay from shift boundaries.
type Calculator struct {
	PayRate decimal.Decimal
}

// NewCalculator returns a Calculator with the given hourly rate.
func NewCalculator(payRate float64) *Calculator {
	return &Calculator{PayRate: decimal.NewFromFloat(payRate)}
}

// Result is the derived portion of a work record.
type Result struct {
	NetHours decimal.Decimal
	DailyPay decimal.Decimal
}

// Compute parses date+start and date+end as combined timestamps, subtracts
// the deduction, and returns rounded net hours and pay.
//
// Failure modes, all typed:
//   - FormatError: either boundary fails to parse as "YYYY-MM-DD HH:MM"
//   - OverDeductionError: deduction exceeds the shift length (including the
//     negative-duration case when end precedes start)
func (c *Calculator) Compute(date, start, end string, breakMinutes int) (Result, error) {
	startAt, err := time.Parse(stampFormat, date+" "+start)
	if err != nil {
		return Result{}, &FormatError{Field: "time", Input: start, Want: "HH:MM"}
	}
	endAt, err := time.Parse(stampFormat, date+" "+end)
	if err != nil {
		return Result{}, &FormatError{Field: "time", Input: end, Want: "HH:MM"}
	}

	durationMinutes := int(endAt.Sub(startAt).Minutes())
	deductionMinutes := breakMinutes + FixedBreakMinutes
	netMinutes := durationMinutes - deductionMinutes

	if netMinutes < 0 {
		return Result{}, &OverDeductionError{
			ShiftMinutes:     durationMinutes,
			DeductionMinutes: deductionMinutes,
		}
	}

	netHours := decimal.NewFromInt(int64(netMinutes)).Div(minutesPerHour).Round(2)
	dailyPay := netHours.Mul(c.PayRate).Round(2)

	return Result{NetHours: netHours, DailyPay: dailyPay}, nil
}

// RestDayResult is what the holiday workflow persists: zero hours, zero pay.
func RestDayResult() Result {
	return Result{NetHours: decimal.Zero, DailyPay: decimal.Zero}
}
