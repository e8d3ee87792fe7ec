package shift_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// CALCULATOR TESTS
// =============================================================================

func TestCalculator_StandardShift(t *testing.T) {
	// GIVEN: 09:00-18:30 with a 60 minute break at 7.0/hour
	// WHEN: Computing net hours and pay
	// THEN: 8.5 hours, 59.5 pay

	calc := shift.NewCalculator(7.0)

	res, err := calc.Compute("2025-10-15", "09:00", "18:30", 60)
	require.NoError(t, err)

	assert.Equal(t, "8.50", res.NetHours.StringFixed(2))
	assert.Equal(t, "59.50", res.DailyPay.StringFixed(2))
}

func TestCalculator_RoundsOnceAtTheEnd(t *testing.T) {
	// GIVEN: A shift whose net minutes do not divide evenly into hours
	// WHEN: Computing
	// THEN: Hours are rounded to 2 decimals, pay from the rounded hours

	calc := shift.NewCalculator(7.0)

	// 09:00-17:10, 30 min break = 460 net minutes = 7.666... hours
	res, err := calc.Compute("2025-03-10", "09:00", "17:10", 30)
	require.NoError(t, err)

	assert.Equal(t, "7.67", res.NetHours.StringFixed(2))
	assert.Equal(t, "53.69", res.DailyPay.StringFixed(2))
}

func TestCalculator_ZeroBreak(t *testing.T) {
	calc := shift.NewCalculator(7.0)

	res, err := calc.Compute("2025-10-15", "08:00", "16:00", 0)
	require.NoError(t, err)

	assert.True(t, res.NetHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, res.DailyPay.Equal(decimal.NewFromInt(56)))
}

func TestCalculator_BreakEqualsShift_ZeroHours(t *testing.T) {
	// Deduction exactly equal to duration is valid: zero hours, zero pay.

	calc := shift.NewCalculator(7.0)

	res, err := calc.Compute("2025-10-15", "09:00", "10:00", 60)
	require.NoError(t, err)

	assert.True(t, res.NetHours.IsZero())
	assert.True(t, res.DailyPay.IsZero())
}

func TestCalculator_OverDeduction_Rejected(t *testing.T) {
	// GIVEN: A break longer than the shift itself
	// WHEN: Computing
	// THEN: OverDeductionError, no result

	calc := shift.NewCalculator(7.0)

	_, err := calc.Compute("2025-10-15", "09:00", "10:00", 90)

	require.Error(t, err)
	var overErr *shift.OverDeductionError
	require.ErrorAs(t, err, &overErr)
	assert.Equal(t, 60, overErr.ShiftMinutes)
	assert.Equal(t, 90, overErr.DeductionMinutes)
	assert.ErrorIs(t, err, shift.ErrOverDeduction)
}

func TestCalculator_EndBeforeStart_Rejected(t *testing.T) {
	// Overnight shifts are not supported: a negative duration is treated
	// the same as an over-deduction.

	calc := shift.NewCalculator(7.0)

	_, err := calc.Compute("2025-10-15", "22:00", "06:00", 0)

	assert.ErrorIs(t, err, shift.ErrOverDeduction)
}

func TestCalculator_MalformedTime_FormatError(t *testing.T) {
	calc := shift.NewCalculator(7.0)

	cases := []struct {
		name             string
		start, end       string
	}{
		{"garbage start", "nine", "17:00"},
		{"garbage end", "09:00", "late"},
		{"empty start", "", "17:00"},
		{"out of range", "25:00", "17:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Compute("2025-10-15", tc.start, tc.end, 0)
			assert.ErrorIs(t, err, shift.ErrBadFormat)
		})
	}
}

// =============================================================================
// DATE NORMALIZATION TESTS
// =============================================================================

func TestNormalizeDate_ZeroPads(t *testing.T) {
	got, err := shift.NormalizeDate("2025-10-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01", got)
}

func TestNormalizeDate_CanonicalPassesThrough(t *testing.T) {
	got, err := shift.NormalizeDate("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", got)
}

func TestNormalizeDate_Malformed(t *testing.T) {
	for _, input := range []string{"15.10.2025", "2025/10/15", "tomorrow", ""} {
		_, err := shift.NormalizeDate(input)
		assert.ErrorIs(t, err, shift.ErrBadFormat, "input %q", input)
	}
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Wed", shift.WeekdayLabel("2025-10-15"))
	assert.Equal(t, "", shift.WeekdayLabel(shift.RestMarker))
	assert.Equal(t, "", shift.WeekdayLabel("not-a-date"))
}

func TestValidateMonthAndYear(t *testing.T) {
	m, err := shift.ValidateMonth("2025-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", m)

	_, err = shift.ValidateMonth("2025-13")
	assert.ErrorIs(t, err, shift.ErrBadFormat)

	y, err := shift.ValidateYear("2025")
	require.NoError(t, err)
	assert.Equal(t, "2025", y)

	_, err = shift.ValidateYear("25")
	assert.ErrorIs(t, err, shift.ErrBadFormat)
}
