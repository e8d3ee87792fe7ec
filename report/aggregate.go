/*
Package report builds monthly and annual summaries from the ledger.

PURPOSE:
  The Aggregator reads committed records for one user and one period and
  produces derived views: a sorted monthly table with day-of-week labels and
  a single TOTAL row, or an annual month-by-month day listing. Rendering to
  a spreadsheet lives in excel.go; the aggregation itself is plain data.

ROUNDING:
  Totals are summed as decimals and rounded to two decimals once, at the
  end. Rows keep whatever precision the ledger stored.

SORTING:
  Rows sort by the calendar date. A row whose date does not parse (which
  should not happen for committed records, but is tolerated) sorts last and
  gets a blank weekday label.
*/
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/shift"
)

// Aggregator reads the ledger and computes report views.
type Aggregator struct {
	store  shift.Store
	roster *shift.Roster
}

// NewAggregator creates an Aggregator over the given store and roster.
func NewAggregator(store shift.Store, roster *shift.Roster) *Aggregator {
	return &Aggregator{store: store, roster: roster}
}

// =============================================================================
// MONTHLY REPORT
// =============================================================================

// Row is one line of the monthly table.
type Row struct {
	Date         string
	Weekday      string // blank when the date does not parse
	TimeStart    string
	TimeEnd      string
	BreakMinutes int
	NetHours     decimal.Decimal
	DailyPay     decimal.Decimal

	sortKey time.Time
	parsed  bool
}

// Monthly is the aggregated view for one user and one YYYY-MM month.
type Monthly struct {
	UserCode   shift.UserCode
	UserName   string
	Month      string
	Rows       []Row
	TotalHours decimal.Decimal
	TotalPay   decimal.Decimal
}

// Empty reports whether the month has no records (no artifact is produced).
func (m *Monthly) Empty() bool { return len(m.Rows) == 0 }

// TotalLabel is the date cell of the summary row.
func (m *Monthly) TotalLabel() string {
	return fmt.Sprintf("TOTAL (%s)", m.UserName)
}

// Monthly fetches and aggregates one user-month. The month must already be
// validated (shift.ValidateMonth).
func (a *Aggregator) Monthly(ctx context.Context, user shift.UserCode, yearMonth string) (*Monthly, error) {
	records, err := a.store.QueryMonth(ctx, user, yearMonth)
	if err != nil {
		return nil, err
	}

	name, _ := a.roster.Name(user)
	m := &Monthly{
		UserCode:   user,
		UserName:   name,
		Month:      yearMonth,
		TotalHours: decimal.Zero,
		TotalPay:   decimal.Zero,
	}

	for _, rec := range records {
		row := Row{
			Date:         rec.WorkDate,
			Weekday:      shift.WeekdayLabel(rec.WorkDate),
			TimeStart:    rec.TimeStart,
			TimeEnd:      rec.TimeEnd,
			BreakMinutes: rec.BreakMinutes,
			NetHours:     rec.NetHours,
			DailyPay:     rec.DailyPay,
		}
		if t, err := time.Parse(shift.DateFormat, rec.WorkDate); err == nil {
			row.sortKey = t
			row.parsed = true
		}
		m.Rows = append(m.Rows, row)
		m.TotalHours = m.TotalHours.Add(rec.NetHours)
		m.TotalPay = m.TotalPay.Add(rec.DailyPay)
	}

	sort.SliceStable(m.Rows, func(i, j int) bool {
		// Unparseable dates sort last.
		if m.Rows[i].parsed != m.Rows[j].parsed {
			return m.Rows[i].parsed
		}
		return m.Rows[i].sortKey.Before(m.Rows[j].sortKey)
	})

	m.TotalHours = m.TotalHours.Round(2)
	m.TotalPay = m.TotalPay.Round(2)
	return m, nil
}

// =============================================================================
// ANNUAL REPORT
// =============================================================================

// MonthGroup lists the recorded days of one month.
type MonthGroup struct {
	Month string   // YYYY-MM
	Days  []string // day-of-month, e.g. "03", "15"
}

// Annual is the aggregated view for one user and one YYYY year.
type Annual struct {
	UserCode  shift.UserCode
	UserName  string
	Year      string
	Months    []MonthGroup
	TotalDays int
}

// Empty reports whether the year has no records.
func (a *Annual) Empty() bool { return a.TotalDays == 0 }

// Annual fetches all record dates for a year and groups them by month.
// The year must already be validated (shift.ValidateYear).
func (a *Aggregator) Annual(ctx context.Context, user shift.UserCode, year string) (*Annual, error) {
	dates, err := a.store.QueryYearDates(ctx, user, year)
	if err != nil {
		return nil, err
	}

	name, _ := a.roster.Name(user)
	rep := &Annual{UserCode: user, UserName: name, Year: year}

	// Dates arrive sorted, so months appear in calendar order.
	byMonth := make(map[string]int)
	for _, date := range dates {
		if len(date) < 10 {
			continue
		}
		month, day := date[:7], date[8:10]
		i, ok := byMonth[month]
		if !ok {
			rep.Months = append(rep.Months, MonthGroup{Month: month})
			i = len(rep.Months) - 1
			byMonth[month] = i
		}
		rep.Months[i].Days = append(rep.Months[i].Days, day)
		rep.TotalDays++
	}

	return rep, nil
}

// RenderText formats the annual view as plain text.
func (a *Annual) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Work days for %s in %s:\n", a.UserName, a.Year)
	b.WriteString("--------------------------------------\n")
	for _, group := range a.Months {
		fmt.Fprintf(&b, "%s (%d days):\n", group.Month, len(group.Days))
		b.WriteString(strings.Join(group.Days, ", "))
		b.WriteString("\n")
	}
	b.WriteString("--------------------------------------")
	return b.String()
}
