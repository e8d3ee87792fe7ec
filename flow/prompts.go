/*
prompts.go - Outbound message text

PURPOSE:
  Every user-facing string lives here, one builder per message, so the
  workflow and command code stays free of formatting noise and the full
  conversational surface can be reviewed in one file.
*/
package flow

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/report"
	"github.com/warp/shift-ledger/shift"
)

// normalizeUserCode canonicalizes roster-code input: trimmed, lowercased.
func normalizeUserCode(text string) shift.UserCode {
	return shift.UserCode(strings.ToLower(strings.TrimSpace(text)))
}

// =============================================================================
// GENERAL
// =============================================================================

const msgIdleHint = "I didn't catch that. Send /help to see what I can do."

const msgHelp = `Commands:
/user - select the active user
/day - record a work day
/rest - record a rest day
/report YYYY-MM - monthly spreadsheet
/year YYYY - annual work-day listing
/delete YYYY-MM-DD - delete one record
/users - list known users
/deluser CODE - delete all records of a user
/cancel - cancel the pending workflow`

const msgNothingToCancel = "Nothing to cancel."

const msgCancelled = "Cancelled. The active user is kept."

const msgNoActiveUser = "No active user. Send /user to select one first."

const msgStorageFailure = "Something went wrong on my side. Nothing was saved; please try again."

const msgReselectUser = "Your active user was removed. Send /user to select another."

func msgUnknownCommand(cmd string) string {
	return fmt.Sprintf("Unknown command %s. Send /help for the list.", cmd)
}

// =============================================================================
// USER SELECT
// =============================================================================

func msgSelectUserPrompt(roster *shift.Roster) string {
	var b strings.Builder
	b.WriteString("Who is this for? Send one of the codes:\n")
	for _, entry := range roster.Entries() {
		fmt.Fprintf(&b, "  %s - %s\n", entry.Code, entry.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func msgUnknownUserCode(code string) string {
	return fmt.Sprintf("I don't know %q. Send /users to see the known codes.", code)
}

func msgUserSelected(name, code string) string {
	return fmt.Sprintf("Active user: %s (%s). Send /day to record a shift.", name, code)
}

// =============================================================================
// ENTRY WORKFLOW
// =============================================================================

func msgEntryStart(name string) string {
	return fmt.Sprintf("Recording a work day for %s.\nWhich date? (YYYY-MM-DD)", name)
}

const msgBadDate = "That doesn't look like a date. Please send YYYY-MM-DD, e.g. 2025-10-01."

func msgDateConflict(date, name string) string {
	return fmt.Sprintf("%s already has a record for %s. Delete it first with /delete %s if you want to re-enter it.", name, date, date)
}

func msgDateAccepted(date string) string {
	return fmt.Sprintf("Date %s. When did the shift start? (HH:MM)", date)
}

func msgStartAccepted(t string) string {
	return fmt.Sprintf("Start %s. When did it end? (HH:MM)", t)
}

func msgEndAccepted(t string) string {
	return fmt.Sprintf("End %s. How many break minutes?", t)
}

const msgBadBreak = "Break minutes must be a whole number, 0 or more. Try again."

func msgCalcFailed(err error) string {
	return fmt.Sprintf("I couldn't compute that shift: %v\nStart over with /day.", err)
}

func msgEntrySaved(name string, rec shift.WorkRecord, breakMinutes int, payRate decimal.Decimal, currency string) string {
	return fmt.Sprintf(
		"Saved for %s:\n%s  %s-%s, break %d min\nNet hours: %s\nPay (%s %s/h): %s",
		name, rec.WorkDate, rec.TimeStart, rec.TimeEnd, breakMinutes,
		shift.FormatHours(rec.NetHours),
		payRate.StringFixed(2), currency,
		shift.FormatPay(rec.DailyPay, currency),
	)
}

// =============================================================================
// HOLIDAY WORKFLOW
// =============================================================================

func msgHolidayStart(name string) string {
	return fmt.Sprintf("Recording a rest day for %s.\nWhich date? (YYYY-MM-DD)", name)
}

func msgHolidaySaved(name, date, currency string) string {
	return fmt.Sprintf("Rest day saved for %s on %s: 0.00 hours, %s.",
		name, date, shift.FormatPay(decimal.Zero, currency))
}

// =============================================================================
// COMMANDS
// =============================================================================

const msgUsageReport = "Usage: /report YYYY-MM, e.g. /report 2025-10"

const msgUsageYear = "Usage: /year YYYY, e.g. /year 2025"

const msgUsageDelete = "Usage: /delete YYYY-MM-DD, e.g. /delete 2025-10-01"

const msgUsageDelUser = "Usage: /deluser CODE. Send /users to see the known codes."

const msgYearFooter = "Send /report YYYY-MM for the detailed monthly sheet."

const msgRosterEmpty = "The roster is empty."

func msgRosterList(roster *shift.Roster) string {
	var b strings.Builder
	b.WriteString("Known users:\n")
	for _, entry := range roster.Entries() {
		fmt.Fprintf(&b, "  %s - %s\n", entry.Code, entry.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func msgNoRecordsMonth(month, name string) string {
	return fmt.Sprintf("No records for %s in %s.", name, month)
}

func msgNoRecordsYear(year, name string) string {
	return fmt.Sprintf("No records for %s in %s.", name, year)
}

func msgMonthlyCaption(m *report.Monthly, currency string) string {
	return fmt.Sprintf("Report for %s, %s: %d days, %s hours, %s.",
		m.UserName, m.Month, len(m.Rows),
		shift.FormatHours(m.TotalHours),
		shift.FormatPay(m.TotalPay, currency))
}

func msgDeleted(date, name string) string {
	return fmt.Sprintf("Deleted the %s record for %s.", date, name)
}

func msgDeleteMissing(date, name string) string {
	return fmt.Sprintf("%s has no record for %s; nothing deleted.", name, date)
}

func msgUserWiped(name, code string, deleted int) string {
	return fmt.Sprintf("Removed %d record(s) for %s (%s).", deleted, name, code)
}
