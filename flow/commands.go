/*
commands.go - Stateless command handlers

PURPOSE:
  Commands that complete in a single turn: reports, record deletion, roster
  listing, and user wipe-out. None of these touch workflow state except
  /deluser, which clears every session whose active user was deleted.
*/
package flow

import (
	"context"
	"log"

	"github.com/warp/shift-ledger/report"
	"github.com/warp/shift-ledger/shift"
)

// handleMonthlyReport renders /report YYYY-MM as a spreadsheet artifact.
func (d *Dispatcher) handleMonthlyReport(ctx context.Context, sess *Session, args []string) []Reply {
	if replies, ok := d.requireUser(sess); !ok {
		return replies
	}
	if len(args) != 1 {
		return d.say(sess, msgUsageReport)
	}
	month, err := shift.ValidateMonth(args[0])
	if err != nil {
		return d.say(sess, msgUsageReport)
	}

	monthly, err := d.agg.Monthly(ctx, sess.CurrentUser, month)
	if err != nil {
		return d.failStorage(sess, "query_month", err)
	}
	if monthly.Empty() {
		return d.say(sess, msgNoRecordsMonth(month, monthly.UserName))
	}

	artifact, err := report.RenderWorkbook(monthly, d.currency)
	if err != nil {
		log.Printf("[report] chat=%d month=%s: %v", sess.ChatID, month, err)
		return d.say(sess, msgStorageFailure)
	}

	return []Reply{{
		ChatID:   sess.ChatID,
		Text:     msgMonthlyCaption(monthly, d.currency),
		Artifact: artifact,
	}}
}

// handleAnnualReport renders /year YYYY as plain text.
func (d *Dispatcher) handleAnnualReport(ctx context.Context, sess *Session, args []string) []Reply {
	if replies, ok := d.requireUser(sess); !ok {
		return replies
	}
	if len(args) != 1 {
		return d.say(sess, msgUsageYear)
	}
	year, err := shift.ValidateYear(args[0])
	if err != nil {
		return d.say(sess, msgUsageYear)
	}

	annual, err := d.agg.Annual(ctx, sess.CurrentUser, year)
	if err != nil {
		return d.failStorage(sess, "query_year", err)
	}
	if annual.Empty() {
		return d.say(sess, msgNoRecordsYear(year, annual.UserName))
	}

	return d.say(sess, annual.RenderText()+"\n"+msgYearFooter)
}

// handleDeleteEntry removes one record for the active user.
func (d *Dispatcher) handleDeleteEntry(ctx context.Context, sess *Session, args []string) []Reply {
	if replies, ok := d.requireUser(sess); !ok {
		return replies
	}
	if len(args) != 1 {
		return d.say(sess, msgUsageDelete)
	}
	date, err := shift.NormalizeDate(args[0])
	if err != nil {
		return d.say(sess, msgUsageDelete)
	}

	n, err := d.store.DeleteOne(ctx, sess.CurrentUser, date)
	if err != nil {
		return d.failStorage(sess, "delete_one", err)
	}

	name, _ := d.roster.Name(sess.CurrentUser)
	if n > 0 {
		return d.say(sess, msgDeleted(date, name))
	}
	return d.say(sess, msgDeleteMissing(date, name))
}

// handleListUsers prints the roster.
func (d *Dispatcher) handleListUsers(sess *Session) []Reply {
	if d.roster.Len() == 0 {
		return d.say(sess, msgRosterEmpty)
	}
	return d.say(sess, msgRosterList(d.roster))
}

// handleDeleteUser removes every record of a roster member and clears any
// session that had them active. Affected chats, including this one, are
// told to re-select.
func (d *Dispatcher) handleDeleteUser(ctx context.Context, sess *Session, args []string) []Reply {
	if len(args) != 1 {
		return d.say(sess, msgUsageDelUser)
	}
	code := normalizeUserCode(args[0])

	name, ok := d.roster.Name(code)
	if !ok {
		return d.say(sess, msgUnknownUserCode(string(code)))
	}

	deleted, err := d.store.DeleteAllForUser(ctx, code)
	if err != nil {
		return d.failStorage(sess, "delete_all", err)
	}

	replies := []Reply{{ChatID: sess.ChatID, Text: msgUserWiped(name, string(code), deleted)}}
	for _, chatID := range d.sessions.ClearUser(code) {
		replies = append(replies, Reply{ChatID: chatID, Text: msgReselectUser})
	}
	return replies
}
