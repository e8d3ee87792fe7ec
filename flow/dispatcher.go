/*
dispatcher.go - Message routing and command parsing

PURPOSE:
  The single entry point for inbound messages. A message that starts with
  "/" is parsed as a command; anything else feeds the workflow step that
  currently owns the chat, or gets a hint if nothing is pending.

COMMAND SURFACE:
  /user            select the active user (starts user-select workflow)
  /day             record a work day (starts entry workflow)
  /rest            record a rest day (starts holiday workflow)
  /report YYYY-MM  monthly spreadsheet report
  /year YYYY       annual work-day listing
  /delete YYYY-MM-DD  delete one record
  /users           list the roster
  /deluser CODE    delete all records of a user
  /cancel          cancel the pending workflow
  /help            this list

  Argument-parsing failures produce a usage message and change no state.
*/
package flow

import (
	"context"
	"log"
	"strings"

	"github.com/warp/shift-ledger/report"
	"github.com/warp/shift-ledger/shift"
)

// Reply is outbound content for one chat: text plus an optional tabular
// artifact. ChatID is usually the requesting chat; a few commands also
// notify other chats (see handleDeleteUser).
type Reply struct {
	ChatID   int64
	Text     string
	Artifact *report.Artifact
}

// Dispatcher routes inbound messages to workflows and command handlers.
type Dispatcher struct {
	sessions *Sessions
	store    shift.Store
	calc     *shift.Calculator
	agg      *report.Aggregator
	roster   *shift.Roster
	currency string
}

// New wires a Dispatcher.
func New(sessions *Sessions, store shift.Store, calc *shift.Calculator, agg *report.Aggregator, roster *shift.Roster, currency string) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		store:    store,
		calc:     calc,
		agg:      agg,
		roster:   roster,
		currency: currency,
	}
}

// Handle processes one inbound message and returns the outbound replies.
// Never returns an error: every failure resolves to a reply.
func (d *Dispatcher) Handle(ctx context.Context, chatID int64, text string) []Reply {
	sess := d.sessions.Get(chatID)
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "/") {
		return d.handleCommand(ctx, sess, text)
	}

	switch sess.State {
	case StateAwaitUserCode:
		return d.stepUserSelect(sess, text)
	case StateAwaitDate:
		return d.stepEntryDate(ctx, sess, text)
	case StateAwaitStart:
		return d.stepEntryStart(sess, text)
	case StateAwaitEnd:
		return d.stepEntryEnd(sess, text)
	case StateAwaitBreak:
		return d.stepEntryBreak(ctx, sess, text)
	case StateAwaitHolidayDate:
		return d.stepHolidayDate(ctx, sess, text)
	default:
		// Free text outside any workflow: log it, point at /help.
		log.Printf("[input] chat=%d user=%s text=%q", chatID, sess.CurrentUser, text)
		return d.say(sess, msgIdleHint)
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, sess *Session, text string) []Reply {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "/user":
		return d.startUserSelect(sess)
	case "/day":
		return d.startEntry(sess)
	case "/rest":
		return d.startHoliday(sess)
	case "/report":
		return d.handleMonthlyReport(ctx, sess, args)
	case "/year":
		return d.handleAnnualReport(ctx, sess, args)
	case "/delete":
		return d.handleDeleteEntry(ctx, sess, args)
	case "/users":
		return d.handleListUsers(sess)
	case "/deluser":
		return d.handleDeleteUser(ctx, sess, args)
	case "/cancel":
		return d.handleCancel(sess)
	case "/help", "/start":
		return d.say(sess, msgHelp)
	default:
		return d.say(sess, msgUnknownCommand(cmd))
	}
}

// handleCancel discards the pending draft but keeps the active user.
func (d *Dispatcher) handleCancel(sess *Session) []Reply {
	if sess.State == StateIdle {
		return d.say(sess, msgNothingToCancel)
	}
	sess.endWorkflow()
	return d.say(sess, msgCancelled)
}

// =============================================================================
// REPLY HELPERS
// =============================================================================

func (d *Dispatcher) say(sess *Session, text string) []Reply {
	return []Reply{{ChatID: sess.ChatID, Text: text}}
}

// requireUser enforces the active-user precondition on entry points and
// stateless commands. Returns ok=false with the instruction reply if unset.
func (d *Dispatcher) requireUser(sess *Session) ([]Reply, bool) {
	if sess.HasUser() {
		return nil, true
	}
	return d.say(sess, msgNoActiveUser), false
}

// failStorage logs the real error and surfaces a generic failure. The
// operation is treated as not completed.
func (d *Dispatcher) failStorage(sess *Session, op string, err error) []Reply {
	log.Printf("[storage] chat=%d op=%s: %v", sess.ChatID, op, err)
	sess.endWorkflow()
	return d.say(sess, msgStorageFailure)
}
