/*
entry.go - The work-day entry workflow

STATES:
  AWAIT_DATE -> AWAIT_START -> AWAIT_END -> AWAIT_BREAK -> END

  The date step validates and checks for conflicts up front so the user
  does not type a whole shift only to collide at the end. Start and end
  times are accepted verbatim; the calculator validates them at the break
  step. The break step is the only one that re-prompts in place, because a
  bad minute count should not cost the already-entered fields.
*/
package flow

import (
	"context"
	"errors"
	"strconv"

	"github.com/warp/shift-ledger/shift"
)

// startEntry begins the entry workflow. Requires an active user; without
// one it aborts with an instruction to select first.
func (d *Dispatcher) startEntry(sess *Session) []Reply {
	if replies, ok := d.requireUser(sess); !ok {
		return replies
	}

	name, _ := d.roster.Name(sess.CurrentUser)
	sess.endWorkflow()
	sess.State = StateAwaitDate
	return d.say(sess, msgEntryStart(name))
}

// stepEntryDate validates the date, normalizes it, and rejects duplicates.
// A conflict aborts the whole workflow; nothing is left pending.
func (d *Dispatcher) stepEntryDate(ctx context.Context, sess *Session, text string) []Reply {
	date, err := shift.NormalizeDate(text)
	if err != nil {
		return d.say(sess, msgBadDate)
	}

	exists, err := d.store.Exists(ctx, sess.CurrentUser, date)
	if err != nil {
		return d.failStorage(sess, "exists", err)
	}
	if exists {
		name, _ := d.roster.Name(sess.CurrentUser)
		sess.endWorkflow()
		return d.say(sess, msgDateConflict(date, name))
	}

	sess.Draft.WorkDate = date
	sess.State = StateAwaitStart
	return d.say(sess, msgDateAccepted(date))
}

// stepEntryStart stores the start time verbatim; format is checked at
// calculation time.
func (d *Dispatcher) stepEntryStart(sess *Session, text string) []Reply {
	sess.Draft.TimeStart = text
	sess.State = StateAwaitEnd
	return d.say(sess, msgStartAccepted(text))
}

// stepEntryEnd stores the end time verbatim.
func (d *Dispatcher) stepEntryEnd(sess *Session, text string) []Reply {
	sess.Draft.TimeEnd = text
	sess.State = StateAwaitBreak
	return d.say(sess, msgEndAccepted(text))
}

// stepEntryBreak parses the minute count, computes, persists, and reports.
// Bad numbers re-prompt without discarding the draft; calculation failures
// abort the workflow; a storage conflict (lost race) aborts with the
// conflict message.
func (d *Dispatcher) stepEntryBreak(ctx context.Context, sess *Session, text string) []Reply {
	breakMinutes, err := strconv.Atoi(text)
	if err != nil || breakMinutes < 0 {
		return d.say(sess, msgBadBreak)
	}

	draft := sess.Draft
	result, err := d.calc.Compute(draft.WorkDate, draft.TimeStart, draft.TimeEnd, breakMinutes)
	if err != nil {
		sess.endWorkflow()
		return d.say(sess, msgCalcFailed(err))
	}

	rec := shift.WorkRecord{
		UserCode:     sess.CurrentUser,
		WorkDate:     draft.WorkDate,
		TimeStart:    draft.TimeStart,
		TimeEnd:      draft.TimeEnd,
		BreakMinutes: breakMinutes,
		NetHours:     result.NetHours,
		DailyPay:     result.DailyPay,
	}

	if err := d.store.Insert(ctx, rec); err != nil {
		if errors.Is(err, shift.ErrConflict) {
			name, _ := d.roster.Name(sess.CurrentUser)
			sess.endWorkflow()
			return d.say(sess, msgDateConflict(draft.WorkDate, name))
		}
		return d.failStorage(sess, "insert", err)
	}

	name, _ := d.roster.Name(sess.CurrentUser)
	summary := msgEntrySaved(name, rec, breakMinutes, d.calc.PayRate, d.currency)
	sess.endWorkflow()
	return d.say(sess, summary)
}
