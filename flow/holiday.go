package flow

import (
	"context"

	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// HOLIDAY WORKFLOW - date collection only: AWAIT_DATE -> END
// =============================================================================

// startHoliday begins the rest-day workflow. Same precondition and date
// handling as the entry workflow, but completion writes a sentinel record.
func (d *Dispatcher) startHoliday(sess *Session) []Reply {
	if replies, ok := d.requireUser(sess); !ok {
		return replies
	}

	name, _ := d.roster.Name(sess.CurrentUser)
	sess.endWorkflow()
	sess.State = StateAwaitHolidayDate
	return d.say(sess, msgHolidayStart(name))
}

// stepHolidayDate validates the date and writes a zero-hour record with
// the rest-day markers.
func (d *Dispatcher) stepHolidayDate(ctx context.Context, sess *Session, text string) []Reply {
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

	result := shift.RestDayResult()
	rec := shift.WorkRecord{
		UserCode:  sess.CurrentUser,
		WorkDate:  date,
		TimeStart: shift.RestMarker,
		TimeEnd:   shift.RestMarker,
		NetHours:  result.NetHours,
		DailyPay:  result.DailyPay,
	}

	if err := d.store.Insert(ctx, rec); err != nil {
		return d.failStorage(sess, "insert", err)
	}

	name, _ := d.roster.Name(sess.CurrentUser)
	sess.endWorkflow()
	return d.say(sess, msgHolidaySaved(name, date, d.currency))
}
