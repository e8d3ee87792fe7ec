package flow

// =============================================================================
// USER-SELECT WORKFLOW - single state: AWAIT_USER_CODE
// =============================================================================

// startUserSelect begins the user-select workflow. It is always allowed and
// takes ownership of the chat, discarding any pending draft.
func (d *Dispatcher) startUserSelect(sess *Session) []Reply {
	sess.endWorkflow()
	sess.State = StateAwaitUserCode
	return d.say(sess, msgSelectUserPrompt(d.roster))
}

// stepUserSelect consumes the code. Unknown codes re-prompt in the same
// state; a match sets the active user and terminates the workflow.
func (d *Dispatcher) stepUserSelect(sess *Session, text string) []Reply {
	code := normalizeUserCode(text)

	name, ok := d.roster.Name(code)
	if !ok {
		return d.say(sess, msgUnknownUserCode(string(code)))
	}

	sess.CurrentUser = code
	sess.endWorkflow()
	return d.say(sess, msgUserSelected(name, string(code)))
}
