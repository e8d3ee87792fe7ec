/*
Package flow is the conversation engine: a keyed session store, three small
state machines (entry, user-select, holiday), and the stateless commands
(reports, deletes, roster listing).

PURPOSE:
  An external transport delivers (chatID, text) pairs; this package decides
  what they mean. A message either feeds the workflow that currently owns
  the chat, or is parsed as a command. Everything the core produces goes
  back as outbound Reply values; the transport itself is never addressed.

OWNERSHIP:
  Each chat has at most one active workflow. Entering an entry point while
  another workflow is pending hands ownership to the new workflow and
  discards the old draft. The transport is expected to deliver messages for
  one chat sequentially; the session store only guards its own map.

STATE:
  Sessions are ephemeral process memory with a defined lifecycle: created
  on first interaction, draft cleared on completion, cancellation or error.
  Only the active user survives across workflows. Nothing here touches the
  ledger's durability guarantees.

SEE ALSO:
  - dispatcher.go: Routing and command parsing
  - entry.go / userselect.go / holiday.go: The state machines
  - commands.go: Stateless command handlers
*/
package flow

import (
	"sync"

	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// WORKFLOW STATES
// =============================================================================

// State identifies which workflow step currently owns a chat's next message.
type State int

const (
	// StateIdle: no workflow pending; free text gets a hint.
	StateIdle State = iota

	// StateAwaitUserCode: user-select workflow, waiting for a roster code.
	StateAwaitUserCode

	// Entry workflow steps, in order.
	StateAwaitDate
	StateAwaitStart
	StateAwaitEnd
	StateAwaitBreak

	// StateAwaitHolidayDate: holiday workflow, waiting for the rest-day date.
	StateAwaitHolidayDate
)

// Draft holds in-progress entry fields between workflow turns. It exists
// only while a workflow is pending and is cleared on completion,
// cancellation, or abort.
type Draft struct {
	WorkDate  string
	TimeStart string
	TimeEnd   string
}

// Session is the per-chat conversation state.
type Session struct {
	ChatID      int64
	CurrentUser shift.UserCode // sticky until changed or its user is deleted
	State       State
	Draft       Draft
}

// HasUser reports whether an active user is set.
func (s *Session) HasUser() bool { return s.CurrentUser != "" }

// endWorkflow clears the draft and returns to idle. The active user stays.
func (s *Session) endWorkflow() {
	s.State = StateIdle
	s.Draft = Draft{}
}

// =============================================================================
// SESSION STORE
// =============================================================================

// Sessions is the keyed session store: chat id to conversation state.
type Sessions struct {
	mu     sync.Mutex
	byChat map[int64]*Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{byChat: make(map[int64]*Session)}
}

// Get returns the session for a chat, creating it on first interaction.
func (s *Sessions) Get(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byChat[chatID]
	if !ok {
		sess = &Session{ChatID: chatID}
		s.byChat[chatID] = sess
	}
	return sess
}

// ClearUser resets every session whose active user matches, discarding any
// pending draft, and returns the affected chat ids so those chats can be
// told to re-select.
func (s *Sessions) ClearUser(user shift.UserCode) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cleared []int64
	for chatID, sess := range s.byChat {
		if sess.CurrentUser == user {
			sess.CurrentUser = ""
			sess.endWorkflow()
			cleared = append(cleared, chatID)
		}
	}
	return cleared
}
