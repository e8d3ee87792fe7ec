package shift

// =============================================================================
// KNOWN-USER ROSTER - Fixed allowlist, read-only to the core
// =============================================================================

// RosterEntry pairs a user code with its display name.
type RosterEntry struct {
	Code UserCode
	Name string
}

// Roster is the fixed mapping of user codes to display names. It is built
// from configuration at startup and never mutated by the core; deleting a
// user's records does not touch the roster.
type Roster struct {
	entries []RosterEntry
	byCode  map[UserCode]string
}

// NewRoster builds a roster preserving the configured order for display.
func NewRoster(entries []RosterEntry) *Roster {
	byCode := make(map[UserCode]string, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e.Name
	}
	return &Roster{entries: entries, byCode: byCode}
}

// Contains reports whether the code is a roster member.
func (r *Roster) Contains(code UserCode) bool {
	_, ok := r.byCode[code]
	return ok
}

// Name returns the display name for a code.
func (r *Roster) Name(code UserCode) (string, bool) {
	name, ok := r.byCode[code]
	return name, ok
}

// Entries returns the roster in configured order.
func (r *Roster) Entries() []RosterEntry {
	out := make([]RosterEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of roster members.
func (r *Roster) Len() int { return len(r.entries) }
