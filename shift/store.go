/*
store.go - Persistence contract for the work-day ledger

PURPOSE:
  One interface, swappable backends. Every backend implements this single
  contract and the workflow layer never knows which one is wired.

CONTRACT:
  - Keyed by (UserCode, WorkDate), canonical YYYY-MM-DD dates.
  - Each call is an independent, fully-committed unit. No transaction spans
    a user turn.
  - Insert must fail with ConflictError on a duplicate (user, date). The
    workflow pre-checks Exists for a friendly message, but the backend's
    uniqueness constraint is the safety net against races.

IMPLEMENTATIONS:
  store/sqlite:   embedded file database (mattn/go-sqlite3)
  store/postgres: network database (jackc/pgx)
  store/memory:   in-memory, for tests and dev
*/
package shift

import "context"

// Store is the durable collection of work-day records.
type Store interface {
	// Exists reports whether a record exists for (user, date).
	Exists(ctx context.Context, user UserCode, date string) (bool, error)

	// Insert persists a record. Returns ConflictError if a record already
	// exists for (user, WorkDate); StorageError on backend failure.
	Insert(ctx context.Context, rec WorkRecord) error

	// QueryMonth returns the user's records whose date carries the given
	// YYYY-MM prefix, ordered ascending by date.
	QueryMonth(ctx context.Context, user UserCode, yearMonth string) ([]WorkRecord, error)

	// QueryYearDates returns the user's record dates for the given YYYY
	// year, ordered ascending.
	QueryYearDates(ctx context.Context, user UserCode, year string) ([]string, error)

	// DeleteOne removes the record matching both keys exactly and returns
	// the number deleted (0 or 1). Missing records are not an error.
	DeleteOne(ctx context.Context, user UserCode, date string) (int, error)

	// DeleteAllForUser removes every record for the user and returns the
	// number deleted.
	DeleteAllForUser(ctx context.Context, user UserCode) (int, error)
}
