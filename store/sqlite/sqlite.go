/*
Package sqlite provides a SQLite-backed implementation of shift.Store.

PURPOSE:
  The embedded file database backend. Suitable for single-host deployments
  and all tests (use ":memory:"). The network backend with the same schema
  lives in store/postgres.

SCHEMA:
  One table, one row per work day:
    records(id, user_code, work_date, time_start, time_end,
            break_minutes, net_hours, daily_pay)
  Dates are TEXT in canonical YYYY-MM-DD so LIKE 'YYYY-MM%' prefix queries
  sort and match correctly. Hours and pay are stored as decimal strings.

UNIQUENESS:
  idx_records_user_date UNIQUE(user_code, work_date) enforces one record per
  user per date at the storage layer. The workflow pre-checks Exists for a
  friendly conflict message; this index is the safety net against races.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Each store call is one implicit
  transaction; nothing spans calls.

WAL MODE:
  SQLite is opened with WAL so readers don't block the single writer.

USAGE:
  store, err := sqlite.New("./data/shifts.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/shift"
)

// Store implements shift.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		user_code TEXT NOT NULL,
		work_date TEXT NOT NULL,
		time_start TEXT NOT NULL,
		time_end TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		net_hours TEXT NOT NULL,
		daily_pay TEXT NOT NULL
	);

	-- One record per user per date. The workflow's Exists pre-check gives
	-- the friendly message; this constraint closes the race.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_records_user_date
		ON records(user_code, work_date);

	-- Prefix queries per user (monthly and annual reports).
	CREATE INDEX IF NOT EXISTS idx_records_user
		ON records(user_code, work_date ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Exists reports whether a record exists for (user, date).
func (s *Store) Exists(ctx context.Context, user shift.UserCode, date string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM records WHERE user_code = ? AND work_date = ?",
		user, date,
	).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &shift.StorageError{Op: "exists", Err: err}
	}
	return true, nil
}

// Insert persists a record. A violated uniqueness index maps to ConflictError.
func (s *Store) Insert(ctx context.Context, rec shift.WorkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records
		(id, user_code, work_date, time_start, time_end, break_minutes, net_hours, daily_pay)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.UserCode,
		rec.WorkDate,
		rec.TimeStart,
		rec.TimeEnd,
		rec.BreakMinutes,
		rec.NetHours.String(),
		rec.DailyPay.String(),
	)

	if err != nil {
		if isUniqueConstraintError(err) {
			return &shift.ConflictError{UserCode: rec.UserCode, WorkDate: rec.WorkDate}
		}
		return &shift.StorageError{Op: "insert", Err: err}
	}
	return nil
}

// QueryMonth returns the user's records for a YYYY-MM prefix, date-ascending.
func (s *Store) QueryMonth(ctx context.Context, user shift.UserCode, yearMonth string) ([]shift.WorkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_code, work_date, time_start, time_end, break_minutes, net_hours, daily_pay
		FROM records
		WHERE user_code = ? AND work_date LIKE ?
		ORDER BY work_date ASC`,
		user, yearMonth+"%",
	)
	if err != nil {
		return nil, &shift.StorageError{Op: "query_month", Err: err}
	}
	defer rows.Close()

	var records []shift.WorkRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &shift.StorageError{Op: "query_month", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &shift.StorageError{Op: "query_month", Err: err}
	}
	return records, nil
}

// QueryYearDates returns the user's record dates for a YYYY prefix, ascending.
func (s *Store) QueryYearDates(ctx context.Context, user shift.UserCode, year string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT work_date
		FROM records
		WHERE user_code = ? AND work_date LIKE ?
		ORDER BY work_date ASC`,
		user, year+"-%",
	)
	if err != nil {
		return nil, &shift.StorageError{Op: "query_year", Err: err}
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, &shift.StorageError{Op: "query_year", Err: err}
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &shift.StorageError{Op: "query_year", Err: err}
	}
	return dates, nil
}

// DeleteOne removes the record matching both keys and returns the count (0 or 1).
func (s *Store) DeleteOne(ctx context.Context, user shift.UserCode, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE user_code = ? AND work_date = ?",
		user, date,
	)
	if err != nil {
		return 0, &shift.StorageError{Op: "delete_one", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &shift.StorageError{Op: "delete_one", Err: err}
	}
	return int(n), nil
}

// DeleteAllForUser removes every record for the user and returns the count.
func (s *Store) DeleteAllForUser(ctx context.Context, user shift.UserCode) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE user_code = ?",
		user,
	)
	if err != nil {
		return 0, &shift.StorageError{Op: "delete_all", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &shift.StorageError{Op: "delete_all", Err: err}
	}
	return int(n), nil
}

// Helper functions

func scanRecord(rows *sql.Rows) (shift.WorkRecord, error) {
	var (
		rec      shift.WorkRecord
		netHours string
		dailyPay string
	)

	err := rows.Scan(
		&rec.ID, &rec.UserCode, &rec.WorkDate, &rec.TimeStart, &rec.TimeEnd,
		&rec.BreakMinutes, &netHours, &dailyPay,
	)
	if err != nil {
		return rec, fmt.Errorf("failed to scan record: %w", err)
	}

	rec.NetHours = mustParseDecimal(netHours)
	rec.DailyPay = mustParseDecimal(dailyPay)
	return rec, nil
}

func mustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
