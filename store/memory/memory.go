// Package memory provides an in-memory shift.Store for tests and dev.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/warp/shift-ledger/shift"
)

// Store keeps records per user, sorted by date. Semantics match the SQL
// backends: one record per (user, date), prefix queries, exact deletes.
type Store struct {
	mu      sync.RWMutex
	records map[shift.UserCode][]shift.WorkRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[shift.UserCode][]shift.WorkRecord)}
}

func (s *Store) Exists(_ context.Context, user shift.UserCode, date string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.find(user, date)
	return found, nil
}

func (s *Store) Insert(_ context.Context, rec shift.WorkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.find(rec.UserCode, rec.WorkDate); found {
		return &shift.ConflictError{UserCode: rec.UserCode, WorkDate: rec.WorkDate}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	recs := s.records[rec.UserCode]
	// Insert keeping date order so queries return sorted slices.
	i := sort.Search(len(recs), func(i int) bool {
		return recs[i].WorkDate > rec.WorkDate
	})
	recs = append(recs, shift.WorkRecord{})
	copy(recs[i+1:], recs[i:])
	recs[i] = rec
	s.records[rec.UserCode] = recs
	return nil
}

func (s *Store) QueryMonth(_ context.Context, user shift.UserCode, yearMonth string) ([]shift.WorkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []shift.WorkRecord
	for _, rec := range s.records[user] {
		if strings.HasPrefix(rec.WorkDate, yearMonth) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (s *Store) QueryYearDates(_ context.Context, user shift.UserCode, year string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dates []string
	for _, rec := range s.records[user] {
		if strings.HasPrefix(rec.WorkDate, year+"-") {
			dates = append(dates, rec.WorkDate)
		}
	}
	return dates, nil
}

func (s *Store) DeleteOne(_ context.Context, user shift.UserCode, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, found := s.find(user, date)
	if !found {
		return 0, nil
	}
	s.records[user] = append(s.records[user][:i], s.records[user][i+1:]...)
	return 1, nil
}

func (s *Store) DeleteAllForUser(_ context.Context, user shift.UserCode) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records[user])
	delete(s.records, user)
	return n, nil
}

// find returns the index of the record for (user, date). Caller holds the lock.
func (s *Store) find(user shift.UserCode, date string) (int, bool) {
	recs := s.records[user]
	i := sort.Search(len(recs), func(i int) bool {
		return recs[i].WorkDate >= date
	})
	if i < len(recs) && recs[i].WorkDate == date {
		return i, true
	}
	return 0, false
}
