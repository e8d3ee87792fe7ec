package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-ledger/shift"
	"github.com/warp/shift-ledger/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func workDay(user, date string) shift.WorkRecord {
	return shift.WorkRecord{
		UserCode:     shift.UserCode(user),
		WorkDate:     date,
		TimeStart:    "09:00",
		TimeEnd:      "17:00",
		BreakMinutes: 30,
		NetHours:     decimal.RequireFromString("7.5"),
		DailyPay:     decimal.RequireFromString("52.5"),
	}
}

func restDay(user, date string) shift.WorkRecord {
	return shift.WorkRecord{
		UserCode:  shift.UserCode(user),
		WorkDate:  date,
		TimeStart: shift.RestMarker,
		TimeEnd:   shift.RestMarker,
		NetHours:  decimal.Zero,
		DailyPay:  decimal.Zero,
	}
}

// =============================================================================
// INSERT / EXISTS
// =============================================================================

func TestStore_InsertThenExists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	found, err := store.Exists(ctx, "user_1", "2025-10-15")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-15")))

	found, err = store.Exists(ctx, "user_1", "2025-10-15")
	require.NoError(t, err)
	assert.True(t, found)

	// Same date, different user: independent keys.
	found, err = store.Exists(ctx, "user_2", "2025-10-15")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_DuplicateInsert_Conflict(t *testing.T) {
	// GIVEN: A record for (user_1, 2025-10-15)
	// WHEN: Inserting a second record for the same key, any field values
	// THEN: ConflictError from the uniqueness index, first record untouched

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-15")))

	dup := restDay("user_1", "2025-10-15")
	err := store.Insert(ctx, dup)

	require.Error(t, err)
	var conflict *shift.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, shift.UserCode("user_1"), conflict.UserCode)
	assert.Equal(t, "2025-10-15", conflict.WorkDate)
	assert.ErrorIs(t, err, shift.ErrConflict)

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "09:00", recs[0].TimeStart)
}

func TestStore_InsertPreservesDecimals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := workDay("user_1", "2025-10-15")
	rec.NetHours = decimal.RequireFromString("8.5")
	rec.DailyPay = decimal.RequireFromString("59.5")
	require.NoError(t, store.Insert(ctx, rec))

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].NetHours.Equal(decimal.RequireFromString("8.5")))
	assert.True(t, recs[0].DailyPay.Equal(decimal.RequireFromString("59.5")))
	assert.NotEmpty(t, recs[0].ID)
}

// =============================================================================
// QUERIES
// =============================================================================

func TestStore_QueryMonth_PrefixAndOrder(t *testing.T) {
	// GIVEN: Records across two months, inserted out of order
	// WHEN: Querying one month
	// THEN: Only that month's records, ascending by date

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-20")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-11-01")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-03")))
	require.NoError(t, store.Insert(ctx, workDay("user_2", "2025-10-05")))

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-10-03", recs[0].WorkDate)
	assert.Equal(t, "2025-10-20", recs[1].WorkDate)
}

func TestStore_QueryMonth_Empty(t *testing.T) {
	store := newTestStore(t)

	recs, err := store.QueryMonth(context.Background(), "user_1", "2025-10")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_QueryYearDates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-03-10")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-01-02")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2024-12-31")))

	dates, err := store.QueryYearDates(ctx, "user_1", "2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-02", "2025-03-10"}, dates)
}

// =============================================================================
// DELETES
// =============================================================================

func TestStore_DeleteOne_Exact(t *testing.T) {
	// GIVEN: Records on neighboring dates and for another user
	// WHEN: Deleting one (user, date)
	// THEN: Exactly that record is gone, count is 1

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-14")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-15")))
	require.NoError(t, store.Insert(ctx, workDay("user_2", "2025-10-15")))

	n, err := store.DeleteOne(ctx, "user_1", "2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2025-10-14", recs[0].WorkDate)

	// Other user's record on the same date is untouched.
	found, err := store.Exists(ctx, "user_2", "2025-10-15")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestStore_DeleteOne_Missing_ZeroCount(t *testing.T) {
	store := newTestStore(t)

	n, err := store.DeleteOne(context.Background(), "user_1", "2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStore_DeleteAllForUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, workDay("user_3", "2025-10-01")))
	require.NoError(t, store.Insert(ctx, workDay("user_3", "2025-10-02")))
	require.NoError(t, store.Insert(ctx, restDay("user_3", "2025-10-03")))
	require.NoError(t, store.Insert(ctx, workDay("user_1", "2025-10-01")))

	n, err := store.DeleteAllForUser(ctx, "user_3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	recs, err := store.QueryMonth(ctx, "user_3", "2025-10")
	require.NoError(t, err)
	assert.Empty(t, recs)

	found, err := store.Exists(ctx, "user_1", "2025-10-01")
	require.NoError(t, err)
	assert.True(t, found)
}

// =============================================================================
// REST DAYS
// =============================================================================

func TestStore_RestDayRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, restDay("user_1", "2025-10-18")))

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].IsRestDay())
	assert.True(t, recs[0].NetHours.IsZero())
	assert.True(t, recs[0].DailyPay.IsZero())
}
