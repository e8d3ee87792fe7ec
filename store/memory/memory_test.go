package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-ledger/shift"
	"github.com/warp/shift-ledger/store/memory"
)

func rec(user, date string) shift.WorkRecord {
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

func TestMemory_MatchesStoreContract(t *testing.T) {
	// The memory store must behave like the SQL backends: conflict on
	// duplicate keys, sorted prefix queries, exact deletes.

	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, rec("user_1", "2025-10-20")))
	require.NoError(t, store.Insert(ctx, rec("user_1", "2025-10-03")))
	require.NoError(t, store.Insert(ctx, rec("user_1", "2025-11-01")))

	err := store.Insert(ctx, rec("user_1", "2025-10-20"))
	assert.ErrorIs(t, err, shift.ErrConflict)

	found, err := store.Exists(ctx, "user_1", "2025-10-03")
	require.NoError(t, err)
	assert.True(t, found)

	recs, err := store.QueryMonth(ctx, "user_1", "2025-10")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-10-03", recs[0].WorkDate)
	assert.Equal(t, "2025-10-20", recs[1].WorkDate)

	dates, err := store.QueryYearDates(ctx, "user_1", "2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-03", "2025-10-20", "2025-11-01"}, dates)

	n, err := store.DeleteOne(ctx, "user_1", "2025-10-03")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.DeleteOne(ctx, "user_1", "2025-10-03")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = store.DeleteAllForUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
