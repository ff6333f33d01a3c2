package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsukax/sharetimer/internal/domain/model"
	"github.com/xsukax/sharetimer/internal/domain/port/driven"
)

func makeTimer(creatorIP, title string, createdAt time.Time) model.Timer {
	return model.Timer{
		StartTimestamp:  createdAt.Unix(),
		DurationSeconds: 300,
		CreatorIP:       creatorIP,
		CreatedAt:       createdAt,
		Title:           title,
	}
}

func TestTimerRepo_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	id, err := repo.Create(ctx, makeTimer("203.0.113.7", "Break", createdAt))
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, createdAt.Unix(), got.StartTimestamp)
	assert.Equal(t, int64(300), got.DurationSeconds)
	assert.Equal(t, "203.0.113.7", got.CreatorIP)
	assert.Equal(t, "Break", got.Title)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestTimerRepo_Create_AssignsDistinctIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	first, err := repo.Create(ctx, makeTimer("203.0.113.7", "one", createdAt))
	require.NoError(t, err)
	second, err := repo.Create(ctx, makeTimer("203.0.113.7", "two", createdAt))
	require.NoError(t, err)

	assert.Greater(t, second, first, "ids must increase and never be reused")
}

func TestTimerRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 9999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, driven.ErrTimerNotFound)
}

func TestTimerRepo_ListByCreator_OrderAndFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, makeTimer("203.0.113.7", "oldest", base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTimer("203.0.113.7", "middle", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTimer("203.0.113.7", "newest", base.Add(2*time.Minute)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTimer("198.51.100.1", "other creator", base.Add(3*time.Minute)))
	require.NoError(t, err)

	timers, err := repo.ListByCreator(ctx, "203.0.113.7", 15)
	require.NoError(t, err)
	require.Len(t, timers, 3)

	assert.Equal(t, "newest", timers[0].Title)
	assert.Equal(t, "middle", timers[1].Title)
	assert.Equal(t, "oldest", timers[2].Title)
	for i := 1; i < len(timers); i++ {
		assert.False(t, timers[i].CreatedAt.After(timers[i-1].CreatedAt),
			"listing must be ordered by created_at descending")
	}
}

func TestTimerRepo_ListByCreator_SubSecondOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	// The newer timer is inserted first so it holds the lower id: the
	// ordering below must come from created_at alone, not the id tiebreak.
	// Fractional seconds with different digit counts (.123 vs .12) only sort
	// correctly when the stored strings are fixed width.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, makeTimer("203.0.113.7", "newer", base.Add(123*time.Millisecond)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTimer("203.0.113.7", "older", base.Add(120*time.Millisecond)))
	require.NoError(t, err)

	timers, err := repo.ListByCreator(ctx, "203.0.113.7", 15)
	require.NoError(t, err)
	require.Len(t, timers, 2)

	assert.Equal(t, "newer", timers[0].Title)
	assert.Equal(t, "older", timers[1].Title)
}

func TestTimerRepo_Create_RoundTripsSubSecondPrecision(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 1, 12, 30, 0, 120000000, time.UTC)
	id, err := repo.Create(ctx, makeTimer("203.0.113.7", "Break", createdAt))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestTimerRepo_ListByCreator_SameSecondUsesIDTiebreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, makeTimer("203.0.113.7", fmt.Sprintf("t%d", i), createdAt))
		require.NoError(t, err)
	}

	timers, err := repo.ListByCreator(ctx, "203.0.113.7", 15)
	require.NoError(t, err)
	require.Len(t, timers, 3)

	assert.Equal(t, "t2", timers[0].Title)
	assert.Equal(t, "t1", timers[1].Title)
	assert.Equal(t, "t0", timers[2].Title)
}

func TestTimerRepo_ListByCreator_Limit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		_, err := repo.Create(ctx, makeTimer("203.0.113.7", fmt.Sprintf("t%d", i), base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	timers, err := repo.ListByCreator(ctx, "203.0.113.7", 15)
	require.NoError(t, err)
	assert.Len(t, timers, 15)
	assert.Equal(t, "t19", timers[0].Title)
}

func TestTimerRepo_ListByCreator_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimerRepo(db)
	ctx := context.Background()

	timers, err := repo.ListByCreator(ctx, "203.0.113.7", 15)
	require.NoError(t, err)
	assert.Empty(t, timers)
}
