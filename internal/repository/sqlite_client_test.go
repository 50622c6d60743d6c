package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/testutil"
)

func TestClientRepo_RoundTrip(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestClient("Ana Silva",
		testutil.WithPriority(3),
		testutil.WithLocation(domain.LocationRemote),
		testutil.WithDefaultDuration(45),
		testutil.WithPreference(domain.Preference{
			Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
			Window:    domain.TimeWindow{StartMin: 360, EndMin: 540},
			MinGapMin: 120,
			Weight:    0.8,
		}),
		testutil.WithBlockedDate(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)),
	)
	c.Email = "ana@example.com"
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Email, got.Email)
	assert.Equal(t, domain.LocationRemote, got.Location)
	assert.Equal(t, 45, got.DefaultDurationMin)
	assert.Equal(t, 3, got.Priority)
	require.Len(t, got.Preferences, 1)
	assert.Equal(t, c.Preferences[0], got.Preferences[0])
	require.Len(t, got.BlockedDates, 1)
	assert.True(t, c.BlockedDates[0].Equal(got.BlockedDates[0]))
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
}

func TestClientRepo_GetByName_CaseInsensitive(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Ana Silva")))

	got, err := repo.GetByName(ctx, "ana silva")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", got.Name)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRepo_List_SortedByName(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("zoe")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Ana")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Mia")))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Ana", clients[0].Name)
	assert.Equal(t, "Mia", clients[1].Name)
	assert.Equal(t, "zoe", clients[2].Name)
}

func TestClientRepo_Update_ReplacesDetails(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestClient("Ana",
		testutil.WithPreference(domain.Preference{Weekdays: []time.Weekday{time.Monday}, Weight: 1}))
	require.NoError(t, repo.Create(ctx, c))

	c.Priority = 5
	c.Preferences = []domain.Preference{
		{Weekdays: []time.Weekday{time.Friday}, Window: domain.TimeWindow{StartMin: 540, EndMin: 720}, Weight: 1},
	}
	c.BlockedDates = []time.Time{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Priority)
	require.Len(t, got.Preferences, 1)
	assert.Equal(t, []time.Weekday{time.Friday}, got.Preferences[0].Weekdays)
	require.Len(t, got.BlockedDates, 1)
}

func TestClientRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	err := repo.Update(context.Background(), testutil.NewTestClient("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRepo_Delete_CascadesDetails(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(database)
	ctx := context.Background()

	c := testutil.NewTestClient("Ana",
		testutil.WithPreference(domain.Preference{Weekdays: []time.Weekday{time.Monday}, Weight: 1}),
		testutil.WithBlockedDate(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var prefs, dates int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM client_preferences`).Scan(&prefs))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM client_blocked_dates`).Scan(&dates))
	assert.Zero(t, prefs)
	assert.Zero(t, dates)
}

func TestClientRepo_Delete_NotFound(t *testing.T) {
	repo := NewSQLiteClientRepo(testutil.NewTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrNotFound)
}
