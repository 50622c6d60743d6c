package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/testutil"
)

func TestRequestRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(database)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	c := testutil.NewTestClient("Ana")
	require.NoError(t, clients.Create(ctx, c))

	req := testutil.NewTestRequest(c.ID, 2)
	req.DurationMin = 90
	require.NoError(t, repo.Create(ctx, req))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, req.ID, all[0].ID)
	assert.Equal(t, 90, all[0].DurationMin)
	assert.Equal(t, 2, all[0].Count)

	byClient, err := repo.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	none, err := repo.ListByClient(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRequestRepo_ForeignKeyEnforced(t *testing.T) {
	repo := NewSQLiteRequestRepo(testutil.NewTestDB(t))
	err := repo.Create(context.Background(), testutil.NewTestRequest("no-such-client", 1))
	assert.Error(t, err)
}

func TestRequestRepo_DeleteByClient(t *testing.T) {
	database := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(database)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	c := testutil.NewTestClient("Ana")
	require.NoError(t, clients.Create(ctx, c))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRequest(c.ID, 1)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRequest(c.ID, 2)))

	require.NoError(t, repo.DeleteByClient(ctx, c.ID))
	left, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestRequestRepo_CascadeOnClientDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(database)
	repo := NewSQLiteRequestRepo(database)
	ctx := context.Background()

	c := testutil.NewTestClient("Ana")
	require.NoError(t, clients.Create(ctx, c))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRequest(c.ID, 1)))
	require.NoError(t, clients.Delete(ctx, c.ID))

	left, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}
