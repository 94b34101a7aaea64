package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/liminal/internal/catalog"
	"github.com/cory-johannsen/liminal/internal/storage/postgres"
	"github.com/cory-johannsen/liminal/internal/testutil"
)

func setupRoomRepo(t *testing.T) *postgres.RoomRepository {
	t.Helper()
	return postgres.NewRoomRepository(testutil.NewPool(t))
}

func store(t *testing.T, repo *postgres.RoomRepository, prune bool, rooms ...catalog.Room) {
	t.Helper()
	_, err := repo.Store(context.Background(), rooms, prune)
	require.NoError(t, err)
}

func TestRoomRepository_StoreAndLoadAll(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	rooms := catalog.Builtin()
	_, err := repo.Store(ctx, rooms, false)
	require.NoError(t, err)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(rooms))
	for i := range rooms {
		assert.Equal(t, rooms[i].Slug, loaded[i].Slug, "catalog order preserved")
		assert.Equal(t, rooms[i].Title, loaded[i].Title)
		assert.Equal(t, rooms[i].Exits, loaded[i].Exits)
		assert.Equal(t, rooms[i].Variants, loaded[i].Variants)
		assert.Equal(t, rooms[i].Content, loaded[i].Content)
	}
}

func TestRoomRepository_StoreUpdatesExisting(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	room := catalog.Room{Slug: "hall", Title: "Hall", Exits: []string{"attic"}}
	store(t, repo, false, room)

	room.Title = "Long Hall"
	room.Variants = []catalog.Variant{{Tone: catalog.Sharp, Line: "It goes on."}}
	store(t, repo, false, room)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Long Hall", loaded[0].Title)
	assert.Equal(t, room.Variants, loaded[0].Variants)
}

func TestRoomRepository_NilSlicesStoredEmpty(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	store(t, repo, false, catalog.Room{Slug: "void", Title: "Void"})

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Empty(t, loaded[0].Exits)
	assert.Empty(t, loaded[0].Variants)
}

func TestRoomRepository_StorePrunesMissing(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	store(t, repo, false, catalog.Builtin()...)

	builtin := catalog.Builtin()
	pruned, err := repo.Store(ctx, builtin[:2], true)
	require.NoError(t, err)
	assert.Equal(t, int64(len(builtin)-2), pruned)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "atrium", loaded[0].Slug)
	assert.Equal(t, "mirror", loaded[1].Slug)
}

func TestRoomRepository_StoreWithoutPruneKeepsOthers(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	store(t, repo, false, catalog.Builtin()...)
	pruned, err := repo.Store(ctx, []catalog.Room{{Slug: "hall", Title: "Hall"}}, false)
	require.NoError(t, err)
	assert.Zero(t, pruned)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Builtin())+1, n)
}

func TestRoomRepository_StoreFailureRollsBack(t *testing.T) {
	repo := setupRoomRepo(t)
	ctx := context.Background()

	store(t, repo, false, catalog.Builtin()...)

	// PostgreSQL rejects NUL in text, failing the second insert after the
	// first has run inside the transaction.
	batch := []catalog.Room{
		{Slug: "hall", Title: "Hall"},
		{Slug: "broken", Title: "bad\x00title"},
	}
	_, err := repo.Store(ctx, batch, true)
	require.Error(t, err)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(catalog.Builtin()), "nothing pruned or inserted")
	for _, r := range loaded {
		assert.NotEqual(t, "hall", r.Slug)
	}
}

func TestRoomRepository_LoadAllEmpty(t *testing.T) {
	repo := setupRoomRepo(t)

	loaded, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}
