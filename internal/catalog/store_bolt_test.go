package catalog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TechModa/internal/catalog"
)

func newBoltStore(t *testing.T) *catalog.BoltStore {
	t.Helper()

	store, err := catalog.OpenBoltStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store := newBoltStore(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	p := catalog.Product{
		ID: "p1", Name: "Camiseta", Price: 19.99, Category: "Ropa",
		Stock: 50, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, store.Put(ctx, p))

	got, ok, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	got.CreatedAt, got.UpdatedAt = p.CreatedAt, p.UpdatedAt
	assert.Equal(t, p, got)

	products, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestBoltStoreGetMissing(t *testing.T) {
	store := newBoltStore(t)

	_, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltStoreDeleteMissingIsNoOp(t *testing.T) {
	store := newBoltStore(t)

	require.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestBoltStorePutOverwrites(t *testing.T) {
	store := newBoltStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, catalog.Product{ID: "p1", Name: "antes", Price: 1}))
	require.NoError(t, store.Put(ctx, catalog.Product{ID: "p1", Name: "después", Price: 2}))

	got, ok, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "después", got.Name)
	assert.Equal(t, 2.0, got.Price)
}
