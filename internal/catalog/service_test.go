package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"TechModa/internal/catalog"
)

// fakeClock hands out timestamps one second apart so updated_at ordering is
// deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newService(store catalog.Store) *catalog.Service {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return &catalog.Service{Store: store, Log: zap.NewNop(), Now: clock.now}
}

func strPtr(s string) *string { return &s }

func numPtr(f float64) *catalog.Number {
	n := catalog.Number(f)
	return &n
}

func TestListEmptyCatalog(t *testing.T) {
	svc := newService(catalog.NewMemStore())

	products, opErr := svc.List(context.Background())
	require.Nil(t, opErr)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateRoundTrip(t *testing.T) {
	svc := newService(catalog.NewMemStore())
	ctx := context.Background()

	created, opErr := svc.Create(ctx, catalog.ProductInput{
		Name:  strPtr("X"),
		Price: numPtr(9.99),
	})
	require.Nil(t, opErr)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 9.99, created.Price)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	assert.Empty(t, created.Description)
	assert.Empty(t, created.Category)
	assert.Empty(t, created.ImageURL)

	got, opErr := svc.Get(ctx, created.ID)
	require.Nil(t, opErr)
	assert.Equal(t, created, got)
}

func TestPartialUpdatePreservesUntouchedFields(t *testing.T) {
	svc := newService(catalog.NewMemStore())
	ctx := context.Background()

	in := catalog.ProductInput{
		Name:        strPtr("Zapatillas Runner"),
		Price:       numPtr(89.99),
		Description: "Zapatillas para correr",
		Category:    "Zapatos",
		Stock:       25,
	}
	created, opErr := svc.Create(ctx, in)
	require.Nil(t, opErr)

	updated, opErr := svc.Update(ctx, created.ID, catalog.ProductPatch{Price: numPtr(59.99)})
	require.Nil(t, opErr)

	assert.Equal(t, 59.99, updated.Price)
	assert.Equal(t, 25, updated.Stock)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateNonexistentID(t *testing.T) {
	store := catalog.NewMemStore()
	svc := newService(store)
	ctx := context.Background()

	_, opErr := svc.Update(ctx, "missing", catalog.ProductPatch{Name: strPtr("nuevo")})
	require.NotNil(t, opErr)
	assert.Equal(t, catalog.KindNotFound, opErr.Kind)

	products, listErr := svc.List(ctx)
	require.Nil(t, listErr)
	assert.Empty(t, products)
}

func TestEmptyPatchStillRefreshesUpdatedAt(t *testing.T) {
	svc := newService(catalog.NewMemStore())
	ctx := context.Background()

	created, opErr := svc.Create(ctx, catalog.ProductInput{Name: strPtr("X"), Price: numPtr(1)})
	require.Nil(t, opErr)

	updated, opErr := svc.Update(ctx, created.ID, catalog.ProductPatch{})
	require.Nil(t, opErr)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.Name, updated.Name)
}

func TestDeleteIsIdempotentSuccess(t *testing.T) {
	svc := newService(catalog.NewMemStore())
	ctx := context.Background()

	created, opErr := svc.Create(ctx, catalog.ProductInput{Name: strPtr("X"), Price: numPtr(1)})
	require.Nil(t, opErr)

	require.Nil(t, svc.Delete(ctx, created.ID))
	require.Nil(t, svc.Delete(ctx, created.ID))

	_, getErr := svc.Get(ctx, created.ID)
	require.NotNil(t, getErr)
	assert.Equal(t, catalog.KindNotFound, getErr.Kind)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := newService(catalog.NewMemStore())
	ctx := context.Background()

	_, opErr := svc.Create(ctx, catalog.ProductInput{Description: "only desc"})
	require.NotNil(t, opErr)
	assert.Equal(t, catalog.KindValidation, opErr.Kind)

	products, listErr := svc.List(ctx)
	require.Nil(t, listErr)
	assert.Empty(t, products)
}

func TestGetMissingID(t *testing.T) {
	svc := newService(catalog.NewMemStore())

	_, opErr := svc.Get(context.Background(), "")
	require.NotNil(t, opErr)
	assert.Equal(t, catalog.KindValidation, opErr.Kind)
}

// Range validation is a client concern; the service persists a negative
// price as-is.
func TestNegativePriceIsAccepted(t *testing.T) {
	svc := newService(catalog.NewMemStore())

	created, opErr := svc.Create(context.Background(), catalog.ProductInput{
		Name:  strPtr("broken"),
		Price: numPtr(-5),
	})
	require.Nil(t, opErr)
	assert.Equal(t, -5.0, created.Price)
}
