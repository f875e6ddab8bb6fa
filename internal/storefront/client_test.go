package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TechModa/internal/catalog"
	"TechModa/internal/storefront"
)

func TestListUnwrapsEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":"p1","name":"Camiseta","price":19.99}]}`))
	}))
	defer ts.Close()

	c := storefront.NewClient(ts.URL)
	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestListMissingEnvelopeKeyIsEmptySlice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	products, err := storefront.NewClient(ts.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestFailureIsFlattenedToStatusAndText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// The body carries a structured error the client must ignore.
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Producto no encontrado"}`))
	}))
	defer ts.Close()

	_, err := storefront.NewClient(ts.URL).GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Error 404: Not Found", err.Error())
}

func TestCreateSendsBodyVerbatim(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"new","name":"Camiseta","price":19.99}`))
	}))
	defer ts.Close()

	name := "Camiseta"
	price := catalog.Number(19.99)
	p, err := storefront.NewClient(ts.URL).CreateProduct(context.Background(), catalog.ProductInput{
		Name:  &name,
		Price: &price,
		Stock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", p.ID)
	assert.Equal(t, "Camiseta", got["name"])
	assert.Equal(t, 5.0, got["stock"])
}

func TestUpdateSendsOnlySuppliedFields(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/products/p1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"p1","price":59.99}`))
	}))
	defer ts.Close()

	price := catalog.Number(59.99)
	_, err := storefront.NewClient(ts.URL).UpdateProduct(context.Background(), "p1", catalog.ProductPatch{
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"price": 59.99}, got)
}

func TestDeleteReturnsNothing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"message":"Producto eliminado","id":"p1"}`))
	}))
	defer ts.Close()

	require.NoError(t, storefront.NewClient(ts.URL).DeleteProduct(context.Background(), "p1"))
}

func TestBaseURLResolutionPrecedence(t *testing.T) {
	t.Run("env wins", func(t *testing.T) {
		t.Setenv("CATALOG_API_URL", "http://runtime:1234")
		assert.Equal(t, "http://runtime:1234", storefront.ResolveBaseURL())
	})

	t.Run("build-time default next", func(t *testing.T) {
		t.Setenv("CATALOG_API_URL", "")
		old := storefront.DefaultBaseURL
		storefront.DefaultBaseURL = "http://buildtime:1234"
		defer func() { storefront.DefaultBaseURL = old }()

		assert.Equal(t, "http://buildtime:1234", storefront.ResolveBaseURL())
	})

	t.Run("placeholder last", func(t *testing.T) {
		t.Setenv("CATALOG_API_URL", "")
		old := storefront.DefaultBaseURL
		storefront.DefaultBaseURL = ""
		defer func() { storefront.DefaultBaseURL = old }()

		assert.NotEmpty(t, storefront.ResolveBaseURL())
	})
}

func TestTrailingSlashTrimmed(t *testing.T) {
	c := storefront.NewClient("http://example.com/")
	assert.Equal(t, "http://example.com", c.BaseURL)
}
