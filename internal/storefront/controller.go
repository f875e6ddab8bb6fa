package storefront

import (
	"context"
	"sync"

	"TechModa/internal/catalog"
)

const loadFallbackError = "Error al cargar productos"

// Result is the outcome of a mutating controller call. Failures never
// escape as errors; callers decide how to surface Err.
type Result struct {
	OK  bool
	Err string
}

func ok() Result              { return Result{OK: true} }
func failed(err error) Result { return Result{Err: err.Error()} }

// Controller caches the catalog on the client side and reconciles the cache
// after every successful mutation. The remote store stays authoritative: on
// any failure the cached products are left byte-for-byte untouched.
type Controller struct {
	api *Client

	mu       sync.Mutex
	products []catalog.Product
	loading  bool
	err      string
	loaded   bool
}

func NewController(api *Client) *Controller {
	return &Controller{api: api, products: []catalog.Product{}}
}

// Load fetches the full catalog, replacing the cache. It is both the initial
// load and the refetch; the sticky error field is only written here.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	products, err := c.api.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.loaded = true
	if err != nil {
		c.err = err.Error()
		if c.err == "" {
			c.err = loadFallbackError
		}
		return
	}
	c.products = products
	c.err = ""
}

// EnsureLoaded runs Load once; later calls are no-ops.
func (c *Controller) EnsureLoaded(ctx context.Context) {
	c.mu.Lock()
	done := c.loaded
	c.mu.Unlock()
	if !done {
		c.Load(ctx)
	}
}

// Products returns a copy of the cached catalog in display order: newest
// creations first, otherwise server list order.
func (c *Controller) Products() []catalog.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Create persists a new product remotely, then prepends it to the cache.
func (c *Controller) Create(ctx context.Context, in catalog.ProductInput) Result {
	p, err := c.api.CreateProduct(ctx, in)
	if err != nil {
		return failed(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]catalog.Product{p}, c.products...)
	return ok()
}

// Update patches the product remotely, then replaces the matching cached
// record in place, preserving its position.
func (c *Controller) Update(ctx context.Context, id string, patch catalog.ProductPatch) Result {
	p, err := c.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		return failed(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i] = p
			break
		}
	}
	return ok()
}

// Delete removes the product remotely, then drops it from the cache.
func (c *Controller) Delete(ctx context.Context, id string) Result {
	if err := c.api.DeleteProduct(ctx, id); err != nil {
		return failed(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.products[:0:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	return ok()
}
