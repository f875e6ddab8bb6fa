package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"TechModa/internal/catalog"
)

// DefaultBaseURL is the build-time base address, settable with
//
//	go build -ldflags "-X TechModa/internal/storefront.DefaultBaseURL=https://..."
//
// The CATALOG_API_URL environment variable takes priority over it; the
// placeholder below is the last resort.
var DefaultBaseURL string

const placeholderBaseURL = "http://localhost:8082"

// ResolveBaseURL picks the API base address: runtime env, then build-time
// default, then placeholder.
func ResolveBaseURL() string {
	if v := os.Getenv("CATALOG_API_URL"); v != "" {
		return v
	}
	if DefaultBaseURL != "" {
		return DefaultBaseURL
	}
	return placeholderBaseURL
}

// Client is the typed wrapper over the five catalog endpoints. Any non-2xx
// response is flattened to an error carrying the numeric status and status
// text; the failure body is not inspected.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 3 * time.Second},
	}
}

type listEnvelope struct {
	Products []catalog.Product `json:"products"`
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var env listEnvelope
	if err := c.do(ctx, http.MethodGet, c.BaseURL+"/products", nil, &env); err != nil {
		return nil, err
	}
	if env.Products == nil {
		return []catalog.Product{}, nil
	}
	return env.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s", c.BaseURL, id), nil, &p)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, in catalog.ProductInput) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, http.MethodPost, c.BaseURL+"/products", in, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch catalog.ProductPatch) (catalog.Product, error) {
	var p catalog.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/products/%s", c.BaseURL, id), patch, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%s", c.BaseURL, id), nil, nil)
}

// do issues one request and decodes the success body into out (when out is
// non-nil). Any non-2xx status becomes the flattened client error.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
