package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Product is the catalog's sole entity. IDs are server-generated and
// immutable; created_at is set once, updated_at is refreshed on every update.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Number accepts a JSON number or a numeric string. A value that parses to
// neither decodes as zero; range is not checked here.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// ProductInput is the create request body. Name and Price are pointers so
// the handler can tell an absent field from a zero one; only presence is
// validated.
type ProductInput struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
	Price       *Number `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// ProductPatch is the partial update body. Every field is optional; a nil
// field leaves the stored value untouched. Stock and the timestamps are not
// patchable.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *Number `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Apply merges the patch into p, field by field, update-if-present.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = float64(*pp.Price)
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
}
