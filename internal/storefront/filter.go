package storefront

import (
	"strings"

	"TechModa/internal/catalog"
)

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "Todos"

// Filter narrows products client-side: a case-insensitive substring match on
// name or description, and an exact category match unless the all-categories
// sentinel is used. Pure function; the input slice is not modified.
func Filter(products []catalog.Product, search, category string) []catalog.Product {
	search = strings.ToLower(search)

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
