// Package search backs the live search dropdown: an ad-hoc multi-field
// matcher over the catalog, distinct from the filter engine's free-text
// stage.
package search

import (
	"strings"

	"fuego-be/internal/catalog"
)

// Kind tags what a result matched on. Kinds are scanned in a fixed
// priority order; code matches always surface first.
type Kind string

const (
	KindCode     Kind = "code"
	KindName     Kind = "name"
	KindHouse    Kind = "house"
	KindCategory Kind = "category"
	KindLine     Kind = "line"
)

// Result is one dropdown entry. Product is set for code and name kinds;
// the remaining kinds stand for a single-value filter shortcut.
type Result struct {
	Kind    Kind             `json:"kind"`
	Value   string           `json:"value"`
	Product *catalog.Product `json:"product,omitempty"`
}

const maxResults = 10

// Index scans the catalog per query. The catalog is tiny and immutable,
// so there is nothing to precompute.
type Index struct {
	catalog *catalog.Catalog
}

func NewIndex(c *catalog.Catalog) *Index {
	return &Index{catalog: c}
}

// Search returns at most ten results in kind-priority order. Within a
// kind, catalog order is preserved; duplicate (kind, value) pairs are
// collapsed. Truncation is global, so abundant high-priority matches can
// starve out lower kinds.
func (idx *Index) Search(query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	products := idx.catalog.All()
	seen := make(map[string]struct{})
	var results []Result

	add := func(kind Kind, value string, p *catalog.Product) {
		key := string(kind) + "\x00" + value
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		results = append(results, Result{Kind: kind, Value: value, Product: p})
	}

	for i := range products {
		p := products[i]
		if strings.Contains(strings.ToLower(p.Code), q) {
			add(KindCode, p.Code, &products[i])
		}
	}

	for i := range products {
		p := products[i]
		if strings.Contains(strings.ToLower(p.InspiredBy), q) {
			add(KindName, p.InspiredBy, &products[i])
		}
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.House), q) {
			add(KindHouse, p.House, nil)
		}
	}

	for _, p := range products {
		if p.HasCategory() && strings.Contains(strings.ToLower(*p.Category), q) {
			add(KindCategory, *p.Category, nil)
		}
	}

	for _, line := range []string{"FM", "HM", "UM"} {
		if strings.Contains(strings.ToLower(line), q) {
			add(KindLine, line, nil)
		}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
