package catalog

import "sort"

const maxRelated = 4

// Catalog holds the static product list and serves lookups over it.
// The list never changes after construction, so all methods are safe
// for concurrent use.
type Catalog struct {
	list   []Product
	byCode map[string]int
}

// New builds a catalog over the built-in dataset.
func New() *Catalog {
	return newFrom(products)
}

// NewWith builds a catalog over a caller-provided list. Used by tests
// and by hosts that ship their own dataset.
func NewWith(list []Product) *Catalog {
	return newFrom(list)
}

func newFrom(list []Product) *Catalog {
	c := &Catalog{
		list:   make([]Product, len(list)),
		byCode: make(map[string]int, len(list)),
	}
	copy(c.list, list)
	for i, p := range c.list {
		c.byCode[p.Code] = i
	}
	return c
}

// All returns a copy of the full product list in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.list))
	copy(out, c.list)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.list) }

// ByCode looks up a product by its code.
func (c *Catalog) ByCode(code string) (Product, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Product{}, false
	}
	return c.list[i], true
}

// Iconic returns the curated carousel products in their fixed order.
// Codes missing from the dataset are skipped.
func (c *Catalog) Iconic() []Product {
	out := make([]Product, 0, len(iconicCodes))
	for _, code := range iconicCodes {
		if p, ok := c.ByCode(code); ok {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to four products sharing the given product's house
// or non-null category, excluding the product itself.
func (c *Catalog) Related(code string) []Product {
	base, ok := c.ByCode(code)
	if !ok {
		return nil
	}

	out := make([]Product, 0, maxRelated)
	for _, p := range c.list {
		if p.Code == base.Code {
			continue
		}
		sameHouse := p.House == base.House
		sameCategory := base.HasCategory() && p.HasCategory() && *p.Category == *base.Category
		if sameHouse || sameCategory {
			out = append(out, p)
			if len(out) == maxRelated {
				break
			}
		}
	}
	return out
}

// Houses returns the unique house names, sorted.
func (c *Catalog) Houses() []string {
	return c.uniqueSorted(func(p Product) (string, bool) {
		return p.House, true
	})
}

// Categories returns the unique non-null categories, sorted.
func (c *Catalog) Categories() []string {
	return c.uniqueSorted(func(p Product) (string, bool) {
		return p.CategoryOrEmpty(), p.HasCategory()
	})
}

// Lines returns the unique product lines, sorted.
func (c *Catalog) Lines() []string {
	return c.uniqueSorted(func(p Product) (string, bool) {
		return string(p.Line), true
	})
}

func (c *Catalog) uniqueSorted(key func(Product) (string, bool)) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.list {
		k, ok := key(p)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
