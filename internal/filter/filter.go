// Package filter narrows and orders the catalog for display. Apply is a
// pure function of (list, spec, sort); it never errors, malformed input
// degrades to "no constraint".
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fuego-be/internal/catalog"
)

// SortMode orders the filtered result set.
type SortMode string

const (
	SortPopular SortMode = "popular"
	SortName    SortMode = "az"
	SortCode    SortMode = "code"
)

// ParseSortMode maps a raw value to a sort mode, defaulting to popularity.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortName, SortCode, SortPopular:
		return SortMode(raw)
	}
	return SortPopular
}

// Spec is the set of active narrowing criteria. Empty slices and empty
// strings mean "no constraint".
type Spec struct {
	Gender     string   `json:"gender"`
	Lines      []string `json:"lines"`
	Houses     []string `json:"houses"`
	Categories []string `json:"categories"`
	Search     string   `json:"search"`
}

// NormalizedGender collapses unknown gender values to "all".
func (s Spec) NormalizedGender() string {
	switch s.Gender {
	case string(catalog.GenderMen), string(catalog.GenderWomen):
		return s.Gender
	}
	return "all"
}

// IsZero reports whether the spec constrains nothing.
func (s Spec) IsZero() bool {
	return s.NormalizedGender() == "all" &&
		len(s.Lines) == 0 &&
		len(s.Houses) == 0 &&
		len(s.Categories) == 0 &&
		s.Search == ""
}

// Count returns the number of active criteria, mirroring the filter-chip
// accounting: gender counts one, every set element counts one, a non-blank
// search counts one.
func (s Spec) Count() int {
	n := 0
	if s.NormalizedGender() != "all" {
		n++
	}
	n += len(s.Lines) + len(s.Houses) + len(s.Categories)
	if strings.TrimSpace(s.Search) != "" {
		n++
	}
	return n
}

// nameCollator orders display names the way a locale-aware comparison
// would (accents and case folded into the primary weight).
var nameCollator = collate.New(language.Spanish, collate.Loose)

// Apply runs the filter stages in fixed order and sorts the survivors.
// The input slice is never mutated.
func Apply(products []catalog.Product, spec Spec, mode SortMode) []catalog.Product {
	result := make([]catalog.Product, 0, len(products))
	result = append(result, products...)

	if q := strings.ToLower(strings.TrimSpace(spec.Search)); q != "" {
		result = keep(result, func(p catalog.Product) bool {
			return strings.Contains(strings.ToLower(p.Code), q) ||
				strings.Contains(strings.ToLower(p.InspiredBy), q) ||
				strings.Contains(strings.ToLower(p.House), q) ||
				(p.HasCategory() && strings.Contains(strings.ToLower(*p.Category), q)) ||
				strings.Contains(strings.ToLower(string(p.Line)), q)
		})
	}

	if g := spec.NormalizedGender(); g != "all" {
		result = keep(result, func(p catalog.Product) bool {
			return string(p.Gender) == g
		})
	}

	if len(spec.Lines) > 0 {
		result = keep(result, func(p catalog.Product) bool {
			return contains(spec.Lines, string(p.Line))
		})
	}

	if len(spec.Houses) > 0 {
		result = keep(result, func(p catalog.Product) bool {
			return contains(spec.Houses, p.House)
		})
	}

	if len(spec.Categories) > 0 {
		result = keep(result, func(p catalog.Product) bool {
			return p.HasCategory() && contains(spec.Categories, *p.Category)
		})
	}

	sortProducts(result, mode)
	return result
}

func sortProducts(list []catalog.Product, mode SortMode) {
	switch mode {
	case SortName:
		sort.SliceStable(list, func(i, j int) bool {
			return nameCollator.CompareString(list[i].InspiredBy, list[j].InspiredBy) < 0
		})
	case SortCode:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Code < list[j].Code
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Popularity > list[j].Popularity
		})
	}
}

func keep(list []catalog.Product, pred func(catalog.Product) bool) []catalog.Product {
	out := list[:0]
	for _, p := range list {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
