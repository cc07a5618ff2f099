package filter

import "net/url"

// Query parameter names for shareable filtered catalog views.
const (
	paramGender   = "gender"
	paramLine     = "line"
	paramHouse    = "house"
	paramCategory = "category"
	paramSearch   = "q"
)

// Decode maps URL query parameters onto a Spec. Navigation-in carries at
// most one value per set parameter, so each populates a one-element set.
// Unknown values pass through and are neutralized by NormalizedGender /
// the accept-all semantics of the engine.
func Decode(params url.Values) Spec {
	spec := Spec{Gender: "all"}

	if g := params.Get(paramGender); g != "" {
		spec.Gender = g
	}
	if v := params.Get(paramLine); v != "" {
		spec.Lines = []string{v}
	}
	if v := params.Get(paramHouse); v != "" {
		spec.Houses = []string{v}
	}
	if v := params.Get(paramCategory); v != "" {
		spec.Categories = []string{v}
	}
	spec.Search = params.Get(paramSearch)

	return spec
}

// Encode maps a Spec back onto query parameters. Zero-value fields are
// omitted so an unconstrained spec encodes to an empty query.
func Encode(spec Spec) url.Values {
	params := url.Values{}

	if g := spec.NormalizedGender(); g != "all" {
		params.Set(paramGender, g)
	}
	for _, v := range spec.Lines {
		params.Add(paramLine, v)
	}
	for _, v := range spec.Houses {
		params.Add(paramHouse, v)
	}
	for _, v := range spec.Categories {
		params.Add(paramCategory, v)
	}
	if spec.Search != "" {
		params.Set(paramSearch, spec.Search)
	}

	return params
}
