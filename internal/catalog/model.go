package catalog

// Gender of the line a perfume belongs to.
type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
)

// Line identifies the product line a code is minted under.
type Line string

const (
	LineFM Line = "FM"
	LineHM Line = "HM"
	LineUM Line = "UM"
)

// Product is a single catalog entry. The code is the primary key used
// everywhere: cart line identity, routing, de-duplication.
type Product struct {
	Code       string  `json:"code"`
	InspiredBy string  `json:"inspired_by_name"`
	House      string  `json:"house"`
	Gender     Gender  `json:"gender"`
	Line       Line    `json:"line"`
	Category   *string `json:"category,omitempty"`
	Image      string  `json:"image"`
	Popularity int     `json:"popularity"`
}

// HasCategory reports whether the product carries a scent category.
func (p Product) HasCategory() bool {
	return p.Category != nil && *p.Category != ""
}

// CategoryOrEmpty returns the category value or "" when absent.
func (p Product) CategoryOrEmpty() string {
	if p.Category == nil {
		return ""
	}
	return *p.Category
}
