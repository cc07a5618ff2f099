package cart

import "fuego-be/internal/catalog"

// UnitPrice is the placeholder price used for the subtotal. There is no
// real pricing; quotes happen over the WhatsApp handoff.
const UnitPrice = 45

// Item is one cart line. The product is stored by value so a later
// catalog change does not retroactively alter persisted entries.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Snapshot is the immutable view published to observers after every
// mutation. Items is a fresh copy on each publish.
type Snapshot struct {
	Items      []Item `json:"items"`
	IsOpen     bool   `json:"is_open"`
	TotalItems int    `json:"total_items"`
	Subtotal   int    `json:"subtotal"`
}

// persistedState is the durable slice of the store: the item list and
// nothing else. The open/closed flag is transient.
type persistedState struct {
	Items []Item `json:"items"`
}

func totals(items []Item) (count, subtotal int) {
	for _, it := range items {
		count += it.Quantity
	}
	return count, count * UnitPrice
}
