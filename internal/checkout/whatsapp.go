// Package checkout formats a cart into a pre-filled WhatsApp message
// URL. This is a one-way handoff: nothing is sent, awaited or parsed.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fuego-be/internal/cart"
	"fuego-be/internal/catalog"
)

// ErrEmptyCart is returned when there is nothing to hand off.
var ErrEmptyCart = errors.New("cart is empty")

// Builder assembles wa.me order URLs for a fixed phone number. The
// number is stored without the leading "+", as wa.me expects.
type Builder struct {
	phone string
}

func NewBuilder(phone string) *Builder {
	return &Builder{phone: strings.TrimPrefix(phone, "+")}
}

// URL returns the wa.me link carrying the order summary for the given
// snapshot.
func (b *Builder) URL(snap cart.Snapshot) (string, error) {
	msg, err := b.Message(snap)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, url.QueryEscape(msg)), nil
}

// Message renders the order summary: a numbered line per cart item with
// line/gender, optional category and quantity, then the total count.
func (b *Builder) Message(snap cart.Snapshot) (string, error) {
	if len(snap.Items) == 0 {
		return "", ErrEmptyCart
	}

	var lines []string
	lines = append(lines, "Hola, quiero realizar el siguiente pedido:", "")

	for i, item := range snap.Items {
		p := item.Product
		lines = append(lines,
			fmt.Sprintf("%d) %s — %s (%s)", i+1, p.Code, p.InspiredBy, p.House),
			fmt.Sprintf("   • Línea / Género: %s - %s", p.Line, genderLabel(p.Gender)),
		)
		if p.HasCategory() {
			lines = append(lines, fmt.Sprintf("   • Categoría: %s", *p.Category))
		}
		lines = append(lines, fmt.Sprintf("   • Cantidad: %d", item.Quantity), "")
	}

	lines = append(lines,
		fmt.Sprintf("Total de productos: %d", snap.TotalItems),
		"",
		"Por favor confirmar disponibilidad y enviarme la cotización final. Gracias.",
	)

	return strings.Join(lines, "\n"), nil
}

func genderLabel(g catalog.Gender) string {
	if g == catalog.GenderWomen {
		return "Mujer"
	}
	return "Hombre"
}
