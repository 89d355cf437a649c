package service

import (
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/shopspring/decimal"
)

// ItemCarrito is one accumulated checkout line.
type ItemCarrito struct {
	Producto model.Producto
	Cantidad int
	Subtotal decimal.Decimal
}

// Carrito accumulates lines for the duration of a single checkout. Adding a
// product already in the cart bumps its quantity instead of appending a new
// line. Not safe for concurrent use; callers build one per checkout.
//
// Stock is NOT enforced here — the conditional decrement at confirmation time
// is the authority, so a stale cart can never oversell.
type Carrito struct {
	items []ItemCarrito
}

func NewCarrito() *Carrito { return &Carrito{} }

// AgregarItem adds one unit of p. An existing line for the same product gets
// cantidad+1 and its subtotal recomputed from the current line quantity.
func (c *Carrito) AgregarItem(p model.Producto) {
	for i := range c.items {
		if c.items[i].Producto.ID == p.ID {
			c.items[i].Cantidad++
			c.items[i].Subtotal = p.Precio.Mul(decimal.NewFromInt(int64(c.items[i].Cantidad)))
			return
		}
	}
	c.items = append(c.items, ItemCarrito{Producto: p, Cantidad: 1, Subtotal: p.Precio})
}

// QuitarItem drops the line at the given position. Out-of-range indexes are
// ignored.
func (c *Carrito) QuitarItem(idx int) {
	if idx < 0 || idx >= len(c.items) {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

func (c *Carrito) Vaciar() { c.items = nil }

func (c *Carrito) Items() []ItemCarrito { return c.items }

// Total is recomputed from the live lines on every read, never cached.
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal)
	}
	return total
}
