package service

import (
	"testing"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func producto(nombre string, precio int64) model.Producto {
	return model.Producto{ID: uuid.New(), Nombre: nombre, Precio: decimal.NewFromInt(precio)}
}

func TestCarritoAgregarDuplicadoIncrementaCantidad(t *testing.T) {
	coca := producto("Coca Cola 1.5L", 1500)

	c := NewCarrito()
	c.AgregarItem(coca)
	c.AgregarItem(coca)
	c.AgregarItem(coca)

	assert.Len(t, c.Items(), 1, "same product must accumulate into one line")
	assert.Equal(t, 3, c.Items()[0].Cantidad)
	assert.True(t, c.Items()[0].Subtotal.Equal(decimal.NewFromInt(4500)))
}

func TestCarritoTotalEsSumaDeSubtotales(t *testing.T) {
	coca := producto("Coca Cola 1.5L", 1500)
	pan := producto("Pan Lactal", 800)

	c := NewCarrito()
	c.AgregarItem(coca)
	c.AgregarItem(pan)
	c.AgregarItem(coca)

	suma := decimal.Zero
	for _, it := range c.Items() {
		suma = suma.Add(it.Subtotal)
	}
	assert.True(t, c.Total().Equal(suma), "total must always equal the sum of line subtotals")
	assert.True(t, c.Total().Equal(decimal.NewFromInt(3800)))

	c.QuitarItem(0) // coca (qty 2)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(800)))
}

func TestCarritoQuitarItemFueraDeRango(t *testing.T) {
	c := NewCarrito()
	c.AgregarItem(producto("Yerba 1kg", 5000))

	c.QuitarItem(-1)
	c.QuitarItem(5)
	assert.Len(t, c.Items(), 1)
}

func TestCarritoVaciar(t *testing.T) {
	c := NewCarrito()
	c.AgregarItem(producto("Azucar 1kg", 1200))
	c.Vaciar()

	assert.Empty(t, c.Items())
	assert.True(t, c.Total().IsZero())
}
