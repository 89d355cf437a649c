package service

import (
	"context"
	"testing"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVentaFixture() (*stubVentaRepo, *stubProductoRepo, *stubClienteRepo, *stubFiadoRepo, *stubCajaRepo, VentaService) {
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	clienteRepo := newStubClienteRepo()
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewVentaService(ventaRepo, productoRepo, clienteRepo, fiadoRepo, cajaRepo, nil)
	return ventaRepo, productoRepo, clienteRepo, fiadoRepo, cajaRepo, svc
}

func TestConfirmarVentaContado(t *testing.T) {
	_, productoRepo, _, fiadoRepo, cajaRepo, svc := newVentaFixture()
	coca := productoRepo.agregar("Coca Cola 1.5L", 1500, 10)
	pan := productoRepo.agregar("Pan Lactal", 800, 5)

	resp, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{
		Items: []dto.ItemVentaRequest{
			{ProductoID: coca.ID.String(), Cantidad: 2},
			{ProductoID: pan.ID.String(), Cantidad: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Numero)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(3800)))
	assert.False(t, resp.Fiada)
	require.Len(t, resp.Items, 2)

	// Stock decremented per line, by the line quantity
	assert.Equal(t, 8, coca.Stock)
	assert.Equal(t, 4, pan.Stock)
	assert.Equal(t, 2, productoRepo.descuentos[coca.ID])
	assert.Equal(t, 1, productoRepo.descuentos[pan.ID])

	// One income ledger entry, no debt
	ingresos := cajaRepo.porTipo(model.MovIngreso)
	require.Len(t, ingresos, 1)
	assert.Equal(t, "Venta #1", ingresos[0].Descripcion)
	assert.True(t, ingresos[0].Monto.Equal(decimal.NewFromInt(3800)))
	require.NotNil(t, ingresos[0].VentaID)
	assert.Empty(t, cajaRepo.porTipo(model.MovFiado))
	assert.Empty(t, fiadoRepo.fiadas)
}

func TestConfirmarVentaFiada(t *testing.T) {
	_, productoRepo, clienteRepo, fiadoRepo, cajaRepo, svc := newVentaFixture()
	yerba := productoRepo.agregar("Yerba 1kg", 5000, 3)

	cliente := &model.Cliente{Nombre: "Marta"}
	require.NoError(t, clienteRepo.Create(context.Background(), cliente))

	venc := "2026-09-15"
	resp, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: yerba.ID.String(), Cantidad: 1}},
		Fiado: &dto.FiadoRequest{ClienteID: cliente.ID.String(), FechaVencimiento: &venc},
	})
	require.NoError(t, err)
	assert.True(t, resp.Fiada)

	// Exactly one pending debt linked to the sale
	require.Len(t, fiadoRepo.fiadas, 1)
	for _, f := range fiadoRepo.fiadas {
		assert.Equal(t, model.FiadaPendiente, f.Estado)
		assert.Equal(t, cliente.ID, f.ClienteID)
		require.NotNil(t, f.FechaVencimiento)
		assert.Equal(t, "2026-09-15", f.FechaVencimiento.Format("2006-01-02"))
	}

	// One credit-issued ledger entry, and NO income entry: the money is owed,
	// not in the drawer
	fiados := cajaRepo.porTipo(model.MovFiado)
	require.Len(t, fiados, 1)
	assert.Equal(t, "Venta al fiado #1", fiados[0].Descripcion)
	assert.True(t, fiados[0].Monto.Equal(decimal.NewFromInt(5000)))
	assert.Empty(t, cajaRepo.porTipo(model.MovIngreso))

	// Stock still decrements on credit sales
	assert.Equal(t, 2, yerba.Stock)
}

func TestConfirmarVentaStockInsuficiente(t *testing.T) {
	ventaRepo, productoRepo, _, _, cajaRepo, svc := newVentaFixture()
	pan := productoRepo.agregar("Pan Lactal", 800, 1)

	_, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: pan.ID.String(), Cantidad: 3}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock insuficiente")
	assert.Contains(t, err.Error(), "Pan Lactal")

	// Nothing was written to the ledger
	assert.Empty(t, cajaRepo.movimientos)
	_ = ventaRepo
}

func TestConfirmarVentaCarritoVacio(t *testing.T) {
	_, _, _, _, _, svc := newVentaFixture()
	_, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{})
	require.Error(t, err)
}

func TestConfirmarVentaFiadaClienteInexistente(t *testing.T) {
	_, productoRepo, _, fiadoRepo, cajaRepo, svc := newVentaFixture()
	coca := productoRepo.agregar("Coca Cola 1.5L", 1500, 10)

	_, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: coca.ID.String(), Cantidad: 1}},
		Fiado: &dto.FiadoRequest{ClienteID: "11111111-1111-1111-1111-111111111111"},
	})
	require.Error(t, err)
	assert.Empty(t, fiadoRepo.fiadas)
	assert.Empty(t, cajaRepo.movimientos)
	assert.Equal(t, 10, coca.Stock)
}

func TestConfirmarVentaItemsRepetidosAcumulan(t *testing.T) {
	_, productoRepo, _, _, _, svc := newVentaFixture()
	coca := productoRepo.agregar("Coca Cola 1.5L", 1500, 10)

	// The same product sent as two request items collapses into one line
	resp, err := svc.ConfirmarVenta(context.Background(), dto.ConfirmarVentaRequest{
		Items: []dto.ItemVentaRequest{
			{ProductoID: coca.ID.String(), Cantidad: 1},
			{ProductoID: coca.ID.String(), Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Cantidad)
	assert.Equal(t, 7, coca.Stock)
}
