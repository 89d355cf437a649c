package service

import (
	"context"
	"testing"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sembrarDeuda(t *testing.T, fiadoRepo *stubFiadoRepo, total int64) *model.VentaFiada {
	t.Helper()
	venta := &model.Venta{ID: uuid.New(), Numero: 7, Total: decimal.NewFromInt(total)}
	fiada := &model.VentaFiada{
		VentaID:   venta.ID,
		ClienteID: uuid.New(),
		Estado:    model.FiadaPendiente,
		Venta:     venta,
	}
	require.NoError(t, fiadoRepo.CreateFiadaTx(nil, fiada))
	return fiada
}

func TestRegistrarPagoCierraLaDeuda(t *testing.T) {
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewFiadoService(fiadoRepo, cajaRepo)

	fiada := sembrarDeuda(t, fiadoRepo, 5000)

	metodo := "efectivo"
	resp, err := svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto:      decimal.NewFromInt(5000),
		MetodoPago: &metodo,
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(decimal.NewFromInt(5000)))

	assert.Equal(t, model.FiadaPagada, fiada.Estado)
	require.Len(t, fiadoRepo.pagos, 1)

	pagos := cajaRepo.porTipo(model.MovPagoFiado)
	require.Len(t, pagos, 1)
	assert.Equal(t, "Pago de deuda #7", pagos[0].Descripcion)
	assert.True(t, pagos[0].Monto.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, pagos[0].Notas)
	assert.Contains(t, *pagos[0].Notas, "efectivo")
}

func TestRegistrarPagoParcialTambienCierra(t *testing.T) {
	// House rule: ANY payment settles the debt, even a partial one. The
	// payment history keeps the real amount.
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewFiadoService(fiadoRepo, cajaRepo)

	fiada := sembrarDeuda(t, fiadoRepo, 5000)

	_, err := svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, model.FiadaPagada, fiada.Estado)
	pagos := cajaRepo.porTipo(model.MovPagoFiado)
	require.Len(t, pagos, 1)
	assert.True(t, pagos[0].Monto.Equal(decimal.NewFromInt(1000)), "the ledger records the amount actually paid")
}

func TestRegistrarPagoDeudaYaPagadaRechazado(t *testing.T) {
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewFiadoService(fiadoRepo, cajaRepo)

	fiada := sembrarDeuda(t, fiadoRepo, 5000)

	_, err := svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	// A second payment against the closed debt must not touch the books
	_, err = svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromInt(2000),
	})
	require.Error(t, err)
	require.Len(t, fiadoRepo.pagos, 1)
	require.Len(t, cajaRepo.porTipo(model.MovPagoFiado), 1)
}

func TestRegistrarPagoDeudaVencidaSigueCobrable(t *testing.T) {
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewFiadoService(fiadoRepo, cajaRepo)

	fiada := sembrarDeuda(t, fiadoRepo, 5000)
	fiada.Estado = model.FiadaVencida

	_, err := svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, model.FiadaPagada, fiada.Estado)
}

func TestRegistrarPagoMontoInvalido(t *testing.T) {
	fiadoRepo := newStubFiadoRepo()
	cajaRepo := newStubCajaRepo()
	svc := NewFiadoService(fiadoRepo, cajaRepo)

	fiada := sembrarDeuda(t, fiadoRepo, 5000)

	_, err := svc.RegistrarPago(context.Background(), fiada.ID, dto.RegistrarPagoRequest{
		Monto: decimal.Zero,
	})
	require.Error(t, err)
	assert.Equal(t, model.FiadaPendiente, fiada.Estado)
	assert.Empty(t, cajaRepo.movimientos)
}

func TestRegistrarPagoDeudaInexistente(t *testing.T) {
	svc := NewFiadoService(newStubFiadoRepo(), newStubCajaRepo())
	_, err := svc.RegistrarPago(context.Background(), uuid.New(), dto.RegistrarPagoRequest{
		Monto: decimal.NewFromInt(100),
	})
	require.Error(t, err)
}

func TestDeudasPorClienteSoloImpagas(t *testing.T) {
	fiadoRepo := newStubFiadoRepo()
	svc := NewFiadoService(fiadoRepo, newStubCajaRepo())

	pendiente := sembrarDeuda(t, fiadoRepo, 3000)
	pagada := sembrarDeuda(t, fiadoRepo, 9000)
	pagada.ClienteID = pendiente.ClienteID
	pagada.Estado = model.FiadaPagada

	deudas, err := svc.DeudasPorCliente(context.Background(), pendiente.ClienteID)
	require.NoError(t, err)
	require.Len(t, deudas, 1)
	assert.True(t, deudas[0].Total.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, model.FiadaPendiente, deudas[0].Estado)
}
