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

func fiadaCon(estado string, total int64) model.VentaFiada {
	return model.VentaFiada{
		ID:     uuid.New(),
		Estado: estado,
		Venta:  &model.Venta{ID: uuid.New(), Total: decimal.NewFromInt(total)},
	}
}

func TestClienteDeudaDerivadaDeFiadasImpagas(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	cliente := &model.Cliente{
		Nombre: "Marta",
		VentasFiadas: []model.VentaFiada{
			fiadaCon(model.FiadaPendiente, 3000),
			fiadaCon(model.FiadaVencida, 1500),
			fiadaCon(model.FiadaPagada, 9000),
		},
	}
	require.NoError(t, repo.Create(context.Background(), cliente))

	resp, err := svc.ObtenerPorID(context.Background(), cliente.ID)
	require.NoError(t, err)
	// Overdue debts still count; only paid ones stop counting
	assert.True(t, resp.Deuda.Equal(decimal.NewFromInt(4500)))
}

func TestEliminarClienteConDeudaRechazado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	cliente := &model.Cliente{
		Nombre:       "Marta",
		VentasFiadas: []model.VentaFiada{fiadaCon(model.FiadaPendiente, 3000)},
	}
	require.NoError(t, repo.Create(context.Background(), cliente))

	err := svc.Eliminar(context.Background(), cliente.ID)
	require.Error(t, err)
	assert.Contains(t, repo.clientes, cliente.ID)
}

func TestEliminarClienteSinDeuda(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	cliente := &model.Cliente{
		Nombre:       "Jorge",
		VentasFiadas: []model.VentaFiada{fiadaCon(model.FiadaPagada, 9000)},
	}
	require.NoError(t, repo.Create(context.Background(), cliente))

	require.NoError(t, svc.Eliminar(context.Background(), cliente.ID))
	assert.NotContains(t, repo.clientes, cliente.ID)
}

func TestActualizarClienteParcial(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	tel := "11-5555-0000"
	cliente := &model.Cliente{Nombre: "Marta", Telefono: &tel}
	require.NoError(t, repo.Create(context.Background(), cliente))

	nuevoTel := "11-5555-1111"
	resp, err := svc.Actualizar(context.Background(), cliente.ID, dto.ActualizarClienteRequest{
		Telefono: &nuevoTel,
	})
	require.NoError(t, err)
	assert.Equal(t, "Marta", resp.Nombre, "unset fields keep their value")
	require.NotNil(t, resp.Telefono)
	assert.Equal(t, nuevoTel, *resp.Telefono)
}
