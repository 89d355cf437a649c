package service

import (
	"context"
	"testing"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The Redis client is nil in unit tests: every cacheable path must degrade to
// a plain repository read.

func TestCrearProductoStockMinimoPorDefecto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Coca Cola 1.5L",
		Precio: decimal.NewFromInt(1500),
		Stock:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.StockMinimo)

	conMinimo, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Yerba 1kg",
		Precio:      decimal.NewFromInt(5000),
		StockMinimo: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, conMinimo.StockMinimo)
}

func TestListarProductosSinRedis(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	repo.agregar("Coca Cola 1.5L", 1500, 10)
	repo.agregar("Pan Lactal", 800, 5)

	resp, err := svc.Listar(context.Background(), dto.ProductoFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Total)
}

func TestActualizarProductoParcial(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, nil)
	p := repo.agregar("Pan Lactal", 800, 5)

	nuevoPrecio := decimal.NewFromInt(950)
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pan Lactal", resp.Nombre)
	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	assert.Equal(t, 5, resp.Stock, "stock untouched by a price change")
}

func TestEliminarProductoInexistente(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), nil)
	err := svc.Eliminar(context.Background(), uuid.New())
	require.Error(t, err)
}
