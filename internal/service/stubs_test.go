package service

// In-memory repository stubs. Services run in nil-DB mode (runTx calls the
// closure directly), so every Tx method just mutates the maps.

import (
	"context"
	"errors"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Productos ────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos  map[uuid.UUID]*model.Producto
	descuentos map[uuid.UUID]int // cantidad restada por producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:  make(map[uuid.UUID]*model.Producto),
		descuentos: make(map[uuid.UUID]int),
	}
}

func (r *stubProductoRepo) agregar(nombre string, precio int64, stock int) *model.Producto {
	p := &model.Producto{
		ID:     uuid.New(),
		Nombre: nombre,
		Precio: decimal.NewFromInt(precio),
		Stock:  stock,
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.productos)), nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.Stock < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	r.descuentos[id] += cantidad
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Ventas ───────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas    map[uuid.UUID]*model.Venta
	numeroSeq int
	deleted   []uuid.UUID
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVentaRepo) FindByNumero(_ context.Context, numero int) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.Numero == numero {
			return v, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubVentaRepo) NextNumero(_ context.Context, _ *gorm.DB) (int, error) {
	r.numeroSeq++
	return r.numeroSeq, nil
}

func (r *stubVentaRepo) ListDelDia(_ context.Context, _ time.Time) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) DeleteCascadeTx(_ *gorm.DB, ventaID uuid.UUID) error {
	delete(r.ventas, ventaID)
	r.deleted = append(r.deleted, ventaID)
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Clientes ─────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Fiados ───────────────────────────────────────────────────────────────────

type stubFiadoRepo struct {
	fiadas          map[uuid.UUID]*model.VentaFiada
	pagos           []model.PagoFiado
	deletedPorVenta []uuid.UUID
}

func newStubFiadoRepo() *stubFiadoRepo {
	return &stubFiadoRepo{fiadas: make(map[uuid.UUID]*model.VentaFiada)}
}

func (r *stubFiadoRepo) CreateFiadaTx(_ *gorm.DB, f *model.VentaFiada) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fiadas[f.ID] = f
	return nil
}

func (r *stubFiadoRepo) FindFiadaByID(_ context.Context, id uuid.UUID) (*model.VentaFiada, error) {
	f, ok := r.fiadas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return f, nil
}

func (r *stubFiadoRepo) ListImpagas(_ context.Context) ([]model.VentaFiada, error) {
	out := []model.VentaFiada{}
	for _, f := range r.fiadas {
		if f.Estado != model.FiadaPagada {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFiadoRepo) ListImpagasPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.VentaFiada, error) {
	out := []model.VentaFiada{}
	for _, f := range r.fiadas {
		if f.ClienteID == clienteID && f.Estado != model.FiadaPagada {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFiadoRepo) ListFiadasDelDia(_ context.Context, _ time.Time) ([]model.VentaFiada, error) {
	out := []model.VentaFiada{}
	for _, f := range r.fiadas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFiadoRepo) ListVencidas(_ context.Context, ahora time.Time) ([]model.VentaFiada, error) {
	out := []model.VentaFiada{}
	for _, f := range r.fiadas {
		if f.Estado == model.FiadaPendiente && f.FechaVencimiento != nil && f.FechaVencimiento.Before(ahora) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFiadoRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	f, ok := r.fiadas[id]
	if !ok {
		return errors.New("not found")
	}
	f.Estado = estado
	return nil
}

func (r *stubFiadoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	return r.UpdateEstadoTx(nil, id, estado)
}

func (r *stubFiadoRepo) DeleteByVentaTx(_ *gorm.DB, ventaID uuid.UUID) error {
	for id, f := range r.fiadas {
		if f.VentaID != ventaID {
			continue
		}
		restantes := r.pagos[:0]
		for _, p := range r.pagos {
			if p.VentaFiadaID != id {
				restantes = append(restantes, p)
			}
		}
		r.pagos = restantes
		delete(r.fiadas, id)
	}
	r.deletedPorVenta = append(r.deletedPorVenta, ventaID)
	return nil
}

func (r *stubFiadoRepo) CreatePagoTx(_ *gorm.DB, p *model.PagoFiado) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.pagos = append(r.pagos, *p)
	return nil
}

func (r *stubFiadoRepo) ListPagosPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.PagoFiado, error) {
	out := []model.PagoFiado{}
	for _, p := range r.pagos {
		if f, ok := r.fiadas[p.VentaFiadaID]; ok && f.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubFiadoRepo) DB() *gorm.DB { return nil }

var _ repository.FiadoRepository = (*stubFiadoRepo)(nil)

// ── Caja ─────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	movimientos []model.MovimientoCaja
}

func newStubCajaRepo() *stubCajaRepo { return &stubCajaRepo{} }

func (r *stubCajaRepo) CreateMovimiento(_ context.Context, m *model.MovimientoCaja) error {
	return r.CreateMovimientoTx(nil, m)
}

func (r *stubCajaRepo) CreateMovimientoTx(_ *gorm.DB, m *model.MovimientoCaja) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubCajaRepo) FindMovimientoByID(_ context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	for i := range r.movimientos {
		if r.movimientos[i].ID == id {
			return &r.movimientos[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubCajaRepo) ListMovimientos(_ context.Context) ([]model.MovimientoCaja, error) {
	return r.movimientos, nil
}

func (r *stubCajaRepo) DeleteMovimientoTx(_ *gorm.DB, id uuid.UUID) error {
	for i := range r.movimientos {
		if r.movimientos[i].ID == id {
			r.movimientos = append(r.movimientos[:i], r.movimientos[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubCajaRepo) SumMontoPorTipo(_ context.Context, tipo string, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movimientos {
		if m.Tipo == tipo && (desde.IsZero() || !m.CreatedAt.Before(desde)) {
			total = total.Add(m.Monto)
		}
	}
	return total, nil
}

func (r *stubCajaRepo) DB() *gorm.DB { return nil }

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// porTipo filters recorded movements by kind.
func (r *stubCajaRepo) porTipo(tipo string) []model.MovimientoCaja {
	out := []model.MovimientoCaja{}
	for _, m := range r.movimientos {
		if m.Tipo == tipo {
			out = append(out, m)
		}
	}
	return out
}
