package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaService interface {
	ConfirmarVenta(ctx context.Context, req dto.ConfirmarVentaRequest) (*dto.VentaResponse, error)
	VentasDelDia(ctx context.Context) (*dto.VentasDelDiaResponse, error)
	VentasFiadasDelDia(ctx context.Context) (*dto.VentasDelDiaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	fiadoRepo    repository.FiadoRepository
	cajaRepo     repository.CajaRepository
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	fiadoRepo repository.FiadoRepository,
	cajaRepo repository.CajaRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		fiadoRepo:    fiadoRepo,
		cajaRepo:     cajaRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── ConfirmarVenta ────────────────────────────────────────────────────────────
// Records one checkout end to end:
//  1. Resolve products and accumulate the cart (price frozen here).
//  2. BEGIN TX: next sale number, create venta + lines, conditional stock
//     decrement per line, then the ledger writes — VentaFiada + movimiento
//     "fiado" for credit sales, movimiento "ingreso" otherwise.
//  3. COMMIT. The cart is cleared only after the whole sequence lands; a
//     failed step rolls everything back, so no partial sale ever persists.
//  4. (async) ticket PDF job, best effort.

func (s *ventaService) ConfirmarVenta(ctx context.Context, req dto.ConfirmarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("el carrito está vacío")
	}

	// 1. Resolve products outside the TX and accumulate the cart. One
	// AgregarItem call per unit keeps the duplicate-add semantics (same
	// product twice = one line, quantity bumped).
	carrito := NewCarrito()
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s no encontrado", item.ProductoID)
		}
		for i := 0; i < item.Cantidad; i++ {
			carrito.AgregarItem(*p)
		}
	}
	total := carrito.Total()

	// 2. Credit sale: the customer must exist before anything is written.
	var cliente *model.Cliente
	var fechaVenc *time.Time
	if req.Fiado != nil {
		cid, err := uuid.Parse(req.Fiado.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("cliente_id inválido: %w", err)
		}
		cliente, err = s.clienteRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, errors.New("cliente no encontrado")
		}
		if req.Fiado.FechaVencimiento != nil {
			t, err := time.Parse("2006-01-02", *req.Fiado.FechaVencimiento)
			if err != nil {
				return nil, errors.New("fecha_vencimiento inválida (formato AAAA-MM-DD)")
			}
			fechaVenc = &t
		}
	}

	// 3. Single transaction: venta + items + stock + ledger.
	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.repo.NextNumero(ctx, tx)
		if err != nil {
			return err
		}

		venta = model.Venta{
			Numero: numero,
			Total:  total,
			Notas:  req.Notas,
		}
		for _, it := range carrito.Items() {
			venta.Productos = append(venta.Productos, model.VentaProducto{
				ProductoID: it.Producto.ID,
				Cantidad:   it.Cantidad,
				Subtotal:   it.Subtotal,
			})
		}
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}

		// Conditional decrement per line: each product's stock is attributed
		// independently, and a concurrent checkout that drained the stock
		// aborts the whole sale here.
		for _, it := range carrito.Items() {
			if err := s.productoRepo.DescontarStockTx(tx, it.Producto.ID, it.Cantidad); err != nil {
				if errors.Is(err, repository.ErrStockInsuficiente) {
					return fmt.Errorf("stock insuficiente de %s", it.Producto.Nombre)
				}
				return fmt.Errorf("error descontando stock de %s: %w", it.Producto.Nombre, err)
			}
		}

		if cliente != nil {
			fiada := model.VentaFiada{
				VentaID:          venta.ID,
				ClienteID:        cliente.ID,
				FechaVencimiento: fechaVenc,
				Estado:           model.FiadaPendiente,
				Notas:            req.Fiado.Notas,
			}
			if err := s.fiadoRepo.CreateFiadaTx(tx, &fiada); err != nil {
				return err
			}
			categoria := "ventas_fiadas"
			mov := model.MovimientoCaja{
				Tipo:        model.MovFiado,
				Descripcion: fmt.Sprintf("Venta al fiado #%d", numero),
				Monto:       total,
				Categoria:   &categoria,
				VentaID:     &venta.ID,
			}
			return s.cajaRepo.CreateMovimientoTx(tx, &mov)
		}

		categoria := "ventas"
		mov := model.MovimientoCaja{
			Tipo:        model.MovIngreso,
			Descripcion: fmt.Sprintf("Venta #%d", numero),
			Monto:       total,
			Categoria:   &categoria,
			VentaID:     &venta.ID,
		}
		return s.cajaRepo.CreateMovimientoTx(tx, &mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Build the response before emptying the cart: line names come from the
	// resolved products, not from a reload.
	resp := ventaToResponse(&venta, req.Fiado != nil)
	for i, it := range carrito.Items() {
		if i < len(resp.Items) {
			resp.Items[i].Producto = it.Producto.Nombre
		}
	}

	// Full success: the checkout session is over.
	carrito.Vaciar()

	// 4. Async ticket PDF (and email when the customer has an address).
	if s.dispatcher != nil {
		payload := worker.TicketJobPayload{VentaID: venta.ID.String()}
		if cliente != nil && cliente.Email != nil {
			payload.ClienteEmail = cliente.Email
		}
		_ = s.dispatcher.EnqueueTicket(ctx, payload)
	}

	return resp, nil
}

// ── Reportes del día ──────────────────────────────────────────────────────────

// VentasDelDia lists today's CASH sales. Credit sales live in the fiado
// report instead; a sale never appears in both.
func (s *ventaService) VentasDelDia(ctx context.Context) (*dto.VentasDelDiaResponse, error) {
	hoy := time.Now()
	ventas, err := s.repo.ListDelDia(ctx, hoy)
	if err != nil {
		return nil, err
	}
	fiadas, err := s.fiadoRepo.ListFiadasDelDia(ctx, hoy)
	if err != nil {
		return nil, err
	}
	fiadaIDs := make(map[uuid.UUID]bool, len(fiadas))
	for _, f := range fiadas {
		fiadaIDs[f.VentaID] = true
	}

	resp := &dto.VentasDelDiaResponse{Data: []dto.VentaDelDiaResponse{}}
	for i := range ventas {
		v := &ventas[i]
		if fiadaIDs[v.ID] {
			continue
		}
		entry := dto.VentaDelDiaResponse{
			ID:        v.ID.String(),
			Numero:    v.Numero,
			Total:     v.Total,
			Items:     itemsToResponse(v.Productos),
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		}
		resp.Data = append(resp.Data, entry)
		resp.Total = resp.Total.Add(v.Total)
		for _, it := range v.Productos {
			resp.TotalItems += it.Cantidad
		}
	}
	return resp, nil
}

// VentasFiadasDelDia lists today's credit sales with customer name and debt
// state attached.
func (s *ventaService) VentasFiadasDelDia(ctx context.Context) (*dto.VentasDelDiaResponse, error) {
	fiadas, err := s.fiadoRepo.ListFiadasDelDia(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	resp := &dto.VentasDelDiaResponse{Data: []dto.VentaDelDiaResponse{}}
	for i := range fiadas {
		f := &fiadas[i]
		if f.Venta == nil {
			continue
		}
		nombre := ""
		if f.Cliente != nil {
			nombre = f.Cliente.Nombre
			if f.Cliente.Apellido != nil {
				nombre += " " + *f.Cliente.Apellido
			}
		}
		estado := f.Estado
		entry := dto.VentaDelDiaResponse{
			ID:            f.Venta.ID.String(),
			Numero:        f.Venta.Numero,
			Total:         f.Venta.Total,
			Items:         itemsToResponse(f.Venta.Productos),
			ClienteNombre: &nombre,
			Estado:        &estado,
			CreatedAt:     f.Venta.CreatedAt.Format(time.RFC3339),
		}
		resp.Data = append(resp.Data, entry)
		resp.Total = resp.Total.Add(f.Venta.Total)
		for _, it := range f.Venta.Productos {
			resp.TotalItems += it.Cantidad
		}
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func itemsToResponse(lineas []model.VentaProducto) []dto.ItemVentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(lineas))
	for _, l := range lineas {
		nombre := ""
		if l.Producto != nil {
			nombre = l.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			Producto: nombre,
			Cantidad: l.Cantidad,
			Subtotal: l.Subtotal,
		})
	}
	return items
}

func ventaToResponse(v *model.Venta, fiada bool) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		Numero:    v.Numero,
		Total:     v.Total,
		Items:     itemsToResponse(v.Productos),
		Fiada:     fiada,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}
