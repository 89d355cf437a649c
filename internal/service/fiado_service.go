package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FiadoService interface {
	RegistrarPago(ctx context.Context, deudaID uuid.UUID, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error)
	DeudasPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.DeudaResponse, error)
	PagosPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.PagoResponse, error)
}

type fiadoService struct {
	repo     repository.FiadoRepository
	cajaRepo repository.CajaRepository
}

func NewFiadoService(repo repository.FiadoRepository, cajaRepo repository.CajaRepository) FiadoService {
	return &fiadoService{repo: repo, cajaRepo: cajaRepo}
}

// ── RegistrarPago ─────────────────────────────────────────────────────────────
// One transaction:
//  1. Append the PagoFiado row.
//  2. Ledger entry "pago_fiado" for the paid amount (converts outstanding
//     credit into available cash).
//  3. Flip the debt to "pagada" — unconditionally. A partial payment still
//     closes the debt; the payment history keeps the real amounts. This is
//     the store's actual rule, kept on purpose.

func (s *fiadoService) RegistrarPago(ctx context.Context, deudaID uuid.UUID, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}

	fiada, err := s.repo.FindFiadaByID(ctx, deudaID)
	if err != nil {
		return nil, errors.New("deuda no encontrada")
	}
	// pendiente → pagada happens exactly once; vencida debts stay payable.
	if fiada.Estado == model.FiadaPagada {
		return nil, errors.New("la deuda ya fue pagada")
	}

	metodo := "No especificado"
	if req.MetodoPago != nil && *req.MetodoPago != "" {
		metodo = *req.MetodoPago
	}
	notas := fmt.Sprintf("Método: %s.", metodo)
	if req.Notas != nil && *req.Notas != "" {
		notas += " " + *req.Notas
	}

	pago := model.PagoFiado{
		VentaFiadaID: fiada.ID,
		Monto:        req.Monto,
		MetodoPago:   req.MetodoPago,
		Notas:        req.Notas,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreatePagoTx(tx, &pago); err != nil {
			return err
		}

		numero := 0
		if fiada.Venta != nil {
			numero = fiada.Venta.Numero
		}
		categoria := "pagos_fiados"
		mov := model.MovimientoCaja{
			Tipo:        model.MovPagoFiado,
			Descripcion: fmt.Sprintf("Pago de deuda #%d", numero),
			Monto:       req.Monto,
			Categoria:   &categoria,
			Notas:       &notas,
		}
		if err := s.cajaRepo.CreateMovimientoTx(tx, &mov); err != nil {
			return err
		}

		return s.repo.UpdateEstadoTx(tx, fiada.ID, model.FiadaPagada)
	})
	if txErr != nil {
		return nil, txErr
	}

	return pagoToResponse(&pago), nil
}

// ── Consultas por cliente ─────────────────────────────────────────────────────

// DeudasPorCliente returns the customer's unpaid debts (pendiente + vencida)
// with the sale detail attached.
func (s *fiadoService) DeudasPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.DeudaResponse, error) {
	fiadas, err := s.repo.ListImpagasPorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	deudas := make([]dto.DeudaResponse, 0, len(fiadas))
	for i := range fiadas {
		deudas = append(deudas, *fiadaToResponse(&fiadas[i]))
	}
	return deudas, nil
}

// PagosPorCliente returns the customer's payment history, newest first. A
// deleted sale takes its payments with it, so only payments on live debts
// show up here; the caja keeps the pago_fiado entries either way.
func (s *fiadoService) PagosPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.ListPagosPorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		resp = append(resp, *pagoToResponse(&pagos[i]))
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func fiadaToResponse(f *model.VentaFiada) *dto.DeudaResponse {
	resp := &dto.DeudaResponse{
		ID:        f.ID.String(),
		VentaID:   f.VentaID.String(),
		ClienteID: f.ClienteID.String(),
		Estado:    f.Estado,
		Notas:     f.Notas,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
	if f.FechaVencimiento != nil {
		fv := f.FechaVencimiento.Format("2006-01-02")
		resp.FechaVencimiento = &fv
	}
	if f.Venta != nil {
		resp.VentaNumero = f.Venta.Numero
		resp.Total = f.Venta.Total
		resp.Items = itemsToResponse(f.Venta.Productos)
	}
	return resp
}

func pagoToResponse(p *model.PagoFiado) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:           p.ID.String(),
		VentaFiadaID: p.VentaFiadaID.String(),
		Monto:        p.Monto,
		MetodoPago:   p.MetodoPago,
		Notas:        p.Notas,
		FechaPago:    p.CreatedAt.Format(time.RFC3339),
	}
}
