package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaService interface {
	Resumen(ctx context.Context) (*dto.ResumenCajaResponse, error)
	Movimientos(ctx context.Context) ([]dto.MovimientoResponse, error)
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error)
	EliminarMovimiento(ctx context.Context, id uuid.UUID) error
}

type cajaService struct {
	repo      repository.CajaRepository
	ventaRepo repository.VentaRepository
	fiadoRepo repository.FiadoRepository
}

func NewCajaService(repo repository.CajaRepository, ventaRepo repository.VentaRepository, fiadoRepo repository.FiadoRepository) CajaService {
	return &cajaService{repo: repo, ventaRepo: ventaRepo, fiadoRepo: fiadoRepo}
}

// ── Resumen ───────────────────────────────────────────────────────────────────
// Pure projection, no writes. Recomputed over the ENTIRE movement history on
// every call (single-store volume makes this cheap), plus the live unpaid
// debts:
//
//	disponible   = Σ ingreso − Σ gasto + Σ pago_fiado
//	dinero_fiado = Σ venta.total of unpaid debts
//
// dinero_fiado deliberately ignores the historic "fiado" ledger entries: once
// a debt is paid it stops counting, even though its issuance entry remains in
// the immutable ledger.

func (s *cajaService) Resumen(ctx context.Context) (*dto.ResumenCajaResponse, error) {
	movs, err := s.repo.ListMovimientos(ctx)
	if err != nil {
		return nil, err
	}
	impagas, err := s.fiadoRepo.ListImpagas(ctx)
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenCajaResponse{NumMovimientos: len(movs)}
	for _, m := range movs {
		switch m.Tipo {
		case model.MovIngreso:
			resumen.Ingresos = resumen.Ingresos.Add(m.Monto)
		case model.MovGasto:
			resumen.Gastos = resumen.Gastos.Add(m.Monto)
		case model.MovPagoFiado:
			resumen.PagosFiado = resumen.PagosFiado.Add(m.Monto)
		}
	}
	for _, f := range impagas {
		if f.Venta != nil {
			resumen.DineroFiado = resumen.DineroFiado.Add(f.Venta.Total)
		}
	}
	resumen.Disponible = resumen.Ingresos.Sub(resumen.Gastos).Add(resumen.PagosFiado)
	return resumen, nil
}

func (s *cajaService) Movimientos(ctx context.Context) ([]dto.MovimientoResponse, error) {
	movs, err := s.repo.ListMovimientos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoResponse, 0, len(movs))
	for i := range movs {
		resp = append(resp, *movimientoToResponse(&movs[i]))
	}
	return resp, nil
}

// RegistrarMovimiento records a manual income/expense entry. Amounts are
// stored positive; the projection subtracts "gasto" entries.
func (s *cajaService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) (*dto.MovimientoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, errors.New("el monto debe ser mayor a cero")
	}
	mov := model.MovimientoCaja{
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Categoria:   req.Categoria,
		Notas:       req.Notas,
	}
	if err := s.repo.CreateMovimiento(ctx, &mov); err != nil {
		return nil, err
	}
	return movimientoToResponse(&mov), nil
}

// ── EliminarMovimiento ────────────────────────────────────────────────────────
// Deleting a sale-originated ledger entry also removes the sale it recorded:
// line items, the sale header, and its debt record. Debt payments are kept
// for history.
//
// The originating sale is resolved through the explicit VentaID reference;
// rows imported from before the column existed fall back to parsing the
// "Venta #N" / "Venta al fiado #N" description.

var (
	reVenta      = regexp.MustCompile(`Venta #(\d+)`)
	reVentaFiada = regexp.MustCompile(`Venta al fiado #(\d+)`)
)

func (s *cajaService) EliminarMovimiento(ctx context.Context, id uuid.UUID) error {
	mov, err := s.repo.FindMovimientoByID(ctx, id)
	if err != nil {
		return errors.New("movimiento no encontrado")
	}

	ventaID := mov.VentaID
	if ventaID == nil {
		ventaID = s.resolverVentaPorDescripcion(ctx, mov)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if ventaID != nil {
			if err := s.fiadoRepo.DeleteByVentaTx(tx, *ventaID); err != nil {
				return err
			}
			if err := s.ventaRepo.DeleteCascadeTx(tx, *ventaID); err != nil {
				return err
			}
		}
		return s.repo.DeleteMovimientoTx(tx, id)
	})
}

// resolverVentaPorDescripcion recovers the sale reference from the human
// description. Only sale-kind entries are considered, and a description that
// references a sale that no longer exists degrades to deleting just the
// movement.
func (s *cajaService) resolverVentaPorDescripcion(ctx context.Context, mov *model.MovimientoCaja) *uuid.UUID {
	var m []string
	switch mov.Tipo {
	case model.MovIngreso:
		m = reVenta.FindStringSubmatch(mov.Descripcion)
	case model.MovFiado:
		m = reVentaFiada.FindStringSubmatch(mov.Descripcion)
	default:
		return nil
	}
	if m == nil {
		return nil
	}
	numero, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	venta, err := s.ventaRepo.FindByNumero(ctx, numero)
	if err != nil {
		return nil
	}
	return &venta.ID
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func movimientoToResponse(m *model.MovimientoCaja) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Descripcion: m.Descripcion,
		Monto:       m.Monto,
		Categoria:   m.Categoria,
		Notas:       m.Notas,
		Fecha:       m.CreatedAt.Format(time.RFC3339),
	}
	if m.VentaID != nil {
		v := m.VentaID.String()
		resp.VentaID = &v
	}
	return resp
}
