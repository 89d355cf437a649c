package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MovimientoManualRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=ingreso gasto"`
	Descripcion string          `json:"descripcion" validate:"required,min=3"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Categoria   *string         `json:"categoria"   validate:"omitempty,max=50"`
	Notas       *string         `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Categoria   *string         `json:"categoria"`
	Notas       *string         `json:"notas"`
	VentaID     *string         `json:"venta_id"`
	Fecha       string          `json:"fecha"`
}

// ResumenCajaResponse is the live cash projection: recomputed from the full
// movement history plus the unpaid debt records on every call.
type ResumenCajaResponse struct {
	Ingresos       decimal.Decimal `json:"ingresos"`
	Gastos         decimal.Decimal `json:"gastos"`
	PagosFiado     decimal.Decimal `json:"pagos_fiado"`
	DineroFiado    decimal.Decimal `json:"dinero_fiado"`
	Disponible     decimal.Decimal `json:"disponible"`
	NumMovimientos int             `json:"num_movimientos"`
}
