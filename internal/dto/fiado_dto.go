package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarPagoRequest struct {
	Monto      decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	MetodoPago *string         `json:"metodo_pago" validate:"omitempty,max=30"`
	Notas      *string         `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DeudaResponse struct {
	ID               string              `json:"id"`
	VentaID          string              `json:"venta_id"`
	VentaNumero      int                 `json:"venta_numero"`
	ClienteID        string              `json:"cliente_id"`
	Total            decimal.Decimal     `json:"total"`
	Estado           string              `json:"estado"`
	FechaVencimiento *string             `json:"fecha_vencimiento"`
	Notas            *string             `json:"notas"`
	Items            []ItemVentaResponse `json:"items"`
	CreatedAt        string              `json:"created_at"`
}

type PagoResponse struct {
	ID           string          `json:"id"`
	VentaFiadaID string          `json:"venta_fiada_id"`
	Monto        decimal.Decimal `json:"monto"`
	MetodoPago   *string         `json:"metodo_pago"`
	Notas        *string         `json:"notas"`
	FechaPago    string          `json:"fecha_pago"`
}
