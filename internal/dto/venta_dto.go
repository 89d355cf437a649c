package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

// FiadoRequest marks the sale as a credit sale for the given customer.
type FiadoRequest struct {
	ClienteID        string  `json:"cliente_id"        validate:"required,uuid"`
	FechaVencimiento *string `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	Notas            *string `json:"notas"`
}

type ConfirmarVentaRequest struct {
	Items []ItemVentaRequest `json:"items" validate:"required,min=1,dive"`
	Notas *string            `json:"notas"`
	// Fiado — when present, the sale is recorded on customer credit instead
	// of cash income.
	Fiado *FiadoRequest `json:"fiado" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	Producto string          `json:"producto"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Numero    int                 `json:"numero"`
	Total     decimal.Decimal     `json:"total"`
	Items     []ItemVentaResponse `json:"items"`
	Fiada     bool                `json:"fiada"`
	CreatedAt string              `json:"created_at"`
}

// VentaDelDiaResponse is one entry of the daily sales report.
type VentaDelDiaResponse struct {
	ID            string              `json:"id"`
	Numero        int                 `json:"numero"`
	Total         decimal.Decimal     `json:"total"`
	Items         []ItemVentaResponse `json:"items"`
	ClienteNombre *string             `json:"cliente_nombre,omitempty"`
	Estado        *string             `json:"estado,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

type VentasDelDiaResponse struct {
	Data       []VentaDelDiaResponse `json:"data"`
	Total      decimal.Decimal       `json:"total"`
	TotalItems int                   `json:"total_items"`
}
