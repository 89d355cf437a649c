package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Precio      decimal.Decimal `json:"precio"       validate:"required,min=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
	Descripcion *string         `json:"descripcion"`
	Notas       *string         `json:"notas"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Precio      *decimal.Decimal `json:"precio"       validate:"omitempty,min=0"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
	Descripcion *string          `json:"descripcion"`
	Notas       *string          `json:"notas"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	StockBajo bool   `form:"stock_bajo"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	Descripcion *string         `json:"descripcion"`
	Notas       *string         `json:"notas"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
