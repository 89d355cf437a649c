package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,max=100"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Notas     *string `json:"notas"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Apellido  *string `json:"apellido"  validate:"omitempty,max=100"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	Notas     *string `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Direccion *string `json:"direccion"`
	Notas     *string `json:"notas"`
	// Deuda is the live sum of this customer's unpaid credit-sale totals.
	Deuda     decimal.Decimal `json:"deuda"`
	CreatedAt string          `json:"created_at"`
}
