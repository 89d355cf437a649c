package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a registered customer. Deuda is never stored: it is always
// derived from the customer's pending VentaFiada records.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Apellido  *string
	Telefono  *string
	Email     *string
	Direccion *string
	Notas     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	VentasFiadas []VentaFiada `gorm:"foreignKey:ClienteID"`
}
