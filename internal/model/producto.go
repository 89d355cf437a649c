package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is one catalog entry. Stock is only mutated by the conditional
// decrement at sale time and by admin edits.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"index;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	StockMinimo int             `gorm:"not null;default:5"`
	Descripcion *string
	Notas       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
