package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a completed checkout. Immutable after creation — the only write
// after the fact is the cascading delete triggered from the cash ledger.
type Venta struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Numero is the human-facing sequential sale number ("Venta #N" on
	// tickets and ledger descriptions). Assigned from a Postgres sequence.
	Numero    int             `gorm:"uniqueIndex;not null"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notas     *string
	CreatedAt time.Time

	Productos []VentaProducto `gorm:"foreignKey:VentaID"`
}

// VentaProducto is one line of a sale. Subtotal is frozen at sale time
// (cantidad × precio vigente), so later price edits never rewrite history.
type VentaProducto struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad   int             `gorm:"not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

// TableName overrides GORM's default pluralization (venta_productoes → venta_productos).
func (VentaProducto) TableName() string { return "venta_productos" }
