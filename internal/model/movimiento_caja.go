package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovIngreso   = "ingreso"
	MovGasto     = "gasto"
	MovFiado     = "fiado"
	MovPagoFiado = "pago_fiado"
)

// MovimientoCaja is an append-only entry in the cash ledger. One is created
// for every sale (cash or credit) and every registered debt payment, plus
// manual income/expense entries. Entries are never updated; deleting one
// cascades to the originating sale (see CajaService.EliminarMovimiento).
type MovimientoCaja struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string          `gorm:"type:varchar(20);not null;index"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Categoria   *string         `gorm:"type:varchar(50)"`
	Notas       *string
	// VentaID links sale-originated entries to their Venta so the cascading
	// delete does not depend on parsing the description. Nil for manual
	// movements and debt payments.
	VentaID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default pluralization (movimiento_cajas → movimientos_caja).
func (MovimientoCaja) TableName() string { return "movimientos_caja" }
