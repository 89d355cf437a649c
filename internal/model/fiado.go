package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una venta fiada.
// pendiente → pagada: al registrar un pago (una sola vez, sin vuelta atrás).
// pendiente → vencida: barrido de vencimientos (goroutine de fondo).
const (
	FiadaPendiente = "pendiente"
	FiadaPagada    = "pagada"
	FiadaVencida   = "vencida"
)

// VentaFiada is the per-sale debt record of a credit sale. Exactly one per
// credit sale (1:1 with Venta, enforced by the unique index on VentaID).
type VentaFiada struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ClienteID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FechaVencimiento *time.Time
	Estado           string `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	Notas            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Venta   *Venta      `gorm:"foreignKey:VentaID"`
	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Pagos   []PagoFiado `gorm:"foreignKey:VentaFiadaID"`
}

// TableName overrides GORM's default pluralization (venta_fiadas → ventas_fiadas).
func (VentaFiada) TableName() string { return "ventas_fiadas" }

// PagoFiado is an append-only payment against a debt. Several payments may
// reference the same debt; nothing ties their sum to the sale total.
// Deleting the originating sale takes its payments along; the pago_fiado
// movimientos stay in the caja as the money record.
type PagoFiado struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaFiadaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago   *string         `gorm:"type:varchar(30)"`
	Notas        *string
	CreatedAt    time.Time
}

// TableName overrides GORM's default pluralization (pago_fiadoes → pagos_fiados).
func (PagoFiado) TableName() string { return "pagos_fiados" }
