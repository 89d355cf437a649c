package repository

import (
	"context"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaRepository interface {
	CreateMovimiento(ctx context.Context, m *model.MovimientoCaja) error
	CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error
	FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error)
	// ListMovimientos returns the FULL ledger, newest first. The projection
	// deliberately recomputes over the whole history on every refresh.
	ListMovimientos(ctx context.Context) ([]model.MovimientoCaja, error)
	DeleteMovimientoTx(tx *gorm.DB, id uuid.UUID) error
	// SumMontoPorTipo aggregates Σ(monto) of one movement kind since a cutoff
	// (zero time = all history).
	SumMontoPorTipo(ctx context.Context, tipo string, desde time.Time) (decimal.Decimal, error)
	DB() *gorm.DB
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) DB() *gorm.DB { return r.db }

func (r *cajaRepo) CreateMovimiento(ctx context.Context, m *model.MovimientoCaja) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cajaRepo) CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoCaja) error {
	return tx.Create(m).Error
}

func (r *cajaRepo) FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoCaja, error) {
	var m model.MovimientoCaja
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *cajaRepo) ListMovimientos(ctx context.Context) ([]model.MovimientoCaja, error) {
	var movs []model.MovimientoCaja
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&movs).Error
	return movs, err
}

func (r *cajaRepo) DeleteMovimientoTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.MovimientoCaja{}, id).Error
}

func (r *cajaRepo) SumMontoPorTipo(ctx context.Context, tipo string, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	q := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).
		Select("SUM(monto)").
		Where("tipo = ?", tipo)
	if !desde.IsZero() {
		q = q.Where("created_at >= ?", desde)
	}
	if err := q.Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
