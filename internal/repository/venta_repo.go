package repository

import (
	"context"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	FindByNumero(ctx context.Context, numero int) (*model.Venta, error)
	NextNumero(ctx context.Context, tx *gorm.DB) (int, error)
	// ListDelDia returns today's sales with their line items and products.
	ListDelDia(ctx context.Context, dia time.Time) ([]model.Venta, error)
	// DeleteCascadeTx removes the sale's line items and the sale itself.
	DeleteCascadeTx(tx *gorm.DB, ventaID uuid.UUID) error
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Productos.Producto").First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) FindByNumero(ctx context.Context, numero int) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&v).Error
	return &v, err
}

func (r *ventaRepo) NextNumero(ctx context.Context, tx *gorm.DB) (int, error) {
	// PostgreSQL sequence — atomic even across concurrent checkouts
	var num int
	err := tx.WithContext(ctx).Raw("SELECT nextval('ventas_numero_seq')").Scan(&num).Error
	return num, err
}

func (r *ventaRepo) ListDelDia(ctx context.Context, dia time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("DATE(created_at) = DATE(?)", dia).
		Preload("Productos.Producto").
		Order("created_at DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) DeleteCascadeTx(tx *gorm.DB, ventaID uuid.UUID) error {
	if err := tx.Where("venta_id = ?", ventaID).Delete(&model.VentaProducto{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, ventaID).Error
}
