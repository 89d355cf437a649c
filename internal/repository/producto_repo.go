package repository

import (
	"context"
	"errors"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// DescontarStockTx decrements stock inside the sale transaction.
	// Conditional write: fails when remaining stock is insufficient, so two
	// concurrent checkouts can never drive stock negative.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

// ErrStockInsuficiente is returned by DescontarStockTx when the conditional
// decrement matches no row.
var ErrStockInsuficiente = errors.New("stock insuficiente")

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.StockBajo {
		q = q.Where("stock <= stock_minimo")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Hard delete — historical sale lines keep their producto_id and survive
	// (no FK cascade; line subtotals are frozen at sale time anyway).
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Count(&n).Error
	return n, err
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockInsuficiente
	}
	return nil
}
