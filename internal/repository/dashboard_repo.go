package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoVendidoRow is one row of the best-sellers aggregate.
type ProductoVendidoRow struct {
	ID            string
	Nombre        string
	Precio        decimal.Decimal
	TotalVendido  int
	TotalIngresos decimal.Decimal
}

// ClienteTopRow is one row of the top-credit-customers aggregate.
type ClienteTopRow struct {
	ID                 string
	Nombre             string
	Apellido           *string
	Email              *string
	TotalComprasFiadas int
	TotalComprado      decimal.Decimal
}

// DashboardRepository runs the read-only aggregate queries behind the
// dashboard. These were materialized views in earlier deployments; plain
// GROUP BY queries are plenty at single-store volume.
type DashboardRepository interface {
	ProductosMasVendidos(ctx context.Context, limit int) ([]ProductoVendidoRow, error)
	ClientesTop(ctx context.Context, limit int) ([]ClienteTopRow, error)
	CountVentasDesde(ctx context.Context, desde time.Time) (int64, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) ProductosMasVendidos(ctx context.Context, limit int) ([]ProductoVendidoRow, error) {
	var rows []ProductoVendidoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.nombre, p.precio,
		       COALESCE(SUM(vp.cantidad), 0)  AS total_vendido,
		       COALESCE(SUM(vp.subtotal), 0)  AS total_ingresos
		FROM productos p
		JOIN venta_productos vp ON vp.producto_id = p.id
		GROUP BY p.id, p.nombre, p.precio
		ORDER BY total_vendido DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) ClientesTop(ctx context.Context, limit int) ([]ClienteTopRow, error) {
	var rows []ClienteTopRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.nombre, c.apellido, c.email,
		       COUNT(vf.id)                  AS total_compras_fiadas,
		       COALESCE(SUM(v.total), 0)     AS total_comprado
		FROM clientes c
		JOIN ventas_fiadas vf ON vf.cliente_id = c.id
		JOIN ventas v         ON v.id = vf.venta_id
		GROUP BY c.id, c.nombre, c.apellido, c.email
		ORDER BY total_comprado DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) CountVentasDesde(ctx context.Context, desde time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("ventas").Where("created_at >= ?", desde).Count(&n).Error
	return n, err
}
