package repository

import (
	"context"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FiadoRepository interface {
	CreateFiadaTx(tx *gorm.DB, f *model.VentaFiada) error
	FindFiadaByID(ctx context.Context, id uuid.UUID) (*model.VentaFiada, error)
	// ListImpagas returns all debts that have not been paid (pendiente and
	// vencida), with their linked sale totals — the live exposure set.
	ListImpagas(ctx context.Context) ([]model.VentaFiada, error)
	ListImpagasPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.VentaFiada, error)
	ListFiadasDelDia(ctx context.Context, dia time.Time) ([]model.VentaFiada, error)
	// ListVencidas returns still-pending debts whose due date already passed.
	ListVencidas(ctx context.Context, ahora time.Time) ([]model.VentaFiada, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	// DeleteByVentaTx removes the debt record of a sale along with its payment
	// rows. The pago_fiado ledger entries are untouched; they remain the record
	// of money actually received.
	DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error

	CreatePagoTx(tx *gorm.DB, p *model.PagoFiado) error
	ListPagosPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.PagoFiado, error)

	DB() *gorm.DB
}

type fiadoRepo struct{ db *gorm.DB }

func NewFiadoRepository(db *gorm.DB) FiadoRepository { return &fiadoRepo{db: db} }

func (r *fiadoRepo) DB() *gorm.DB { return r.db }

func (r *fiadoRepo) CreateFiadaTx(tx *gorm.DB, f *model.VentaFiada) error {
	return tx.Create(f).Error
}

func (r *fiadoRepo) FindFiadaByID(ctx context.Context, id uuid.UUID) (*model.VentaFiada, error) {
	var f model.VentaFiada
	err := r.db.WithContext(ctx).
		Preload("Venta.Productos.Producto").
		Preload("Cliente").
		First(&f, id).Error
	return &f, err
}

func (r *fiadoRepo) ListImpagas(ctx context.Context) ([]model.VentaFiada, error) {
	var fiadas []model.VentaFiada
	err := r.db.WithContext(ctx).
		Where("estado <> ?", model.FiadaPagada).
		Preload("Venta").
		Find(&fiadas).Error
	return fiadas, err
}

func (r *fiadoRepo) ListImpagasPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.VentaFiada, error) {
	var fiadas []model.VentaFiada
	err := r.db.WithContext(ctx).
		Where("cliente_id = ? AND estado <> ?", clienteID, model.FiadaPagada).
		Preload("Venta.Productos.Producto").
		Order("created_at DESC").
		Find(&fiadas).Error
	return fiadas, err
}

func (r *fiadoRepo) ListFiadasDelDia(ctx context.Context, dia time.Time) ([]model.VentaFiada, error) {
	var fiadas []model.VentaFiada
	err := r.db.WithContext(ctx).
		Joins("JOIN ventas ON ventas.id = ventas_fiadas.venta_id").
		Where("DATE(ventas.created_at) = DATE(?)", dia).
		Preload("Venta.Productos.Producto").
		Preload("Cliente").
		Find(&fiadas).Error
	return fiadas, err
}

func (r *fiadoRepo) ListVencidas(ctx context.Context, ahora time.Time) ([]model.VentaFiada, error) {
	var fiadas []model.VentaFiada
	err := r.db.WithContext(ctx).
		Where("estado = ? AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento < ?", model.FiadaPendiente, ahora).
		Preload("Venta").
		Preload("Cliente").
		Find(&fiadas).Error
	return fiadas, err
}

func (r *fiadoRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.VentaFiada{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *fiadoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.VentaFiada{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *fiadoRepo) DeleteByVentaTx(tx *gorm.DB, ventaID uuid.UUID) error {
	// Payments first: they reference the debt row about to go.
	err := tx.Where(
		"venta_fiada_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).
			Model(&model.VentaFiada{}).
			Select("id").
			Where("venta_id = ?", ventaID),
	).Delete(&model.PagoFiado{}).Error
	if err != nil {
		return err
	}
	return tx.Where("venta_id = ?", ventaID).Delete(&model.VentaFiada{}).Error
}

func (r *fiadoRepo) CreatePagoTx(tx *gorm.DB, p *model.PagoFiado) error {
	return tx.Create(p).Error
}

func (r *fiadoRepo) ListPagosPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.PagoFiado, error) {
	var pagos []model.PagoFiado
	err := r.db.WithContext(ctx).
		Joins("JOIN ventas_fiadas ON ventas_fiadas.id = pagos_fiados.venta_fiada_id").
		Where("ventas_fiadas.cliente_id = ?", clienteID).
		Order("pagos_fiados.created_at DESC").
		Find(&pagos).Error
	return pagos, err
}
