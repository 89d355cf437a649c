package service

import (
	"context"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ProductosMasVendidos(ctx context.Context, limit int) ([]dto.ProductoVendidoResponse, error)
	ClientesTop(ctx context.Context, limit int) ([]dto.ClienteTopResponse, error)
}

type dashboardService struct {
	repo         repository.DashboardRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	cajaRepo     repository.CajaRepository
	fiadoRepo    repository.FiadoRepository
}

func NewDashboardService(
	repo repository.DashboardRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	cajaRepo repository.CajaRepository,
	fiadoRepo repository.FiadoRepository,
) DashboardService {
	return &dashboardService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		cajaRepo:     cajaRepo,
		fiadoRepo:    fiadoRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())

	stats := &dto.DashboardStatsResponse{}
	var err error

	if stats.TotalProductos, err = s.productoRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalClientes, err = s.clienteRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.VentasHoy, err = s.repo.CountVentasDesde(ctx, hoy); err != nil {
		return nil, err
	}
	if stats.VentasMes, err = s.repo.CountVentasDesde(ctx, inicioMes); err != nil {
		return nil, err
	}
	if stats.IngresosMes, err = s.cajaRepo.SumMontoPorTipo(ctx, model.MovIngreso, inicioMes); err != nil {
		return nil, err
	}
	if stats.GastosMes, err = s.cajaRepo.SumMontoPorTipo(ctx, model.MovGasto, inicioMes); err != nil {
		return nil, err
	}

	impagas, err := s.fiadoRepo.ListImpagas(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range impagas {
		if f.Venta != nil {
			stats.DineroFiadoPendiente = stats.DineroFiadoPendiente.Add(f.Venta.Total)
		}
	}
	return stats, nil
}

func (s *dashboardService) ProductosMasVendidos(ctx context.Context, limit int) ([]dto.ProductoVendidoResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.repo.ProductosMasVendidos(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoVendidoResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.ProductoVendidoResponse{
			ID:            r.ID,
			Nombre:        r.Nombre,
			Precio:        r.Precio,
			TotalVendido:  r.TotalVendido,
			TotalIngresos: r.TotalIngresos,
		}
	}
	return resp, nil
}

func (s *dashboardService) ClientesTop(ctx context.Context, limit int) ([]dto.ClienteTopResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.repo.ClientesTop(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteTopResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.ClienteTopResponse{
			ID:                 r.ID,
			Nombre:             r.Nombre,
			Apellido:           r.Apellido,
			Email:              r.Email,
			TotalComprasFiadas: r.TotalComprasFiadas,
			TotalComprado:      r.TotalComprado,
		}
	}
	return resp, nil
}
