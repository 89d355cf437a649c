package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

// Only the unfiltered first page is cached: it is what the sale screen loads
// on every keystroke. Filtered queries go straight to Postgres.
const (
	cacheKeyProductos = "cache:productos:default"
	cacheTTLProductos = 60 * time.Second
)

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	stockMinimo := req.StockMinimo
	if stockMinimo == 0 {
		stockMinimo = 5
	}
	p := model.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Stock:       req.Stock,
		StockMinimo: stockMinimo,
		Descripcion: req.Descripcion,
		Notas:       req.Notas,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	return productoToResponse(&p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	cacheable := s.rdb != nil && filter.Nombre == "" && !filter.StockBajo && filter.Page == 1

	if cacheable {
		if raw, err := s.rdb.Get(ctx, cacheKeyProductos).Bytes(); err == nil {
			var cached dto.ProductoListResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductoListResponse{
		Data:  make([]dto.ProductoResponse, 0, len(productos)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range productos {
		resp.Data = append(resp.Data, *productoToResponse(&productos[i]))
	}

	if cacheable {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKeyProductos, raw, cacheTTLProductos).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el listado de productos")
			}
		}
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Notas != nil {
		p.Notas = req.Notas
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(ctx)
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("producto no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidarCache(ctx)
	return nil
}

func (s *productoService) invalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKeyProductos).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la cache de productos")
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Precio:      p.Precio,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
		Descripcion: p.Descripcion,
		Notas:       p.Notas,
	}
}
