package service

import (
	"context"
	"errors"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := model.Cliente{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Notas:     req.Notas,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cliente no encontrado")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		c.Apellido = req.Apellido
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}
	if req.Notas != nil {
		c.Notas = req.Notas
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("cliente no encontrado")
	}
	if deudaDeCliente(c).IsPositive() {
		return errors.New("el cliente tiene deudas pendientes")
	}
	return s.repo.Delete(ctx, id)
}

// deudaDeCliente derives the customer's live debt from unpaid credit sales.
// Debt is never stored on the customer row.
func deudaDeCliente(c *model.Cliente) decimal.Decimal {
	deuda := decimal.Zero
	for _, f := range c.VentasFiadas {
		if f.Estado == model.FiadaPagada || f.Venta == nil {
			continue
		}
		deuda = deuda.Add(f.Venta.Total)
	}
	return deuda
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Direccion: c.Direccion,
		Notas:     c.Notas,
		Deuda:     deudaDeCliente(c),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
