package handler

import (
	"net/http"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/apierror"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct {
	svc      service.ClienteService
	fiadoSvc service.FiadoService
}

func NewClientesHandler(svc service.ClienteService, fiadoSvc service.FiadoService) *ClientesHandler {
	return &ClientesHandler{svc: svc, fiadoSvc: fiadoSvc}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar clientes
// @Description  Todos los clientes con su deuda derivada de las ventas fiadas impagas.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar rejects customers that still owe money.
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Deudas godoc
// @Summary      Deudas impagas de un cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      200 {array} dto.DeudaResponse
// @Router       /v1/clientes/{id}/deudas [get]
func (h *ClientesHandler) Deudas(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.fiadoSvc.DeudasPorCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar deudas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pagos returns the customer's payment history, newest first.
func (h *ClientesHandler) Pagos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.fiadoSvc.PagosPorCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pagos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
