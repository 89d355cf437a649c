package handler

import (
	"net/http"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/apierror"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Confirmar godoc
// @Summary      Confirmar una venta
// @Description  Registra el carrito como venta ACID: descuenta stock por línea, crea el movimiento de caja (ingreso o fiado) y despacha el ticket PDF asíncrono.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfirmarVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Confirmar(c *gin.Context) {
	var req dto.ConfirmarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ConfirmarVenta(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DelDia godoc
// @Summary      Ventas del día (contado)
// @Description  Lista las ventas de contado de hoy con total y cantidad de unidades. Las ventas al fiado salen en su propio reporte.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.VentasDelDiaResponse
// @Router       /v1/ventas/dia [get]
func (h *VentasHandler) DelDia(c *gin.Context) {
	resp, err := h.svc.VentasDelDia(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas del dia"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FiadasDelDia godoc
// @Summary      Ventas al fiado del día
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.VentasDelDiaResponse
// @Router       /v1/ventas/fiadas/dia [get]
func (h *VentasHandler) FiadasDelDia(c *gin.Context) {
	resp, err := h.svc.VentasFiadasDelDia(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas fiadas del dia"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
