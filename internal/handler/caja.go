package handler

import (
	"net/http"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/apierror"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Resumen godoc
// @Summary      Resumen de caja
// @Description  Proyección sobre el historial completo: ingresos, gastos, pagos de fiado, dinero disponible y dinero en la calle.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumenCajaResponse
// @Router       /v1/caja/resumen [get]
func (h *CajaHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movimientos lists the full ledger, newest first.
func (h *CajaHandler) Movimientos(c *gin.Context) {
	resp, err := h.svc.Movimientos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar movimientos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento manual
// @Description  Ingreso o gasto manual. Los movimientos fiado / pago_fiado los genera el sistema.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MovimientoManualRequest true "Movimiento"
// @Success      201  {object} dto.MovimientoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/caja/movimientos [post]
func (h *CajaHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EliminarMovimiento godoc
// @Summary      Eliminar movimiento
// @Description  Si el movimiento registró una venta, elimina en cascada la venta, sus líneas y su deuda asociada.
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del movimiento"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caja/movimientos/{id} [delete]
func (h *CajaHandler) EliminarMovimiento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.EliminarMovimiento(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
