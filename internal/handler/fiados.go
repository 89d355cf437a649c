package handler

import (
	"net/http"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/apierror"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/dto"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FiadosHandler struct{ svc service.FiadoService }

func NewFiadosHandler(svc service.FiadoService) *FiadosHandler {
	return &FiadosHandler{svc: svc}
}

// RegistrarPago godoc
// @Summary      Registrar pago de una deuda
// @Description  Registra el pago, genera el movimiento de caja pago_fiado y marca la deuda como pagada. Cualquier pago salda la deuda completa.
// @Tags         fiados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "UUID de la deuda"
// @Param        body body dto.RegistrarPagoRequest true "Monto y método de pago"
// @Success      201  {object} dto.PagoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/fiados/{id}/pagos [post]
func (h *FiadosHandler) RegistrarPago(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
