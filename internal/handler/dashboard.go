package handler

import (
	"net/http"
	"strconv"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/apierror"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary      Estadísticas generales
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardStatsResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProductosMasVendidos returns the best sellers (default top 10).
func (h *DashboardHandler) ProductosMasVendidos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.svc.ProductosMasVendidos(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos mas vendidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClientesTop returns the customers with the most credit purchases.
func (h *DashboardHandler) ClientesTop(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.svc.ClientesTop(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes top"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
