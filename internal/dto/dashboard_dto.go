package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DashboardStatsResponse struct {
	TotalProductos       int64           `json:"total_productos"`
	TotalClientes        int64           `json:"total_clientes"`
	VentasHoy            int64           `json:"ventas_hoy"`
	VentasMes            int64           `json:"ventas_mes"`
	IngresosMes          decimal.Decimal `json:"ingresos_mes"`
	GastosMes            decimal.Decimal `json:"gastos_mes"`
	DineroFiadoPendiente decimal.Decimal `json:"dinero_fiado_pendiente"`
}

type ProductoVendidoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Precio        decimal.Decimal `json:"precio"`
	TotalVendido  int             `json:"total_vendido"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
}

type ClienteTopResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Apellido           *string         `json:"apellido"`
	Email              *string         `json:"email"`
	TotalComprasFiadas int             `json:"total_compras_fiadas"`
	TotalComprado      decimal.Decimal `json:"total_comprado"`
}
