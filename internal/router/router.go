package router

import (
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/config"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/handler"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/middleware"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/service"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	fiadoRepo := repository.NewFiadoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	clienteSvc := service.NewClienteService(clienteRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, fiadoRepo, cajaRepo, dispatcher)
	fiadoSvc := service.NewFiadoService(fiadoRepo, cajaRepo)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo, fiadoRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, productoRepo, clienteRepo, cajaRepo, fiadoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc, fiadoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	fiadosH := handler.NewFiadosHandler(fiadoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: vendedor, administrador. Declared per-endpoint.
		vender := middleware.RequireRole("vendedor", "administrador")
		admin := middleware.RequireRole("administrador")

		v1.POST("/ventas", vender, ventasH.Confirmar)
		v1.GET("/ventas/dia", vender, ventasH.DelDia)
		v1.GET("/ventas/fiadas/dia", vender, ventasH.FiadasDelDia)

		// Catalog: everyone reads, administrador writes
		v1.GET("/productos", vender, productosH.Listar)
		v1.GET("/productos/:id", vender, productosH.Obtener)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		v1.GET("/clientes", vender, clientesH.Listar)
		v1.GET("/clientes/:id", vender, clientesH.Obtener)
		v1.GET("/clientes/:id/deudas", vender, clientesH.Deudas)
		v1.GET("/clientes/:id/pagos", vender, clientesH.Pagos)
		v1.POST("/clientes", vender, clientesH.Crear)
		v1.PUT("/clientes/:id", vender, clientesH.Actualizar)
		v1.DELETE("/clientes/:id", admin, clientesH.Eliminar)

		v1.POST("/fiados/:id/pagos", vender, fiadosH.RegistrarPago)

		caja := v1.Group("/caja")
		{
			caja.GET("/resumen", vender, cajaH.Resumen)
			caja.GET("/movimientos", vender, cajaH.Movimientos)
			caja.POST("/movimientos", vender, cajaH.RegistrarMovimiento)
			// Deleting rewrites history (cascades to the sale), admin only
			caja.DELETE("/movimientos/:id", admin, cajaH.EliminarMovimiento)
		}

		dash := v1.Group("/dashboard", vender)
		{
			dash.GET("/stats", dashboardH.Stats)
			dash.GET("/productos-mas-vendidos", dashboardH.ProductosMasVendidos)
			dash.GET("/clientes-top", dashboardH.ClientesTop)
		}

		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
