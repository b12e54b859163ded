package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"mercus/internal/config"
	"mercus/internal/handler"
	"mercus/internal/middleware"
	"mercus/internal/repository"
	"mercus/internal/service"
	"mercus/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, st store.Store, healthCheck func(context.Context) error, breakerState func() string) *gin.Engine {
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
	r.Use(middleware.RateLimiter(100, 15*time.Minute)) // 100 req per 15 min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(st)
	produtoRepo := repository.NewProdutoRepository(st)
	pedidoRepo := repository.NewPedidoRepository(st)
	userRepo := repository.NewUserRepository(st)
	vendedorRepo := repository.NewVendedorRepository(st)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	produtoSvc := service.NewProdutoService(produtoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, produtoRepo, vendedorRepo, cfg)
	vendedorSvc := service.NewVendedorService(vendedorRepo, userRepo, pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	vendedoresH := handler.NewVendedoresHandler(vendedorSvc)
	pdfH := handler.NewPDFHandler(pedidoSvc)
	uploadH := handler.NewUploadHandler(produtoSvc, cfg.UploadDir)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	healthH := handler.Health(cfg.StorageBackend, healthCheck, breakerState)
	r.GET("/health", healthH)
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	api.GET("/health", healthH)

	// Auth (public, with its own stricter limiter)
	api.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	api.POST("/auth/bootstrap", middleware.LoginRateLimiter(), authH.Bootstrap)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireRole("admin")
	adminOuVendedor := middleware.RequireRole("admin", "vendedor")

	priv := api.Group("", jwtMW)
	{
		priv.GET("/auth/me", authH.Me)

		clientes := priv.Group("/clientes", adminOuVendedor)
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.BuscarPorID)
			clientes.POST("", clientesH.Criar)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Excluir)
		}

		produtos := priv.Group("/produtos")
		{
			produtos.GET("", adminOuVendedor, produtosH.Listar)
			produtos.GET("/:id", adminOuVendedor, produtosH.BuscarPorID)
			// Catalog writes are an admin concern
			produtos.POST("", admin, produtosH.Criar)
			produtos.PUT("/:id", admin, produtosH.Atualizar)
			produtos.DELETE("/:id", admin, produtosH.Excluir)
		}

		pedidos := priv.Group("/pedidos", adminOuVendedor)
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.BuscarPorID)
			pedidos.POST("", pedidosH.Criar)
			pedidos.PATCH("/:id/status", admin, pedidosH.AtualizarStatus)
			pedidos.DELETE("/:id", admin, pedidosH.Excluir)
		}

		vendedores := priv.Group("/vendedores", admin)
		{
			vendedores.GET("", vendedoresH.Listar)
			vendedores.GET("/:id", vendedoresH.BuscarPorID)
			vendedores.POST("", vendedoresH.Criar)
			vendedores.PUT("/:id", vendedoresH.Atualizar)
			vendedores.DELETE("/:id", vendedoresH.Desativar)
			vendedores.DELETE("/:id/permanente", vendedoresH.Excluir)
		}

		priv.GET("/pdf/pedido/:id", adminOuVendedor, pdfH.Pedido)
		priv.POST("/upload/produto/:id", admin, uploadH.ImagemProduto)
	}

	return r
}
