package routes

import (
	"time"

	_ "warga-http-service/docs"
	"warga-http-service/internal/app/controllers"
	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/internal/infrastructure/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter initializes and returns the configured router.
func SetupRouter(pool *database.ConnectionPool, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	db := pool.GetDB()
	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, pool)
	return r
}

// registerRoutes configures all API routes.
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	pool *database.ConnectionPool,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container, pool)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the routes reachable without a token.
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	pool *database.ConnectionPool,
) {
	// 10 requests per second per IP, burst of 20.
	api.Use(middleware.IPRateLimiter(10, 20))

	health := controllers.NewHealthCheckController(pool)
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Health)
	api.GET("/health/status", health.Status)

	// Credential endpoints get a tighter limit against brute forcing.
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.CombinedRateLimiter(2, 5))
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))

	wargaAuthGroup := api.Group("/warga-auth")
	wargaAuthGroup.Use(middleware.CombinedRateLimiter(2, 5))
	wargaAuthGroup.POST("/verify", controllers.HandleJWTFunc(container, "verifyWargaPassword"))
}

// registerAuthenticatedRoutes registers the routes behind the token check.
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 30 requests per second per IP, burst of 50.
	auth.Use(middleware.IPRateLimiter(30, 50))

	wargaGroup := auth.Group("/wargas")
	{
		wargaGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleWargaFunc(container, "getWargas"))
		wargaGroup.GET("/summary", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleWargaFunc(container, "getSummary"))
		wargaGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleWargaFunc(container, "getWarga"))
		wargaGroup.POST("", controllers.HandleWargaFunc(container, "createWarga"))
		wargaGroup.PUT("/:id", controllers.HandleWargaFunc(container, "updateWarga"))
		wargaGroup.DELETE("/:id", controllers.HandleWargaFunc(container, "deleteWarga"))
	}

	keluargaGroup := auth.Group("/keluargas")
	{
		keluargaGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleKeluargaFunc(container, "getKeluargas"))
		keluargaGroup.GET("/:no_kk", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleKeluargaFunc(container, "getKeluarga"))
		keluargaGroup.POST("", controllers.HandleKeluargaFunc(container, "createKeluarga"))
		keluargaGroup.POST("/:no_kk/anak", controllers.HandleKeluargaFunc(container, "tambahAnak"))
	}

	transaksiGroup := auth.Group("/transaksis")
	{
		transaksiGroup.GET("", controllers.HandleTransaksiFunc(container, "getTransaksis"))
		transaksiGroup.GET("/ringkasan", controllers.HandleTransaksiFunc(container, "getRingkasan"))
		transaksiGroup.GET("/:id", controllers.HandleTransaksiFunc(container, "getTransaksi"))
		transaksiGroup.POST("", middleware.RequireOperator(), controllers.HandleTransaksiFunc(container, "createTransaksi"))
		transaksiGroup.PUT("/:id", middleware.RequireOperator(), controllers.HandleTransaksiFunc(container, "updateTransaksi"))
		transaksiGroup.DELETE("/:id", middleware.RequireOperator(), controllers.HandleTransaksiFunc(container, "deleteTransaksi"))
	}

	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.GET("/saldo", middleware.CacheByUser(30*time.Second), controllers.HandleDashboardFunc(container, "getSerieSaldo"))

	laporanGroup := auth.Group("/laporan")
	{
		laporanGroup.GET("", controllers.HandleLaporanFunc(container, "getLaporan"))
		laporanGroup.GET("/excel", controllers.HandleLaporanFunc(container, "exportExcel"))
		laporanGroup.GET("/pdf", controllers.HandleLaporanFunc(container, "exportPDF"))
	}
}
