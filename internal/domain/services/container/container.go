package container

import (
	"sync"

	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer wires every service once and hands them out by name.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	policy       services.AuthorizationPolicy

	userService      services.InterfaceUserService
	wargaService     services.InterfaceWargaService
	keluargaService  services.InterfaceKeluargaService
	transaksiService services.InterfaceTransaksiService
	dashboardService services.InterfaceDashboardService
	laporanService   services.InterfaceLaporanService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes all services.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices builds the service graph in dependency order.
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)
	c.policy = services.NewAuthorizationPolicy(c.db, c.config)

	c.userService = services.NewUserService(c.db, c.config)
	c.wargaService = services.NewWargaService(c.db, c.config)
	c.keluargaService = services.NewKeluargaService(c.db, c.config)
	c.transaksiService = services.NewTransaksiService(c.db, c.config, c.policy)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.policy, c.redisService)
	c.laporanService = services.NewLaporanService(c.db, c.config, c.transaksiService)
}

// GetService returns the named service.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "policy":
		return c.policy
	case "user":
		return c.userService
	case "warga":
		return c.wargaService
	case "keluarga":
		return c.keluargaService
	case "transaksi":
		return c.transaksiService
	case "dashboard":
		return c.dashboardService
	case "laporan":
		return c.laporanService
	default:
		return nil
	}
}

// GetDB returns the database connection.
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
