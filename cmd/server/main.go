// @title           Warga HTTP Service API
// @version         1.0
// @description     Community administration service: resident registry, family cards, shared ledger and financial reports

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"warga-http-service/internal/app/routes"
	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/internal/infrastructure/database"
	Logger "warga-http-service/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	// Missing .env is fine, the variables may come from the environment.
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
	} else {
		Logger.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	default:
		// AutoMigrate only adds new columns and tables.
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureOperatorExists(db, cfg)

	r := routes.SetupRouter(pool, cfg)

	printSystemInfo(pool)

	port := cfg.ServerPort
	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models, adding new columns and tables only.
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Warga{},
		&models.Transaksi{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every application table and rebuilds the schema.
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{"transaksi", "warga", "users"}
	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureOperatorExists seeds the default operator account on first boot.
func ensureOperatorExists(db *gorm.DB, cfg *config.Config) {
	userService := services.NewUserService(db, cfg)
	if err := userService.EnsureDefaultOperator(); err != nil {
		log.Fatalf("failed to seed default operator account: %v", err)
	}
}

// printSystemInfo logs pool and runtime statistics at startup.
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("database connection pool: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
