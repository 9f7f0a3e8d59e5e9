// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/order"
	"github.com/your-org/saree-storefront/internal/domain/session"
	"github.com/your-org/saree-storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/saree-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/saree-storefront/internal/infrastructure/persistence"
	"github.com/your-org/saree-storefront/internal/interfaces/http"
	"github.com/your-org/saree-storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to database
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logg.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Health check
	if err := db.Health(); err != nil {
		logg.Fatalf("Database health check failed: %v", err)
	}

	if err := redisClient.Health(); err != nil {
		logg.Fatalf("Redis health check failed: %v", err)
	}

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB())

	if err := migration.RunAutoMigrations(); err != nil {
		logg.Fatalf("Database migration failed: %v", err)
	}

	if err := migration.CreateIndexes(); err != nil {
		logg.Warnf("Index creation failed: %v", err)
	}

	// Seed initial data in development
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			logg.Warnf("Data seeding failed: %v", err)
		}
	}

	// Session state lives in Redis documents keyed by user
	docs := persistence.NewDocumentStore(redisClient.GetClient(), cfg)
	sessions := session.NewManager(docs, docs, logg)

	// Warm the admin dashboard's order snapshot
	orders := order.NewService(db.GetDB())
	if err := orders.RefreshSnapshot(); err != nil {
		logg.Warnf("Initial order snapshot refresh failed: %v", err)
	}

	logg.Info("All systems operational")

	// Create and start HTTP server
	server := http.NewServer(cfg, logg, db.GetDB(), redisClient.GetClient(), sessions, orders)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	// Give the server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("Server shutdown completed")
}
