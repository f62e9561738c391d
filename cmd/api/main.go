// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	httpserver "github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis for durable cart snapshots
	redisClient, err := storage.NewRedisConnection(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	snapshots := storage.NewRedisStore(redisClient)

	// Load the catalog and user directory
	seed, err := loadSeed(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to load catalog seed: %v", err)
	}
	logger.Infof("📦 Catalog loaded: %d products, %d users", len(seed.Products), len(seed.Users))

	accessor := catalog.NewStaticAccessor(seed.Products)
	directory := user.NewDirectory(seed.Users)

	// Wire the domain services
	calc := pricing.NewCalculator(cfg.Pricing)
	tokens := auth.NewTokenIssuer(cfg)
	carts := cart.NewManager(directory, calc, snapshots, logger)
	pipelines := checkout.NewManager(directory, tokens)

	logger.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, logger, snapshots, accessor, carts, pipelines)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("✅ Server shutdown completed")
}

// loadSeed resolves the catalog source: the database when enabled,
// otherwise a YAML seed file, otherwise the built-in seed
func loadSeed(cfg *config.Config, logger *logrus.Logger) (*catalog.SeedData, error) {
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			return nil, err
		}
		if err := db.Seed(fileSeed(cfg, logger), cfg.Security.BcryptCost); err != nil {
			logger.Warnf("Warning: Data seeding failed: %v", err)
		}
		return db.LoadCatalog()
	}

	return fileSeed(cfg, logger), nil
}

// fileSeed loads the YAML seed file, falling back to the built-in seed
func fileSeed(cfg *config.Config, logger *logrus.Logger) *catalog.SeedData {
	if cfg.Catalog.File != "" {
		seed, err := catalog.LoadSeedFile(cfg.Catalog.File)
		if err == nil {
			return seed
		}
		logger.Warnf("Warning: Seed file %s unreadable, using built-in seed: %v", cfg.Catalog.File, err)
	}
	return catalog.DefaultSeed()
}
