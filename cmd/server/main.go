package main

import (
	"context"
	"log"
	"time"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/config"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/logger"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/models"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/routes"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	st, err := buildStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("store init failed", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinMiddleware(zlog), logger.Recovery(zlog))

	// CORS config for the dashboard frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, st, cfg, zlog)

	zlog.Info("listening", zap.String("port", cfg.Port), zap.Bool("demo", st.Demo()))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// buildStore picks the data provider: postgres when DATABASE_URL is set,
// otherwise the in-memory demo store.
func buildStore(cfg *config.Config, zlog *zap.Logger) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		zlog.Info("DATABASE_URL not set, serving placeholder data in demo mode")
		return store.NewMemoryStore(), nil
	}

	db, err := config.OpenDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.User{},
		&models.InvoiceAuditLog{},
	); err != nil {
		return nil, err
	}

	gs := store.NewGormStore(db)
	if err := gs.SeedIfEmpty(context.Background(), store.SeedData()); err != nil {
		return nil, err
	}
	return gs, nil
}
