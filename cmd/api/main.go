package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gostorefront/catalog/app/catalog"
	"github.com/gostorefront/catalog/app/categories"
	"github.com/gostorefront/catalog/config"
	"github.com/gostorefront/catalog/database"
	"github.com/gostorefront/catalog/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system environment")
	}
	cfg := config.LoadEnv()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	categoryHandler := categories.NewCategoryHandler(categoriesRepo)
	// The storefront catalog only ever sees available products.
	catalogHandler := catalog.NewCatalogHandler(productsRepo.Available())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /categories/{slug}", categoryHandler.HandleGetBySlug)
	mux.HandleFunc("POST /categories", categoryHandler.HandleCreate)
	mux.HandleFunc("DELETE /categories/{slug}", categoryHandler.HandleDelete)
	mux.HandleFunc("GET /products", catalogHandler.HandleGet)
	mux.HandleFunc("GET /products/{slug}", catalogHandler.HandleGetProduct)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: requestLogger(logger, mux),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("catalog api listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	if cfg.Server.AppEnv == "dev" {
		logCfg = zap.NewDevelopmentConfig()
	}
	logCfg.Encoding = cfg.Logger.Encoding
	if level, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		logCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return logCfg.Build()
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}
