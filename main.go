package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furnico-backend/config"
	"furnico-backend/database"
	"furnico-backend/logger"
	"furnico-backend/middleware"
	"furnico-backend/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		panic(err)
	}

	appEnv := config.GetEnv("APP_ENV", "development")
	log, err := logger.New(config.GetEnv("LOG_LEVEL", "info"), appEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := config.ValidateEnv(); err != nil {
		log.Fatal("environment validation failed", zap.Error(err))
	}

	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	if config.GetEnvBool("SEED_CATALOG", true) {
		if err := database.SeedCatalog(db); err != nil {
			log.Warn("could not seed catalog", zap.Error(err))
		}
	}

	if appEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	origins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = []string{frontend}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authLimiter := middleware.NewRateLimiter(ctx, config.GetEnvInt("AUTH_RATE_LIMIT", 10), time.Minute)
	routes.SetupRoutes(r, db, authLimiter)

	port := config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("port", port), zap.String("env", appEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("error closing database connection", zap.Error(err))
		} else {
			log.Info("database connection closed")
		}
	}

	log.Info("server exited gracefully")
}
