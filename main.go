package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savorybook/config"
	"savorybook/events"
	"savorybook/handlers"
	"savorybook/middleware"
	"savorybook/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	log := config.Log
	ctx := context.Background()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		log.Error(ctx, "init_database", "❌ Failed to initialize database", err)
		os.Exit(1)
	}

	// Booking events go to RabbitMQ when a broker is configured
	if cfg.AMQPURL != "" {
		pub, err := events.DialAMQP(cfg.AMQPURL, events.DefaultExchange)
		if err != nil {
			log.Warn(ctx, "dial_amqp", "⚠️ RabbitMQ unavailable, booking events disabled", slog.String("error", err.Error()))
		} else {
			handlers.Events = pub
			defer pub.Close()
			log.Info(ctx, "dial_amqp", "📨 Publishing booking events", slog.String("exchange", events.DefaultExchange))
		}
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Limit())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "SavoryBook Reservations API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍽️ Welcome to the SavoryBook Reservations API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// CORS for the web client; the session token is read from a response header
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		ExposedHeaders:   []string{handlers.TokenHeader},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Info(ctx, "start_server", "🚀 Server running", slog.String("addr", "http://localhost:"+cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "start_server", "❌ ListenAndServe error", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Info(ctx, "shutdown", "🛑 Shutdown signal received; shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown", "❌ Graceful shutdown failed", err)
		return
	}
	log.Info(ctx, "shutdown", "✅ Server stopped cleanly")
}
