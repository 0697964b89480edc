package main

import (
	"context"
	"errors"
	"github.com/cric2000/calenderService/config"
	"github.com/cric2000/calenderService/handlers"
	"github.com/cric2000/calenderService/middleware"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Hash static assets for ETags
	assets := middleware.NewAssetVersions(cfg.StaticDir, handlers.StaticFiles...)

	// Rate limiter for the date endpoints
	var limiter *middleware.RateLimiter
	if cfg.RateLimitRequests > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
			Message:  "Rate limit exceeded. Please slow down your requests.",
		})
		defer limiter.Stop()
	} else {
		log.Println("[INFO] Rate limiting disabled")
	}

	e := handlers.NewRouter(handlers.RouterOptions{
		Config:  cfg,
		Assets:  assets,
		Limiter: limiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	go func() {
		log.Printf("Server is running on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Graceful shutdown failed: %v", err)
	}
}
