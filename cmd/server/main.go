/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift ledger server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (YAML file + env overrides)
  3. Open the configured storage backend
  4. Wire the calculator, aggregator, sessions, and dispatcher
  5. Start the HTTP server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -config  YAML config path (default: none, built-in defaults apply)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the storage backend
  4. Exit

EXAMPLES:
  # Run with defaults (SQLite at ./shifts.db)
  ./server

  # Run with a config file
  ./server -config=./config.yaml

  # Run on a different port
  ./server -port=3000

ENVIRONMENT:
  DATABASE_URL  Overrides storage.dsn for the postgres driver.

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration format
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/shift-ledger/api"
	"github.com/warp/shift-ledger/config"
	"github.com/warp/shift-ledger/flow"
	"github.com/warp/shift-ledger/report"
	"github.com/warp/shift-ledger/shift"
	"github.com/warp/shift-ledger/store/memory"
	"github.com/warp/shift-ledger/store/postgres"
	"github.com/warp/shift-ledger/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	configPath := flag.String("config", "", "YAML config path (empty for defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	// Wire the core
	roster := cfg.Roster()
	calc := shift.NewCalculator(cfg.PayRate)
	agg := report.NewAggregator(store, roster)
	dispatcher := flow.New(flow.NewSessions(), store, calc, agg, roster, cfg.Currency)

	handler := api.NewHandler(dispatcher, agg, roster, cfg.Currency)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d (storage=%s)", *port, cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// openStore opens the configured backend and returns it with its closer.
func openStore(cfg config.Storage) (shift.Store, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		s, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "postgres":
		s, err := postgres.New(context.Background(), cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "memory":
		return memory.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
