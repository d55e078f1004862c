// Command dashboard-api serves the marketing dashboard's write endpoints with
// request validation.
//
// Run:
//
//	go run ./cmd/dashboard-api
//
// Then POST JSON to http://localhost:8080/api/todos and read the API
// description at http://localhost:8080/docs/docs.json.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gobd/apischema/internal/config"
	"github.com/Gobd/apischema/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: cfg.Level()}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler).With("app", cfg.AppName)
	slog.SetDefault(logger)

	schemas, err := server.LoadSchemas(cfg.SchemaDir)
	if err != nil {
		return err
	}
	logger.Info("schemas loaded", "names", schemas.Names())

	srv, err := server.New(cfg, schemas, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
