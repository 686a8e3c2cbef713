package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/api"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve records and runs over HTTP",
	Long: `Start a read-only JSON API over the runs database.

Endpoints:
  GET /health                      - Liveness check
  GET /api/records                 - Deaths and best progress
  GET /api/scores?limit=N          - Best runs
  GET /api/runs?limit=N            - Most recent runs
  GET /api/stats                   - Aggregated run statistics

Examples:
  runner api
  runner api --addr 127.0.0.1:9090 --db ./runner.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger := newLogger("runner-api")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(store, logger)
	return server.ListenAndServe(ctx, flagAPIAddr)
}
