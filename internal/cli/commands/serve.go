package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/cli/config"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/history"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long: `Start a local web server for uploading, profiling, cleaning and
transforming CSV datasets.`,
		Example: `  # Start on the default port
  datacleaner serve

  # Custom port and data directory
  datacleaner serve --port 3000 --data-dir ./uploads`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg := getConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if dir := filepath.Dir(cfg.HistoryPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	srv := ui.NewServer(ui.Config{
		Sessions:       session.NewManager(logger),
		History:        store,
		Port:           cfg.Port,
		Watch:          cfg.Watch,
		DataDir:        cfg.DataDir,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		UniqueLimit:    cfg.UniqueLimit,
		SessionSecret:  cfg.SessionSecret,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
