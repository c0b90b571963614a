// Package commands implements the datacleaner subcommands.
package commands

import (
	"context"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/cli/config"
)

// configKey stores the loaded config in a command context.
type configKey struct{}

// WithConfig stores the config in a context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// getConfig retrieves the config from a command context, falling back
// to defaults when the root command's PreRun did not load one.
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		Port:          config.DefaultPort,
		DataDir:       config.DefaultDataDir,
		HistoryPath:   config.DefaultHistoryPath,
		SessionSecret: config.DefaultSecret,
		MaxUploadMB:   config.DefaultMaxUploadMB,
		UniqueLimit:   config.DefaultUniqueLimit,
	}
}
