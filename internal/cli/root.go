// Package cli provides the command-line interface for the data
// cleaner.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/cli/commands"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datacleaner",
		Short: "Data Cleaner - browser-based CSV exploration and cleaning",
		Long: `Data Cleaner profiles an uploaded CSV file and applies cleaning and
transformation operations: drop or fill missing data, rename columns,
encode categorical columns, and remap values with a full audit trail.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg.Verbose)
			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./datacleaner.yaml)")
	rootCmd.PersistentFlags().Int("port", 0, "Web UI port")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for uploaded and sample CSV files")
	rootCmd.PersistentFlags().String("history-path", "", "Path to the operation-history database")
	rootCmd.PersistentFlags().Int("max-upload-mb", 0, "Maximum upload size in MB")
	rootCmd.PersistentFlags().Bool("watch", true, "Watch the data directory for new CSV files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
