package main

import (
	"fmt"
	"os"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	envFile string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Product catalog and shopping cart",
	Long: `storefront fetches the product catalog once, filters it by category
and keeps an in-memory cart per session.

Run "storefront tui" for the terminal storefront or "storefront serve" for
the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("config.Load: %w", err)
		}

		// The terminal UI owns stdout, so it logs only to a file.
		output := "stderr"
		if cmd.Name() == tuiCmd.Name() {
			output = cfg.LogFile
		}

		logger, err = newLogger(cfg.LogLevel, output, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional file with STOREFRONT_* variables")

	rootCmd.AddCommand(serveCmd, tuiCmd)
}

// newLogger builds a production logger writing to output. An empty output
// disables logging.
func newLogger(level, output string, verbose bool) (*zap.Logger, error) {
	if output == "" {
		return zap.NewNop(), nil
	}

	zapConfig := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level[%s] is not valid: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{output}

	return zapConfig.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
