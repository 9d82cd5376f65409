package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/boxedit/internal/config"
	"github.com/philipparndt/boxedit/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// set by the persistent pre-run
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boxedit",
	Short: "Interactive editor for oriented boxes",
	Long: `boxedit moves and resizes oriented boxes by dragging their faces.
Results snap to the integer grid. Boxes are stored as YAML files; scripted
pointer sessions can be replayed headless.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "editor config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger, err = config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	logger.Debug("starting", "command", cmd.Name(), version.LogAttr())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
