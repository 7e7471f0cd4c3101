// Termwidget runs the text field and toggle menu demos.
//
// Usage:
//
//	termwidget [command] [flags]
//
// Running without arguments starts the text field demo.
// See 'termwidget --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdullathedruid/termwidget/internal/config"
	"github.com/abdullathedruid/termwidget/internal/logging"
	"github.com/abdullathedruid/termwidget/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "termwidget",
	Short: "Terminal widget demos",
	Long: `Demos for the termwidget text field and toggle menu.

The text field demo asks for a line of input and reports whether it passes
its linters. The toggle menu demo shows switches, multi-state toggles and
nested text fields next to a live state panel.

If no command is specified, the text field demo runs.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTextField,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(textFieldCmd)
	rootCmd.AddCommand(toggleMenuCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termwidget %s (api %d, commit: %s)\n", version.API, version.APIInt(), version.Short())
	},
}

// setup loads configuration and starts logging. The returned function
// flushes the logger.
func setup() (*config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		if err := config.ValidateLogLevel(logLevel); err != nil {
			return nil, nil, err
		}
		cfg.LogLevel = logLevel
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, nil, err
	}
	return cfg, logging.Sync, nil
}
