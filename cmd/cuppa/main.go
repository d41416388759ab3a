// Package main is the cuppa server and CLI entry point.
//
//	@title			Cuppa API
//	@version		0.3.0
//	@description	Taste-driven specialty coffee recommendation service.
//	@description	Classifies free-text taste preferences, ranks reviewed coffees
//	@description	by origin country, and serves the results over REST and MCP.
//
//	@host			localhost:8080
//	@BasePath		/api/v1
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/beanlog/cuppa/docs" // generated swagger docs
	"github.com/beanlog/cuppa/internal/version"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cuppa",
	Short: "Cuppa - taste-driven coffee recommendations",
	Long: `Cuppa recommends specialty coffees from a reviewed catalog based on
free-text taste preferences, in Korean or English.

Run "cuppa serve" to start the API server, or use the one-shot
commands to get recommendations straight from the terminal:

  cuppa recommend "고소한 맛"
  cuppa recommend "fruity with floral notes"
  cuppa criteria`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the server process logger.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// cliLogger keeps one-shot commands quiet unless --verbose is set.
// Logs go to stderr either way, so stdout stays clean for output.
func cliLogger() *zap.Logger {
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
