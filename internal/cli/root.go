// Package cli implements the address-cleanser command line.
package cli

import (
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/config"
	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/services"
	"github.com/address-cleanser/address-cleanser/internal/tagger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = constants.ServiceVersion

	logLevel   string
	logFile    string
	configPath string

	// cfg is resolved before any subcommand runs.
	cfg config.Config
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "critical": true, "fatal": true,
}

var rootCmd = &cobra.Command{
	Use:               "address-cleanser",
	Short:             "Parse, validate, and format US addresses",
	Long:              "Address Cleanser parses free-form US addresses, validates them and formats them to USPS Publication 28 standards.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if !validLogLevels[strings.ToLower(logLevel)] {
			return errors.Errorf("invalid log level %q", logLevel)
		}
		loaded.Log.Level = logLevel
	}
	if logFile != "" {
		loaded.Log.File = logFile
	}

	l, err := logger.Build(logger.LoggerConfig{
		Level:       loaded.Log.Level,
		Stage:       loaded.Stage,
		EnableJSON:  loaded.Stage == constants.ProdEnvironment,
		EnableColor: loaded.Stage != constants.ProdEnvironment,
		File:        loaded.Log.File,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Log = l
	cfg = loaded

	logger.Debug("Address Cleanser started",
		zap.String("command", cmd.Name()),
		zap.String("log_level", loaded.Log.Level),
	)
	return nil
}

func newPipeline() *services.Pipeline {
	return services.NewPipeline(tagger.New(logger.Log), logger.Log)
}

func validFormat(format string) error {
	switch format {
	case constants.FormatCSV, constants.FormatJSON, constants.FormatExcel:
		return nil
	default:
		return errors.Errorf("invalid format %q, expected csv, json or excel", format)
	}
}
