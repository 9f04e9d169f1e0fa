// Package cmd provides CLI commands for marckit.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marckit/marckit/codes"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marckit",
	Short: "Work with KORMARC/MARC21 bibliographic records",
	Long: `Marckit is a CLI tool for KORMARC/MARC21 bibliographic records.

It converts records between the human-readable MRK line transcription and
binary ISO 2709 exchange files, validates record structure against the
KORMARC code tables, and builds fixed-width 008 control fields.

Examples:
  marckit convert mrk mrc -i record.mrk -o record.mrc
  cat record.mrk | marckit convert mrk mrc > record.mrc
  marckit validate mrk -i record.mrk
  marckit build-008 --date1 2024 --language kor --mrk`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig wires viper: a marckit.yaml config file and MARCKIT_* env vars
// supply the cataloging defaults that flags fall back to.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("marckit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "marckit"))
		}
	}
	viper.SetEnvPrefix("MARCKIT")
	viper.AutomaticEnv()

	viper.SetDefault("country", codes.DefaultCountry)
	viper.SetDefault("language", codes.DefaultLanguage)
	viper.SetDefault("cataloging_source", "a")

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func init() {
	setupLogger()
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./marckit.yaml)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(build008Cmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(formatsCmd)
}
