// Package cmd provides CLI commands for disseminate.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meridian-libraries/disseminate/config"
)

var cfgFile string

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

var rootCmd = &cobra.Command{
	Use:   "disseminate",
	Short: "Attach citation cover pages to repository documents",
	Long: `Disseminate builds citation cover pages for institutional repository
items and stitches them onto the stored PDF before download.

It reads item metadata, maps it to a bibliographic record, renders a
one-page cover (drawn layout or HTML template) and merges it with the
source document, preserving the document's own page labels.

Examples:
  disseminate cite item.yaml paper.pdf -o cited.pdf
  disseminate cover item.yaml -o cover.pdf
  disseminate bibliography item.yaml --styles apa,ieee
  disseminate check item.yaml paper.pdf`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("no .env file loaded", "error", err)
	}
	setupLogger()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: built-in defaults plus environment)")

	rootCmd.AddCommand(citeCmd)
	rootCmd.AddCommand(coverCmd)
	rootCmd.AddCommand(bibliographyCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(checkCmd)
}
