// Package cmd implements CLI commands for the inventory tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"inventory-tool/internal/client/n9e"
	"inventory-tool/internal/config"
	"inventory-tool/internal/model"
	"inventory-tool/internal/report"
	"inventory-tool/internal/service"
	"inventory-tool/internal/source"
)

// Command flags
var (
	outputPath       string   // Inventory output path
	formats          []string // Output formats (ini, yaml, excel, html)
	htmlTemplatePath string   // Custom HTML template (optional)
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "inventory output path (default inventory)")
	rootCmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats (ini,yaml,excel,html), comma separated")
	rootCmd.Flags().StringVar(&htmlTemplatePath, "html-template", "", "custom HTML template path")
}

// runGenerate executes the complete generation workflow.
func runGenerate(cmd *cobra.Command, args []string) {
	cfg, logger := loadConfig(cmd)

	registry := report.NewRegistry(htmlTemplatePath)
	writers, err := resolveWriters(registry, cfg.Output.Formats)
	if err != nil {
		logger.Error().Err(err).Strs("formats", cfg.Output.Formats).Msg("invalid output format")
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	inv, err := buildInventory(cmd.Context(), cfg, logger)
	if err != nil {
		reportBuildError(logger, err)
		os.Exit(1)
	}

	layout := model.DefaultLayout(cfg.Connection.User, cfg.Connection.Password)
	written, err := writeInventory(writers, inv, layout, cfg.Output.Path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to write inventory: %v\n", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, inv, written)
}

// loadConfig loads the configuration, applies flag overrides and sets up logging.
// It exits the process on configuration errors.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger) {
	configPath := GetConfigFile()
	cfg, err := config.Load(configPath)
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", configPath).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "❌ failed to load config: %v\n", err)
		os.Exit(1)
	}

	applyFlagOverrides(cfg)

	// Command line --log-level overrides config file setting
	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	logger := setupLogger(level, cfg.Logging.Format)
	logger.Debug().
		Str("config_path", configPath).
		Str("source", cfg.Source.Type).
		Strs("roles", cfg.Roles).
		Msg("configuration loaded")

	return cfg, logger
}

// applyFlagOverrides copies explicitly set flags onto cfg.
func applyFlagOverrides(cfg *config.Config) {
	if inputPath != "" {
		cfg.Source.File.Path = inputPath
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if len(formats) > 0 {
		cfg.Output.Formats = formats
	}
}

// newSource creates the machine list source selected by cfg.
func newSource(cfg *config.Config, logger zerolog.Logger) (source.Source, error) {
	switch cfg.Source.Type {
	case config.SourceFile, "":
		return source.NewTSVSource(cfg.Source.File.Path, logger), nil
	case config.SourceN9E:
		client := n9e.NewClient(&cfg.Source.N9E, &cfg.HTTP.Retry, logger)
		return source.NewN9ESource(client, cfg.Source.N9E.Queries, cfg.Source.N9E.Concurrency, logger), nil
	default:
		return nil, fmt.Errorf("unsupported source type %q", cfg.Source.Type)
	}
}

// buildInventory loads and classifies the machine list.
func buildInventory(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*model.Inventory, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := newSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	builder, err := service.NewBuilder(src, service.NewClassifier(cfg.Roles), logger)
	if err != nil {
		return nil, err
	}

	return builder.Build(ctx)
}

// resolveWriters looks up a writer for every requested format, in order.
func resolveWriters(registry *report.Registry, formats []string) ([]report.ReportWriter, error) {
	writers := make([]report.ReportWriter, 0, len(formats))
	seen := make(map[string]bool)
	for _, format := range formats {
		w, err := registry.Get(format)
		if err != nil {
			return nil, err
		}
		if seen[w.Format()] {
			continue
		}
		seen[w.Format()] = true
		writers = append(writers, w)
	}
	return writers, nil
}

// writeInventory runs every writer against the same output path.
// It stops at the first failure and returns the formats written so far.
func writeInventory(
	writers []report.ReportWriter,
	inv *model.Inventory,
	layout *model.Layout,
	path string,
	logger zerolog.Logger,
) ([]string, error) {
	var written []string
	for _, w := range writers {
		if err := w.Write(inv, layout, path); err != nil {
			logger.Error().Err(err).Str("format", w.Format()).Str("path", path).Msg("failed to write inventory")
			return written, fmt.Errorf("%s: %w", w.Format(), err)
		}
		logger.Info().Str("format", w.Format()).Str("path", path).Msg("inventory written")
		written = append(written, w.Format())
	}
	return written, nil
}

// reportBuildError prints a user-facing message for a failed load.
func reportBuildError(logger zerolog.Logger, err error) {
	var missing *source.MissingInputError
	var parseErr *source.ParseError

	switch {
	case errors.As(err, &missing):
		logger.Error().Str("path", missing.Path).Msg("machine list not found")
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	case errors.As(err, &parseErr):
		logger.Error().Str("path", parseErr.Path).Int("line", parseErr.Line).Msg("malformed machine list line")
		fmt.Fprintf(os.Stderr, "❌ malformed machine list: %v\n", err)
	default:
		logger.Error().Err(err).Msg("failed to build inventory")
		fmt.Fprintf(os.Stderr, "❌ failed to build inventory: %v\n", err)
	}
}

// printSummary prints the generation result.
func printSummary(w io.Writer, inv *model.Inventory, written []string) {
	counts := inv.RoleCounts()
	fmt.Fprintf(w, "✅ Inventory generated: %d machines", inv.Count())
	for _, role := range inv.Roles() {
		fmt.Fprintf(w, ", %s=%d", role, counts[role])
	}
	fmt.Fprintln(w)
	if n := len(inv.Unclassified()); n > 0 {
		fmt.Fprintf(w, "⚠️  %d machine(s) matched no role and were skipped\n", n)
	}
	fmt.Fprintf(w, "📁 Formats: %v\n", written)
}

// setupLogger creates a zerolog logger writing to stderr.
func setupLogger(level string, format string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var output io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		output = os.Stderr
	} else {
		// Console format - human-readable output
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
