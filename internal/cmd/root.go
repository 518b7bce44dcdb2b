package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/salmonumbrella/txt2opml/internal/config"
	"github.com/salmonumbrella/txt2opml/internal/output"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
}

func versionTemplate() string {
	return fmt.Sprintf("txt2opml version %s (commit: %s, built: %s)\n", version, commit, date)
}

// Global flags
var (
	outputFmt  string
	outputType output.Format
	debug      bool
	configFile string
	queryExpr  string
	queryFile  string
	errorFmt   string
)

// loadedConfig is the config resolved for the running command
var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "txt2opml [flags] <input> [output]",
	Short: "Convert plain text outlines to OPML",
	Long: `txt2opml converts an indented plain text outline into an OPML 2.0 document.

Each non-blank line is a marker, a single space and the entry text. The marker
sets the nesting level:

  * Root          single character: a summit
  ** Child        dense: marker length minus one
  - Child         sparse: one level per pair of spaces

The output path defaults to the input path with its extension replaced by
.opml (see 'txt2opml config set output_extension'). Use - as input to read
from stdin.`,
	Version:       version,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = WithErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)

		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		cfg := &config.Config{}
		if !skipConfigLoad {
			loadedCfg, err := loadConfigFromFlag()
			if err != nil {
				return formatConfigLoadError(err)
			}
			cfg = loadedCfg
		}
		loadedConfig = cfg

		// Format selection: --format > config > json when piped > text
		formatStr := outputFmt
		if !flagChanged(cmd, "format") {
			switch {
			case strings.TrimSpace(cfg.OutputFormat) != "":
				formatStr = strings.TrimSpace(cfg.OutputFormat)
			case !isTerminal(cmd.OutOrStdout()):
				formatStr = string(output.FormatJSON)
			}
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		if !flagChanged(cmd, "error-format") && strings.TrimSpace(cfg.ErrorFormat) != "" {
			errorFmt = cfg.ErrorFormat
		}

		// jq query
		if queryExpr != "" && queryFile != "" {
			return fmt.Errorf("use only one of --query or --query-file")
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = strings.TrimSpace(string(loaded))
		}

		ctx = withLogger(ctx, newLogger(cmd.ErrOrStderr(), debug))
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = WithErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}

		loggerFromContext(ctx).Debug("config resolved",
			"path", configFileForLog(),
			"output_extension", cfg.Extension(),
			"indent", cfg.IndentWidth(),
			"format", string(outputType),
		)
		return nil
	},
	RunE: runConvert,
}

// Execute runs the root command
func Execute() error {
	executed, err := rootCmd.ExecuteC()
	if err != nil {
		ctx := rootCmd.Context()
		if executed != nil && executed.Context() != nil {
			ctx = executed.Context()
		}
		printCommandError(ctx, err)
		return err
	}
	return nil
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() output.Format {
	if outputType != "" {
		return outputType
	}
	parsed, err := output.ParseFormat(outputFmt)
	if err != nil {
		return output.FormatText
	}
	return parsed
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&outputFmt, "format", "text", "Preview format for tree/stats/config (text|json|ndjson|table|yaml)")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/txt2opml/config.yaml)")

	registerConvertFlags(rootCmd)
}

// newLogger returns a console logger writing to w. glog.NewLogger always
// writes to os.Stdout, which would mix records into --stdout output, so the
// glog console handler is built directly on the command's stderr.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := glog.NewColorConsoleHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler.WithAttrs([]slog.Attr{slog.String("logger", config.AppName)}))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
