package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/salmonumbrella/txt2opml/internal/opml"
	"github.com/salmonumbrella/txt2opml/internal/outline"
	"github.com/spf13/cobra"
)

// Convert flags
var (
	outputPath string
	toStdout   bool
	titleFlag  string
	diffFlag   bool
	dryRun     bool
)

var nowFunc = time.Now

func registerConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: input with its extension replaced)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the OPML document to stdout")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Document title (default: front matter title, then output path)")
	cmd.Flags().BoolVar(&diffFlag, "diff", false, "Show changes against the existing output file instead of writing")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and render without writing")
}

// parsedOutline is an input file after front matter extraction and parsing.
type parsedOutline struct {
	frontMatter opml.FrontMatter
	forest      []*outline.Node
}

// loadOutline reads input and parses it into a forest. Line numbers in parse
// errors refer to the input file, front matter included.
func loadOutline(ctx context.Context, input string) (*parsedOutline, error) {
	source, err := readInputSource(input, stdinFromContext(ctx))
	if err != nil {
		return nil, err
	}

	fm, body, err := opml.SplitFrontMatter(source)
	if err != nil {
		return nil, err
	}

	forest, err := outline.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, shiftLine(err, headerLines(source, body))
	}

	stats := outline.Summarize(forest)
	loggerFromContext(ctx).Debug("parsed outline",
		"input", input,
		"summits", stats.Summits,
		"nodes", stats.Nodes,
		"max_depth", stats.MaxDepth,
	)

	return &parsedOutline{frontMatter: fm, forest: forest}, nil
}

// headerLines counts the lines consumed before body starts in source.
func headerLines(source, body []byte) int {
	if len(body) > len(source) || !bytes.HasSuffix(source, body) {
		return 0
	}
	return bytes.Count(source[:len(source)-len(body)], []byte("\n"))
}

func shiftLine(err error, offset int) error {
	if offset == 0 {
		return err
	}
	var malformed outline.MalformedLineError
	if errors.As(err, &malformed) {
		malformed.Line += offset
		return malformed
	}
	var orphan outline.OrphanNodeError
	if errors.As(err, &orphan) {
		orphan.Line += offset
		return orphan
	}
	return err
}

func resolveOutputPath(args []string) (string, error) {
	input := strings.TrimSpace(args[0])
	explicit := strings.TrimSpace(outputPath)
	if len(args) > 1 {
		if explicit != "" {
			return "", fmt.Errorf("use only one of --output or the output argument")
		}
		explicit = strings.TrimSpace(args[1])
	}

	if toStdout {
		if explicit != "" {
			return "", fmt.Errorf("use only one of --stdout or an output path")
		}
		return "", nil
	}
	if explicit != "" {
		return explicit, nil
	}
	if input == "-" {
		return "", fmt.Errorf("output path required when reading stdin (use --output or --stdout)")
	}
	return defaultOutputPath(input, currentConfig().Extension()), nil
}

func resolveMeta(input, output string, fm opml.FrontMatter) (opml.Meta, error) {
	title := strings.TrimSpace(titleFlag)

	var meta opml.Meta
	if input == "-" {
		meta = opml.Meta{Title: title, DateModified: opml.FormatDateModified(nowFunc())}
	} else {
		m, err := opml.MetaForFile(input, title)
		if err != nil {
			return opml.Meta{}, err
		}
		meta = m
	}

	meta = meta.Apply(fm)
	if meta.Title == "" {
		meta.Title = output
	}
	if meta.Title == "" && input != "-" {
		meta.Title = filepath.Base(input)
	}
	return meta, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	input := strings.TrimSpace(args[0])

	target, err := resolveOutputPath(args)
	if err != nil {
		return err
	}
	if diffFlag && target == "" {
		return fmt.Errorf("--diff requires an output file")
	}

	parsed, err := loadOutline(ctx, input)
	if err != nil {
		return err
	}

	meta, err := resolveMeta(input, target, parsed.frontMatter)
	if err != nil {
		return err
	}

	data, err := opml.Marshal(opml.Build(parsed.forest, meta), currentConfig().IndentWidth())
	if err != nil {
		return err
	}

	switch {
	case diffFlag:
		return writeDiff(stdoutFromContext(ctx), target, data)
	case dryRun:
		stats := outline.Summarize(parsed.forest)
		_, err := fmt.Fprintf(stderrFromContext(ctx), "would write %d nodes (%d summits) to %s\n", stats.Nodes, stats.Summits, destinationLabel(target))
		return err
	case target == "":
		_, err := stdoutFromContext(ctx).Write(data)
		return err
	}

	if err := opml.WriteFile(target, data); err != nil {
		return err
	}
	logger.Debug("wrote opml", "output", target, "bytes", len(data))
	return nil
}

func writeDiff(w io.Writer, target string, data []byte) error {
	previous, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", target, err)
	}

	diff := opml.Diff(string(previous), string(data))
	if diff == "" {
		_, err := fmt.Fprintf(w, "%s is up to date\n", target)
		return err
	}
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s (new)\n", target, target); err != nil {
		return err
	}
	_, err = io.WriteString(w, diff)
	return err
}

func destinationLabel(target string) string {
	if target == "" {
		return "stdout"
	}
	return target
}
