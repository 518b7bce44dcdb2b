package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/txt2opml/internal/outline"
	"github.com/salmonumbrella/txt2opml/internal/output"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --error-format %q (expected auto|text|json|yaml)", format)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(ErrorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		if ctx == nil {
			return "text"
		}
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintf(stderrFromContext(ctx), "txt2opml: %v\n", err)
}

func buildErrorEnvelope(err error) map[string]interface{} {
	payload := map[string]interface{}{
		"error": map[string]interface{}{
			"message": err.Error(),
		},
	}

	errMap := payload["error"].(map[string]interface{})
	errMap["category"] = "system"
	errMap["type"] = "error"

	var malformed outline.MalformedLineError
	if errors.As(err, &malformed) {
		errMap["type"] = "malformed_line"
		errMap["category"] = "user"
		errMap["line"] = malformed.Line
		errMap["raw"] = malformed.Raw
	}

	var orphan outline.OrphanNodeError
	if errors.As(err, &orphan) {
		errMap["type"] = "orphan_node"
		errMap["category"] = "user"
		errMap["line"] = orphan.Line
		errMap["level"] = orphan.Level
	}

	var invalid validation.Errors
	if errors.As(err, &invalid) {
		errMap["type"] = "config"
		errMap["category"] = "user"
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		errMap["type"] = "io"
		errMap["path"] = pathErr.Path
	}

	return payload
}
