package cmd

import (
	"testing"

	"github.com/salmonumbrella/txt2opml/internal/config"
)

func TestConfigApplyAndClear(t *testing.T) {
	cfg := &config.Config{}

	if err := applyConfigValue(cfg, "output_extension", ".xml"); err != nil {
		t.Fatalf("apply output_extension: %v", err)
	}
	if cfg.OutputExtension != ".xml" {
		t.Fatalf("expected output_extension set, got %q", cfg.OutputExtension)
	}

	if err := applyConfigValue(cfg, "indent", "4"); err != nil {
		t.Fatalf("apply indent: %v", err)
	}
	if cfg.IndentWidth() != 4 {
		t.Fatalf("expected indent 4, got %d", cfg.IndentWidth())
	}

	if err := clearConfigValue(cfg, "output_extension"); err != nil {
		t.Fatalf("clear output_extension: %v", err)
	}
	if cfg.OutputExtension != "" || cfg.Extension() != ".opml" {
		t.Fatalf("expected output_extension cleared, got %q", cfg.OutputExtension)
	}

	if err := clearConfigValue(cfg, "indent"); err != nil {
		t.Fatalf("clear indent: %v", err)
	}
	if cfg.Indent != nil {
		t.Fatalf("expected indent cleared")
	}

	if err := applyConfigValue(cfg, "unknown", "x"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if err := clearConfigValue(cfg, "unknown"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestConfigApplyRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"output_extension", "opml"},
		{"indent", "two"},
		{"indent", "12"},
		{"output_format", "xml"},
		{"error_format", "table"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := applyConfigValue(&config.Config{}, tt.key, tt.value); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestSupportedConfigKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range supportedConfigKeys() {
		seen[k] = true
	}

	for _, k := range []string{"output_extension", "indent", "output_format", "error_format"} {
		if !seen[k] {
			t.Fatalf("missing key %s", k)
		}
	}
}

func TestConfigOutputDefaults(t *testing.T) {
	out := configOutput(&config.Config{})
	if out["output_extension"] != ".opml" {
		t.Fatalf("expected default extension, got %v", out["output_extension"])
	}
	if out["indent"] != 2 {
		t.Fatalf("expected default indent, got %v", out["indent"])
	}
	if out["indent_set"] != false {
		t.Fatalf("expected indent_set false")
	}
}
