package outline

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantLevel  int
		wantMarker string
		wantText   string
	}{
		{name: "single char summit", raw: "* Root", wantLevel: 0, wantMarker: "*", wantText: "Root"},
		{name: "dash summit", raw: "- Item", wantLevel: 0, wantMarker: "-", wantText: "Item"},
		{name: "dense level 1", raw: "** Child", wantLevel: 1, wantMarker: "**", wantText: "Child"},
		{name: "dense level 2", raw: "*** Grandchild", wantLevel: 2, wantMarker: "***", wantText: "Grandchild"},
		{name: "dense mixed chars", raw: "-+* Mixed", wantLevel: 2, wantMarker: "-+*", wantText: "Mixed"},
		{name: "sparse one pair", raw: "  - Indented", wantLevel: 1, wantMarker: "  -", wantText: "Indented"},
		{name: "sparse two pairs", raw: "    - Deeper", wantLevel: 2, wantMarker: "    -", wantText: "Deeper"},
		{name: "sparse odd spaces", raw: "   - Three", wantLevel: 1, wantMarker: "   -", wantText: "Three"},
		{name: "sparse single interior space", raw: "* - Text", wantLevel: 0, wantMarker: "* -", wantText: "Text"},
		{name: "payload trimmed", raw: "* Root   \t", wantLevel: 0, wantMarker: "*", wantText: "Root"},
		{name: "extra space before payload", raw: "*  Root", wantLevel: 0, wantMarker: "* ", wantText: "Root"},
		{name: "payload keeps inner spaces", raw: "** two  words", wantLevel: 1, wantMarker: "**", wantText: "two  words"},
		{name: "tab indented dense", raw: "\t\t- Tabbed", wantLevel: 2, wantMarker: "\t\t-", wantText: "Tabbed"},
		{name: "unicode bullet", raw: "• Bullet", wantLevel: 0, wantMarker: "•", wantText: "Bullet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok, err := Classify(tt.raw)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.raw, err)
			}
			if !ok {
				t.Fatalf("Classify(%q) skipped a non-blank line", tt.raw)
			}
			if line.Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", line.Level, tt.wantLevel)
			}
			if line.Marker != tt.wantMarker {
				t.Errorf("marker = %q, want %q", line.Marker, tt.wantMarker)
			}
			if line.Text != tt.wantText {
				t.Errorf("text = %q, want %q", line.Text, tt.wantText)
			}
		})
	}
}

func TestClassify_BlankLines(t *testing.T) {
	for _, raw := range []string{"", " ", "\t", "   \t  "} {
		_, ok, err := Classify(raw)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", raw, err)
		}
		if ok {
			t.Errorf("Classify(%q) should skip blank line", raw)
		}
	}
}

func TestClassify_Malformed(t *testing.T) {
	tests := []string{
		"NoMarkerAtAll",
		"*NoSpace",
		"Word first",
		" leading space only",
		"*\tTabSeparated",
		"** ",
		"² x",
		"½ half",
		"Ⅻ roman",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, _, err := Classify(raw)
			if err == nil {
				t.Fatalf("Classify(%q) expected error", raw)
			}
			var malformed MalformedLineError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedLineError, got %T", err)
			}
			if malformed.Raw != raw {
				t.Errorf("Raw = %q, want %q", malformed.Raw, raw)
			}
		})
	}
}

func TestClassify_DenseLength(t *testing.T) {
	for n := 2; n <= 8; n++ {
		marker := strings.Repeat("#", n)
		line, _, err := Classify(marker + " Heading")
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", marker, err)
		}
		if line.Level != n-1 {
			t.Errorf("marker %q: level = %d, want %d", marker, line.Level, n-1)
		}
	}
}
