package opml

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/salmonumbrella/txt2opml/internal/outline"
)

func TestBuild(t *testing.T) {
	forest, err := outline.ParseString("* Root\n** Child A\n** Child B\n*** Leaf\n* Second\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	doc := Build(forest, Meta{Title: "notes.opml", DateModified: "Thu, 01 Jan 1970 00:00:00 GMT"})
	if doc.Version != "2.0" {
		t.Fatalf("expected version 2.0, got %q", doc.Version)
	}
	if doc.Head.Title != "notes.opml" {
		t.Fatalf("unexpected title %q", doc.Head.Title)
	}
	if len(doc.Body.Outlines) != 2 {
		t.Fatalf("expected 2 summit outlines, got %d", len(doc.Body.Outlines))
	}
	root := doc.Body.Outlines[0]
	if root.Text != "Root" || len(root.Outlines) != 2 {
		t.Fatalf("unexpected root outline: %+v", root)
	}
	if root.Outlines[1].Outlines[0].Text != "Leaf" {
		t.Fatalf("expected Leaf under Child B, got %+v", root.Outlines[1])
	}
	if doc.Body.Outlines[1].Text != "Second" {
		t.Fatalf("unexpected second summit %q", doc.Body.Outlines[1].Text)
	}
}

func TestEncode(t *testing.T) {
	forest, err := outline.ParseString("* Root\n** Child\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := Build(forest, Meta{
		Title:        "notes.opml",
		DateModified: FormatDateModified(time.Unix(0, 0)),
	})

	out, err := Marshal(doc, 2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head>
    <title>notes.opml</title>
    <dateModified>Thu, 01 Jan 1970 00:00:00 GMT</dateModified>
  </head>
  <body>
    <outline text="Root">
      <outline text="Child"></outline>
    </outline>
  </body>
</opml>
`
	if string(out) != want {
		t.Fatalf("unexpected document:\n%s\nwant:\n%s", out, want)
	}
}

func TestEncode_EscapesText(t *testing.T) {
	doc := Build([]*outline.Node{{Text: `Tom & "Jerry" <3`}}, Meta{Title: "a < b"})

	out, err := Marshal(doc, 2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Document
	if err := xml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not well-formed: %v\n%s", err, out)
	}
	if decoded.Body.Outlines[0].Text != `Tom & "Jerry" <3` {
		t.Fatalf("text did not survive escaping: %q", decoded.Body.Outlines[0].Text)
	}
	if decoded.Head.Title != "a < b" {
		t.Fatalf("title did not survive escaping: %q", decoded.Head.Title)
	}
}

func TestEncode_OwnerFields(t *testing.T) {
	doc := Build(nil, Meta{Title: "t", OwnerName: "Ada", OwnerEmail: "ada@example.com"})
	out, err := Marshal(doc, 2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "<ownerName>Ada</ownerName>") {
		t.Fatalf("missing ownerName in output:\n%s", out)
	}
	if !strings.Contains(string(out), "<ownerEmail>ada@example.com</ownerEmail>") {
		t.Fatalf("missing ownerEmail in output:\n%s", out)
	}

	bare, err := Marshal(Build(nil, Meta{Title: "t"}), 2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(bare), "ownerName") {
		t.Fatalf("ownerName should be omitted when empty:\n%s", bare)
	}
}

func TestEncode_Compact(t *testing.T) {
	doc := Build([]*outline.Node{{Text: "A"}}, Meta{Title: "t"})
	out, err := Marshal(doc, 0)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	body := strings.TrimPrefix(string(out), xmlHeader)
	if strings.Count(body, "\n") != 1 {
		t.Fatalf("expected single-line document, got:\n%s", body)
	}
}

func TestEncode_NegativeIndent(t *testing.T) {
	if _, err := Marshal(Build(nil, Meta{}), -1); err == nil {
		t.Fatal("expected error for negative indent")
	}
}

func TestEncode_PreservesOrder(t *testing.T) {
	forest, err := outline.ParseString("- C\n- A\n- B\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Marshal(Build(forest, Meta{}), 2)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(out)
	c, a, b := strings.Index(s, `"C"`), strings.Index(s, `"A"`), strings.Index(s, `"B"`)
	if !(c < a && a < b) {
		t.Fatalf("summits out of order:\n%s", s)
	}
}
