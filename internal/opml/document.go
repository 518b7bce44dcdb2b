package opml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/salmonumbrella/txt2opml/internal/outline"
)

// Version is the OPML version written to the root element.
const Version = "2.0"

// DefaultIndent is the number of spaces per nesting level in encoded output.
const DefaultIndent = 2

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Document is an OPML document.
type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    Head     `xml:"head"`
	Body    Body     `xml:"body"`
}

// Head holds document-level metadata.
type Head struct {
	Title        string `xml:"title"`
	DateModified string `xml:"dateModified"`
	OwnerName    string `xml:"ownerName,omitempty"`
	OwnerEmail   string `xml:"ownerEmail,omitempty"`
}

// Body holds one outline element per summit.
type Body struct {
	Outlines []Outline `xml:"outline"`
}

// Outline is one outline element with its nested children.
type Outline struct {
	Text     string    `xml:"text,attr"`
	Outlines []Outline `xml:"outline"`
}

// Build converts a parsed forest and its metadata into a document.
func Build(forest []*outline.Node, meta Meta) *Document {
	return &Document{
		Version: Version,
		Head: Head{
			Title:        meta.Title,
			DateModified: meta.DateModified,
			OwnerName:    meta.OwnerName,
			OwnerEmail:   meta.OwnerEmail,
		},
		Body: Body{Outlines: buildOutlines(forest)},
	}
}

func buildOutlines(nodes []*outline.Node) []Outline {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Outline, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Outline{
			Text:     n.Text,
			Outlines: buildOutlines(n.Children),
		})
	}
	return out
}

// Encode writes doc as XML with a declaration header. indent is the number
// of spaces per nesting level; 0 writes the document on a single line.
func Encode(w io.Writer, doc *Document, indent int) error {
	if indent < 0 {
		return fmt.Errorf("invalid indent %d", indent)
	}
	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", strings.Repeat(" ", indent))
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode opml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode opml: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns the encoded document.
func Marshal(doc *Document, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
