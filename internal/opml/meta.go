package opml

import (
	"fmt"
	"os"
	"time"

	"github.com/itchyny/timefmt-go"
)

// dateLayout is RFC 822 with a four-digit year, always rendered in GMT.
const dateLayout = "%a, %d %b %Y %H:%M:%S GMT"

// Meta carries the head fields of a document.
type Meta struct {
	Title        string `json:"title" yaml:"title"`
	DateModified string `json:"date_modified" yaml:"date_modified"`
	OwnerName    string `json:"owner_name,omitempty" yaml:"owner_name,omitempty"`
	OwnerEmail   string `json:"owner_email,omitempty" yaml:"owner_email,omitempty"`
}

// FormatDateModified renders t in UTC as an RFC 822 timestamp.
func FormatDateModified(t time.Time) string {
	return timefmt.Format(t.UTC(), dateLayout)
}

// MetaForFile builds metadata for the outline stored at path, dated by the
// file's modification time.
func MetaForFile(path, title string) (Meta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Meta{
		Title:        title,
		DateModified: FormatDateModified(info.ModTime()),
	}, nil
}

// Apply fills empty fields of m from the front matter. A title already set
// on m wins.
func (m Meta) Apply(fm FrontMatter) Meta {
	if m.Title == "" {
		m.Title = fm.Title
	}
	if m.OwnerName == "" {
		m.OwnerName = fm.OwnerName
	}
	if m.OwnerEmail == "" {
		m.OwnerEmail = fm.OwnerEmail
	}
	return m
}
