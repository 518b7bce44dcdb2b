package opml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is an optional YAML (---) or TOML (+++) block at the top of an
// outline file.
type FrontMatter struct {
	Title      string `yaml:"title" toml:"title"`
	OwnerName  string `yaml:"owner_name" toml:"owner_name"`
	OwnerEmail string `yaml:"owner_email" toml:"owner_email"`
}

// SplitFrontMatter separates a leading front matter block from the outline
// body. Without a block the whole source is returned as the body.
func SplitFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	fm.Title = strings.TrimSpace(fm.Title)
	fm.OwnerName = strings.TrimSpace(fm.OwnerName)
	fm.OwnerEmail = strings.TrimSpace(fm.OwnerEmail)
	return fm, body, nil
}
