package outline

import (
	"strings"
	"unicode"
)

// Line is a classified outline line.
type Line struct {
	Level  int
	Marker string
	Text   string
}

// Classify splits raw into marker and payload and derives the nesting level
// from the marker. ok is false for blank lines, which produce no node.
//
// The marker is the longest run of non-word characters that is followed by
// a single space and a non-empty payload. Levels:
//
//	one-character marker        -> 0
//	marker containing a space   -> number of "  " pairs in the marker (sparse)
//	anything else               -> len(marker) - 1 (dense)
func Classify(raw string) (line Line, ok bool, err error) {
	if strings.TrimSpace(raw) == "" {
		return Line{}, false, nil
	}

	marker, payload, found := splitMarker(raw)
	if !found {
		return Line{}, false, MalformedLineError{Raw: raw}
	}

	return Line{
		Level:  markerLevel(marker),
		Marker: marker,
		Text:   strings.TrimSpace(payload),
	}, true, nil
}

func splitMarker(raw string) (marker, payload string, found bool) {
	runes := []rune(raw)

	run := 0
	for run < len(runes) && !isWordRune(runes[run]) {
		run++
	}

	// Backtrack from the longest candidate: the separator must be a space
	// inside the non-word run with at least one rune after it.
	for sep := run - 1; sep > 0; sep-- {
		if runes[sep] != ' ' || sep+1 >= len(runes) {
			continue
		}
		return string(runes[:sep]), string(runes[sep+1:]), true
	}
	return "", "", false
}

func markerLevel(marker string) int {
	switch {
	case len([]rune(marker)) == 1:
		return 0
	case strings.Contains(marker, " "):
		return strings.Count(marker, "  ")
	default:
		return len([]rune(marker)) - 1
	}
}

// isWordRune matches letters, numbers of any kind (², ½, Ⅻ) and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
