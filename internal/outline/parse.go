package outline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads an outline line by line and returns its summits. Lines have no
// length limit. The first malformed or orphaned line aborts the parse; no
// further input is read.
func Parse(r io.Reader) ([]*Node, error) {
	reader := bufio.NewReader(r)

	builder := NewBuilder()
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read outline: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		line, ok, err := Classify(raw)
		if err != nil {
			var malformed MalformedLineError
			if errors.As(err, &malformed) {
				malformed.Line = lineNo
				return nil, malformed
			}
			return nil, err
		}
		if ok {
			if _, err := builder.Process(line.Level, line.Text); err != nil {
				var orphan OrphanNodeError
				if errors.As(err, &orphan) {
					orphan.Line = lineNo
					return nil, orphan
				}
				return nil, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return builder.Summits(), nil
}

// ParseString parses an outline held in memory.
func ParseString(s string) ([]*Node, error) {
	return Parse(strings.NewReader(s))
}
