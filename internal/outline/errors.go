package outline

import "fmt"

// Error types for fatal parse conditions
type (
	// MalformedLineError indicates a non-blank line without a marker, a single
	// space and a payload.
	MalformedLineError struct {
		Line int
		Raw  string
	}
	// OrphanNodeError indicates a line whose level has no parent at level-1.
	OrphanNodeError struct {
		Line  int
		Level int
		Text  string
	}
)

func (e MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed outline line %q", e.Line, e.Raw)
	}
	return fmt.Sprintf("malformed outline line %q", e.Raw)
}

func (e OrphanNodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: orphan node %q at level %d has no parent at level %d", e.Line, e.Text, e.Level, e.Level-1)
	}
	return fmt.Sprintf("orphan node %q at level %d has no parent at level %d", e.Text, e.Level, e.Level-1)
}
