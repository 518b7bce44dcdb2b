package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/salmonumbrella/txt2opml/internal/outline"
)

// writeTree renders a forest in sparse style, two spaces per level. The
// result parses back into the same forest.
func writeTree(w io.Writer, forest []*outline.Node) error {
	return outline.Walk(forest, func(depth int, n *outline.Node) error {
		_, err := fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), n.Text)
		return err
	})
}

// ForestTable flattens a forest into depth/path/text rows. path is the
// 1-based position of each ancestor, e.g. "1.2.1".
func ForestTable(forest []*outline.Node) Table {
	table := Table{Headers: []string{"DEPTH", "PATH", "TEXT"}}
	appendRows(&table, forest, nil)
	return table
}

func appendRows(table *Table, nodes []*outline.Node, prefix []string) {
	for i, n := range nodes {
		path := append(append([]string(nil), prefix...), strconv.Itoa(i+1))
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(len(prefix)),
			strings.Join(path, "."),
			n.Text,
		})
		appendRows(table, n.Children, path)
	}
}

// StatsTable renders forest stats as a single row.
func StatsTable(s outline.Stats) Table {
	return Table{
		Headers: []string{"SUMMITS", "NODES", "MAX_DEPTH"},
		Rows: [][]string{{
			strconv.Itoa(s.Summits),
			strconv.Itoa(s.Nodes),
			strconv.Itoa(s.MaxDepth),
		}},
	}
}
