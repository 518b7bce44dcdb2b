package outline

// Node is one outline entry. A node owns its children and keeps them in
// parse order; there is no back-reference to the parent.
type Node struct {
	Text     string  `json:"text" yaml:"text"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// AddChild appends child as the last child of n.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Walk visits nodes depth-first in pre-order. depth is 0 for summits.
// A non-nil error from fn stops the walk and is returned.
func Walk(nodes []*Node, fn func(depth int, n *Node) error) error {
	return walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(int, *Node) error) error {
	for _, n := range nodes {
		if err := fn(depth, n); err != nil {
			return err
		}
		if err := walk(n.Children, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes the shape of a forest.
type Stats struct {
	Summits  int `json:"summits" yaml:"summits"`
	Nodes    int `json:"nodes" yaml:"nodes"`
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

// Summarize counts summits, nodes and the deepest level in the forest.
func Summarize(nodes []*Node) Stats {
	stats := Stats{Summits: len(nodes)}
	_ = Walk(nodes, func(depth int, _ *Node) error {
		stats.Nodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		return nil
	})
	return stats
}
