package outline

// Builder attaches classified lines to a growing forest. It keeps, per
// depth, every node appended at that depth in parse order; a new node at
// depth d becomes a child of the last node recorded at depth d-1.
//
// A Builder is owned by a single parse and is not safe for concurrent use.
type Builder struct {
	levels [][]*Node
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Process creates a node for text at level and attaches it to its parent.
func (b *Builder) Process(level int, text string) (*Node, error) {
	node := &Node{Text: text}

	if level < 0 || level > len(b.levels) {
		return nil, OrphanNodeError{Level: level, Text: text}
	}

	if level > 0 {
		siblings := b.levels[level-1]
		if len(siblings) == 0 {
			return nil, OrphanNodeError{Level: level, Text: text}
		}
		siblings[len(siblings)-1].AddChild(node)
	}

	if level == len(b.levels) {
		b.levels = append(b.levels, nil)
	}
	b.levels[level] = append(b.levels[level], node)

	return node, nil
}

// Summits returns the root nodes parsed so far.
func (b *Builder) Summits() []*Node {
	if len(b.levels) == 0 {
		return nil
	}
	return b.levels[0]
}

// Depth returns the number of levels populated so far.
func (b *Builder) Depth() int {
	return len(b.levels)
}
