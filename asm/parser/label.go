package parser

// Label marks a blob offset referencable as :name from any routine in
// the scene.
type Label struct {
	Name string
}

func (l *Label) PrettyPrint(nodes []Node) string {
	// Unless we are immediately after a label, prefix with a newline.
	var prev Node
	for _, n := range nodes {
		if l1, ok := n.(*Label); ok && l1 == l {
			if _, ok := prev.(*Label); ok {
				return l.Name + string(labelChar)
			}
			return "\n" + l.Name + string(labelChar)
		}
		prev = n
	}
	// Should never happen.
	panic("self reference not found in nodes")
}

func (l *Label) Encode(p *Program) error {
	p.labels[l.Name] = p.idx
	return nil
}
