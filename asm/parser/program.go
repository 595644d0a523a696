package parser

import (
	"fmt"

	"github.com/azurelit/groundvm/op"
)

// MaxBlobSize bounds the shared bytecode blob: jump/call targets travel
// as 16-bit byte offsets.
const MaxBlobSize = 0x10000

// Node is one parsed element of a scene source file.
type Node interface {
	Encode(p *Program) error
	PrettyPrint(nodes []Node) string
}

// RoutineEntry binds a blob offset to an entity slot (or the master).
type RoutineEntry struct {
	Kind   op.RoutineKind
	Slot   uint8
	Offset uint32
}

// Program drives the two-pass encoding of a parsed scene: the first
// pass lays out the blob and collects labels, routine bindings, common
// offsets and the string pool; the second pass fixes label references
// that were still unknown.
type Program struct {
	p *Parser

	buf []byte
	idx int

	labels           map[string]int
	hasLabelIndex    bool
	hasMissingLabels bool

	sceneName   string
	routines    []RoutineEntry
	commons     map[uint16]uint32
	strings     []string
	stringIndex map[string]uint16
}

func NewProgram(p *Parser) *Program {
	return &Program{
		p: p,

		buf:         make([]byte, MaxBlobSize),
		commons:     map[uint16]uint32{},
		stringIndex: map[string]uint16{},
	}
}

func (p *Program) Size() int { return p.idx }

func (p *Program) encode() error {
	// If we have labels, it means we already encoded once and have the
	// labels index. Error out if we then encounter an unknown label.
	p.hasLabelIndex = p.labels != nil
	if !p.hasLabelIndex {
		p.labels = map[string]int{}
	}
	p.idx = 0
	for _, n := range p.p.Nodes {
		if err := n.Encode(p); err != nil {
			return fmt.Errorf("failed to encode %s: %w", n.PrettyPrint(p.p.Nodes), err)
		}
		if p.idx >= len(p.buf)-4*op.WordSize {
			return fmt.Errorf("scene blob exceeds %d bytes", MaxBlobSize)
		}
	}
	return nil
}

// Encode assembles the parsed nodes into a Scene.
func (p *Program) Encode() (*Scene, error) {
	if err := p.encode(); err != nil {
		return nil, fmt.Errorf("failed to first encode program: %w", err)
	}
	// If we have missing labels, re-encode now that the index is known.
	if p.hasMissingLabels {
		if err := p.encode(); err != nil {
			return nil, fmt.Errorf("failed to re-encode program: %w", err)
		}
	}

	if len(p.routines) == 0 {
		return nil, fmt.Errorf("scene has no routine binding")
	}
	seen := map[[2]byte]bool{}
	for _, elem := range p.routines {
		key := [2]byte{byte(elem.Kind), elem.Slot}
		if seen[key] {
			return nil, fmt.Errorf("duplicate routine binding %s %d", elem.Kind, elem.Slot)
		}
		seen[key] = true
	}

	blob := make([]byte, p.idx)
	copy(blob, p.buf[:p.idx])
	return &Scene{
		Name:     p.sceneName,
		Routines: p.routines,
		Commons:  p.commons,
		Strings:  p.strings,
		Blob:     blob,
	}, nil
}
