package parser

import (
	"fmt"
	"strconv"

	"github.com/azurelit/groundvm/op"
)

// Directive is one of the scene-level declarations:
//
//	.scene "name"          container name
//	.routine master        bind the following code to the master routine
//	.routine actor 3       bind to actor slot 3 (object/performer alike)
//	.routine event 0 TALK_MAIN   arm event slot 0 with a coroutine
//	.common TALK_MAIN      register the offset in the coroutine table
//	.string done "text"    add a string-pool entry referencable as @done
type Directive struct {
	Name string
	Args []string
}

func (d Directive) String() string {
	return fmt.Sprintf("<%c%s %v>", directiveChar, d.Name, d.Args)
}

func (d *Directive) PrettyPrint(_ []Node) string {
	out := "\n" + string(directiveChar) + d.Name
	for _, arg := range d.Args {
		out += " " + arg
	}
	return out
}

func parseRoutineKind(name string) (op.RoutineKind, bool) {
	for rk := op.RoutineMaster; rk < op.RoutineKindCount; rk++ {
		if rk.String() == name {
			return rk, true
		}
	}
	return 0, false
}

func (d *Directive) Encode(p *Program) error {
	switch d.Name {
	case "scene":
		if len(d.Args) != 1 {
			return fmt.Errorf(".scene expects one argument")
		}
		if len(d.Args[0]) > op.SceneNameLength {
			return fmt.Errorf("scene name %q exceeds %d bytes", d.Args[0], op.SceneNameLength)
		}
		p.sceneName = d.Args[0]
	case "routine":
		if len(d.Args) == 0 {
			return fmt.Errorf(".routine expects a kind")
		}
		kind, ok := parseRoutineKind(d.Args[0])
		if !ok {
			return fmt.Errorf("unknown routine kind %q", d.Args[0])
		}
		slot := 0
		if kind != op.RoutineMaster {
			want := 2
			if kind == op.RoutineEvent {
				want = 3
			}
			if len(d.Args) != want {
				return fmt.Errorf(".routine %s expects %d arguments", kind, want-1)
			}
			n, err := strconv.Atoi(d.Args[1])
			if err != nil {
				return fmt.Errorf("invalid slot %q: %w", d.Args[1], err)
			}
			if n < 0 || n >= kind.Capacity() {
				return fmt.Errorf("slot %d out of range for %s (max %d)", n, kind, kind.Capacity()-1)
			}
			slot = n
		}
		// Event entries bind a coroutine id instead of a code offset.
		offset := uint32(p.idx)
		if kind == op.RoutineEvent {
			cr, ok := op.CommonRoutineByName(d.Args[2])
			if !ok {
				n, err := strconv.Atoi(d.Args[2])
				if err != nil || n < 0 || n >= len(op.CommonRoutineTable) {
					return fmt.Errorf("unknown coroutine %q for event routine", d.Args[2])
				}
				cr = op.CommonRoutineTable[n]
			}
			offset = uint32(cr.ID)
		}
		if !p.hasLabelIndex { // Only record bindings on the first pass.
			p.routines = append(p.routines, RoutineEntry{Kind: kind, Slot: uint8(slot), Offset: offset})
		}
	case "common":
		if len(d.Args) != 1 {
			return fmt.Errorf(".common expects one argument")
		}
		cr, ok := op.CommonRoutineByName(d.Args[0])
		if !ok {
			n, err := strconv.Atoi(d.Args[0])
			if err != nil || n < 0 || n >= len(op.CommonRoutineTable) {
				return fmt.Errorf("unknown common routine %q", d.Args[0])
			}
			cr = op.CommonRoutineTable[n]
		}
		if !p.hasLabelIndex {
			if _, dup := p.commons[cr.ID]; dup {
				return fmt.Errorf("duplicate common routine %q", cr.Name)
			}
			p.commons[cr.ID] = uint32(p.idx)
		}
	case "string":
		if len(d.Args) != 2 {
			return fmt.Errorf(".string expects a name and a value")
		}
		if !p.hasLabelIndex {
			if _, dup := p.stringIndex[d.Args[0]]; dup {
				return fmt.Errorf("duplicate string %q", d.Args[0])
			}
			p.stringIndex[d.Args[0]] = uint16(len(p.strings))
			p.strings = append(p.strings, d.Args[1])
		}
	default:
		return fmt.Errorf("unknown directive %q", d.Name)
	}
	return nil
}
