package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/azurelit/groundvm/op"
)

// ParamKind tags how a source parameter resolves to its wire word.
type ParamKind int

const (
	ParamNumber ParamKind = iota
	ParamLabel            // :label, resolves to a blob byte offset.
	ParamVar              // $NAME, resolves to a variable id.
	ParamString           // @name, resolves to a string-pool index.
	ParamIdent            // Bare identifier: common routine or direction.
)

// Parameter is one instruction parameter as written in the source.
type Parameter struct {
	Kind  ParamKind
	Raw   string
	Value uint16 // Resolved wire word.
}

func (p Parameter) String() string {
	switch p.Kind {
	case ParamLabel:
		return string(labelChar) + p.Raw
	case ParamVar:
		return string(varChar) + p.Raw
	case ParamString:
		return string(stringRefChar) + p.Raw
	default:
		return p.Raw
	}
}

func parseNumber(in string) (int64, error) {
	in = strings.ReplaceAll(in, "_", "")
	neg := false
	if strings.HasPrefix(in, "+") {
		in = in[1:]
	} else if strings.HasPrefix(in, "-") {
		neg = true
		in = in[1:]
	}
	base := 10
	if strings.HasPrefix(in, "0x") || strings.HasPrefix(in, "0X") {
		base, in = 16, in[2:]
	} else if strings.HasPrefix(in, "0o") || strings.HasPrefix(in, "0O") {
		base, in = 8, in[2:]
	} else if strings.HasPrefix(in, "0b") || strings.HasPrefix(in, "0B") {
		base, in = 2, in[2:]
	}
	n, err := strconv.ParseInt(in, base, 32)
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

// resolve computes the wire word for the parameter. Labels resolve to
// absolute blob byte offsets against the program's label index; a miss
// during the first pass is recorded and fixed by the second pass.
func (p *Parameter) resolve(pr *Program) error {
	switch p.Kind {
	case ParamNumber:
		n, err := parseNumber(p.Raw)
		if err != nil {
			return fmt.Errorf("parse %q: %w", p.Raw, err)
		}
		if n < -0x8000 || n > 0xFFFF {
			return fmt.Errorf("parameter %q out of 16-bit range", p.Raw)
		}
		p.Value = uint16(n)
	case ParamVar:
		v, ok := op.VariableByName(p.Raw)
		if !ok {
			return fmt.Errorf("unknown variable %q", p.Raw)
		}
		p.Value = v.ID
	case ParamString:
		idx, ok := pr.stringIndex[p.Raw]
		if !ok {
			return fmt.Errorf("unknown string %q", p.Raw)
		}
		p.Value = idx
	case ParamLabel:
		off, ok := pr.labels[p.Raw]
		if !ok {
			if pr.hasLabelIndex {
				return fmt.Errorf("unknown label %q", p.Raw)
			}
			pr.hasMissingLabels = true
			p.Value = 0
			return nil
		}
		p.Value = uint16(off)
	case ParamIdent:
		if cr, ok := op.CommonRoutineByName(p.Raw); ok {
			p.Value = cr.ID
			return nil
		}
		if d, ok := directionByName(p.Raw); ok {
			p.Value = uint16(d)
			return nil
		}
		return fmt.Errorf("unknown identifier %q", p.Raw)
	default:
		return fmt.Errorf("unknown parameter kind %d", p.Kind)
	}
	return nil
}

func directionByName(name string) (op.Direction, bool) {
	for d := op.DirDown; d < op.DirectionCount; d++ {
		if strings.EqualFold(strings.ReplaceAll(d.String(), "-", "_"), name) {
			return d, true
		}
	}
	return 0, false
}

// Instruction is one assembled opcode with its source parameters.
type Instruction struct {
	OpCode op.OpCode
	Params []*Parameter
}

func (ins Instruction) String() string {
	out := "<" + ins.OpCode.Name
	paramStrs := make([]string, 0, len(ins.Params))
	for _, param := range ins.Params {
		paramStrs = append(paramStrs, param.String())
	}
	if len(paramStrs) == 0 {
		return out + ">"
	}
	return out + " (" + strings.Join(paramStrs, string(separatorChar)+" ") + ")>"
}

func (ins Instruction) PrettyPrint(_ []Node) string {
	paramStrs := make([]string, 0, len(ins.Params))
	for _, param := range ins.Params {
		paramStrs = append(paramStrs, param.String())
	}
	return fmt.Sprintf("\t%- 24s %s", ins.OpCode.Name, strings.Join(paramStrs, string(separatorChar)+" "))
}

// ValidateParameters checks the source arity against the catalog.
func (ins Instruction) ValidateParameters() error {
	if ins.OpCode.Arity == op.Variadic {
		return nil // The encoder appends the terminator.
	}
	if len(ins.Params) != ins.OpCode.Arity {
		return fmt.Errorf("%s: expected %d parameters, got %d", ins.OpCode.Name, ins.OpCode.Arity, len(ins.Params))
	}
	return nil
}

// Encode writes the opcode id and parameter words into the program blob.
func (ins *Instruction) Encode(p *Program) error {
	op.Endian.PutUint16(p.buf[p.idx:], ins.OpCode.Code)
	p.idx += op.WordSize

	for _, param := range ins.Params {
		if err := param.resolve(p); err != nil {
			return fmt.Errorf("%s: %w", ins.OpCode.Name, err)
		}
		op.Endian.PutUint16(p.buf[p.idx:], param.Value)
		p.idx += op.WordSize
	}
	if ins.OpCode.Arity == op.Variadic {
		op.Endian.PutUint16(p.buf[p.idx:], op.VariadicEnd)
		p.idx += op.WordSize
	}
	return nil
}

var ErrInvalidOpcode = fmt.Errorf("invalid opcode")

// Decoded is one instruction read back from a blob, as consumed by the
// interpreter and the disassembler.
type Decoded struct {
	OpCode op.OpCode
	Params []uint16
	Size   int // Bytes consumed, terminator included.
}

// DecodeNextInstruction decodes one instruction from the start of buf.
// Returns the instruction and how many bytes have been consumed.
func DecodeNextInstruction(buf []byte) (*Decoded, int, error) {
	if len(buf) < op.WordSize {
		return nil, 0, fmt.Errorf("truncated opcode word")
	}
	code := op.Endian.Uint16(buf)
	oc, ok := op.LookupOpCode(code)
	if !ok {
		return nil, 0, fmt.Errorf("opcode 0x%03x: %w", code, ErrInvalidOpcode)
	}
	idx := op.WordSize

	dec := &Decoded{OpCode: oc}
	if oc.Arity == op.Variadic {
		for {
			if idx+op.WordSize > len(buf) {
				return nil, idx, fmt.Errorf("%s: missing variadic terminator", oc.Name)
			}
			w := op.Endian.Uint16(buf[idx:])
			idx += op.WordSize
			if w == op.VariadicEnd {
				break
			}
			dec.Params = append(dec.Params, w)
		}
	} else {
		for range oc.Arity {
			if idx+op.WordSize > len(buf) {
				return nil, idx, fmt.Errorf("%s: missing parameter data", oc.Name)
			}
			dec.Params = append(dec.Params, op.Endian.Uint16(buf[idx:]))
			idx += op.WordSize
		}
	}
	dec.Size = idx
	return dec, idx, nil
}
