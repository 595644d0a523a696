package vm

import (
	"bytes"
	"fmt"

	"github.com/azurelit/groundvm/op"
)

// SpecialVar is the externally supplied handler backing one
// Special-typed variable. Such variables have no slot in the packed
// record; every access goes through here.
type SpecialVar struct {
	Read  func() int64
	Write func(int64)
}

var (
	ErrUnknownVariable = fmt.Errorf("unknown variable id")
	ErrSpecialVariable = fmt.Errorf("special variable has no backing storage")
	ErrLocalVariable   = fmt.Errorf("local variable is routine scratch, not store backed")
)

// ValueStore is the single packed record backing every non-Special
// global variable. It is shared by all routines with no access control
// beyond the fixed per-frame scan order, and is persisted verbatim by
// the save layer.
type ValueStore struct {
	rec [op.ValueStoreSize]byte

	specials map[uint16]SpecialVar
}

func NewValueStore() *ValueStore {
	vs := &ValueStore{
		specials: map[uint16]SpecialVar{},
	}
	vs.Reset()
	return vs
}

// Reset re-initializes the record to descriptor defaults: VERSION to 1,
// everything else to 0.
func (vs *ValueStore) Reset() {
	clear(vs.rec[:])
	for _, v := range op.VariableTable {
		if v.Default == 0 || v.Local() || v.Type == op.VarSpecial || v.Type == op.VarNone {
			continue
		}
		for i := range int(v.Count) {
			vs.writeElem(v, i, v.Default)
		}
	}
}

// RegisterSpecial installs the handler for a Special-typed variable id.
func (vs *ValueStore) RegisterSpecial(id uint16, h SpecialVar) error {
	v, err := vs.Resolve(id)
	if err != nil {
		return err
	}
	if v.Type != op.VarSpecial {
		return fmt.Errorf("variable %s is %s, not special", v.Name, v.Type)
	}
	vs.specials[id] = h
	return nil
}

// Resolve maps an id to its descriptor. A miss is a configuration
// error: the directory is compiled-in, so unknown ids mean the bytecode
// does not match the engine's catalogs.
func (vs *ValueStore) Resolve(id uint16) (op.Variable, error) {
	v, ok := op.LookupVariable(id)
	if !ok {
		return op.Variable{}, fmt.Errorf("variable 0x%03x: %w", id, ErrUnknownVariable)
	}
	return v, nil
}

func (vs *ValueStore) checkIndex(v op.Variable, index int) error {
	if index < 0 || index >= int(v.Count) {
		return fmt.Errorf("variable %s index %d out of range [0, %d)", v.Name, index, v.Count)
	}
	return nil
}

// Read returns the widened value of element index. Signed types
// sign-extend into the working register; bit types yield 0 or 1.
// Special-typed ids go through the registered handler instead.
func (vs *ValueStore) Read(id uint16, index int) (int64, error) {
	v, err := vs.Resolve(id)
	if err != nil {
		return 0, err
	}
	if err := vs.checkIndex(v, index); err != nil {
		return 0, err
	}
	switch v.Type {
	case op.VarSpecial:
		h, ok := vs.specials[id]
		if !ok || h.Read == nil {
			return 0, fmt.Errorf("variable %s: %w", v.Name, ErrSpecialVariable)
		}
		return h.Read(), nil
	case op.VarNone:
		return 0, nil
	}
	if v.Local() {
		return 0, fmt.Errorf("variable %s: %w", v.Name, ErrLocalVariable)
	}
	return vs.readElem(v, index), nil
}

// Write truncates value to the variable's declared width and stores it.
func (vs *ValueStore) Write(id uint16, index int, value int64) error {
	v, err := vs.Resolve(id)
	if err != nil {
		return err
	}
	if err := vs.checkIndex(v, index); err != nil {
		return err
	}
	switch v.Type {
	case op.VarSpecial:
		h, ok := vs.specials[id]
		if !ok || h.Write == nil {
			return fmt.Errorf("variable %s: %w", v.Name, ErrSpecialVariable)
		}
		h.Write(value)
		return nil
	case op.VarNone:
		return nil
	}
	if v.Local() {
		return fmt.Errorf("variable %s: %w", v.Name, ErrLocalVariable)
	}
	vs.writeElem(v, index, value)
	return nil
}

func (vs *ValueStore) readElem(v op.Variable, index int) int64 {
	if v.Type == op.VarBit {
		bit := int(v.Shift) + index
		b := vs.rec[int(v.Off)+bit/8]
		return int64(b >> (bit % 8) & 1)
	}
	off := int(v.Off) + index*v.Type.Width()
	switch v.Type {
	case op.VarUInt8, op.VarString:
		return int64(vs.rec[off])
	case op.VarInt8:
		return int64(int8(vs.rec[off]))
	case op.VarUInt16:
		return int64(op.Endian.Uint16(vs.rec[off:]))
	case op.VarInt16:
		return int64(int16(op.Endian.Uint16(vs.rec[off:])))
	case op.VarUInt32:
		return int64(op.Endian.Uint32(vs.rec[off:]))
	case op.VarInt32:
		return int64(int32(op.Endian.Uint32(vs.rec[off:])))
	default:
		return 0
	}
}

func (vs *ValueStore) writeElem(v op.Variable, index int, value int64) {
	if v.Type == op.VarBit {
		bit := int(v.Shift) + index
		mask := byte(1) << (bit % 8)
		if value != 0 {
			vs.rec[int(v.Off)+bit/8] |= mask
		} else {
			vs.rec[int(v.Off)+bit/8] &^= mask
		}
		return
	}
	off := int(v.Off) + index*v.Type.Width()
	switch v.Type {
	case op.VarUInt8, op.VarInt8, op.VarString:
		vs.rec[off] = byte(value)
	case op.VarUInt16, op.VarInt16:
		op.Endian.PutUint16(vs.rec[off:], uint16(value))
	case op.VarUInt32, op.VarInt32:
		op.Endian.PutUint32(vs.rec[off:], uint32(value))
	}
}

// ReadString reads a String-typed variable as raw bytes up to the first
// NUL or the declared count.
func (vs *ValueStore) ReadString(id uint16) (string, error) {
	v, err := vs.Resolve(id)
	if err != nil {
		return "", err
	}
	if v.Type != op.VarString {
		return "", fmt.Errorf("variable %s is %s, not string", v.Name, v.Type)
	}
	raw := vs.rec[v.Off : int(v.Off)+int(v.Count)]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw), nil
}

// WriteString stores s truncated to the declared count, NUL padded.
func (vs *ValueStore) WriteString(id uint16, s string) error {
	v, err := vs.Resolve(id)
	if err != nil {
		return err
	}
	if v.Type != op.VarString {
		return fmt.Errorf("variable %s is %s, not string", v.Name, v.Type)
	}
	raw := vs.rec[v.Off : int(v.Off)+int(v.Count)]
	clear(raw)
	copy(raw, s)
	return nil
}

// Bytes returns the packed record, verbatim. The save layer persists
// exactly these bytes.
func (vs *ValueStore) Bytes() []byte {
	out := make([]byte, op.ValueStoreSize)
	copy(out, vs.rec[:])
	return out
}

// SetBytes replaces the record, e.g. when restoring a save.
func (vs *ValueStore) SetBytes(data []byte) error {
	if len(data) != op.ValueStoreSize {
		return fmt.Errorf("record size %d, want %d", len(data), op.ValueStoreSize)
	}
	copy(vs.rec[:], data)
	return nil
}
