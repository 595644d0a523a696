package op

import "fmt"

// VarType is the storage type of a script variable.
type VarType int

const (
	VarNone VarType = iota
	VarBit
	VarString
	VarUInt8
	VarInt8
	VarUInt16
	VarInt16
	VarUInt32
	VarInt32
	// VarSpecial variables have no backing slot in the packed record;
	// access goes through an externally registered handler.
	VarSpecial
)

func (vt VarType) String() string {
	switch vt {
	case VarNone:
		return "none"
	case VarBit:
		return "bit"
	case VarString:
		return "string"
	case VarUInt8:
		return "uint8"
	case VarInt8:
		return "int8"
	case VarUInt16:
		return "uint16"
	case VarInt16:
		return "int16"
	case VarUInt32:
		return "uint32"
	case VarInt32:
		return "int32"
	case VarSpecial:
		return "special"
	default:
		return fmt.Sprintf("vartype(%d)", int(vt))
	}
}

// Width returns the storage width in bytes of one element, 0 for
// bit-packed, storage-less and string types (strings are Count raw bytes).
func (vt VarType) Width() int {
	switch vt {
	case VarUInt8, VarInt8, VarString:
		return 1
	case VarUInt16, VarInt16:
		return 2
	case VarUInt32, VarInt32:
		return 4
	default:
		return 0
	}
}

// Signed reports whether reads must sign-extend into the working register.
func (vt VarType) Signed() bool {
	switch vt {
	case VarInt8, VarInt16, VarInt32:
		return true
	default:
		return false
	}
}

// Variable is one entry of the variable directory. Off is the byte
// offset of element 0 inside the packed record; Shift is the bit index
// within that byte for bit-typed variables. Count > 1 means an array.
type Variable struct {
	ID      uint16
	Type    VarType
	Off     uint16
	Shift   uint8
	Count   uint16
	Default int64
	Name    string
}

// Local reports whether the variable resolves against the per-routine
// scratch block instead of the shared record.
func (v Variable) Local() bool {
	return v.ID >= LocalVarBase && v.ID < LocalVarBase+LocalVarCount
}

var varsByName = func() map[string]Variable {
	m := make(map[string]Variable, len(VariableTable))
	for _, elem := range VariableTable {
		m[elem.Name] = elem
	}
	return m
}()

var varsByID = func() map[uint16]Variable {
	m := make(map[uint16]Variable, len(VariableTable))
	for _, elem := range VariableTable {
		m[elem.ID] = elem
	}
	return m
}()

// LookupVariable resolves a variable id against the directory. A miss is
// a configuration error: the directory is compiled-in and the bytecode
// referencing an unknown id means catalog/bytecode mismatch.
func LookupVariable(id uint16) (Variable, bool) {
	v, ok := varsByID[id]
	return v, ok
}

// VariableByName resolves a variable by symbolic name. Used by the
// assembler for $NAME parameters.
func VariableByName(name string) (Variable, bool) {
	v, ok := varsByName[name]
	return v, ok
}
