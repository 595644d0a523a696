// Package op holds the static catalogs of the ground-mode script engine:
// the opcode table, the common-routine table, the variable directory and
// the wire-format constants. Everything in here is compiled-in data; the
// vm package consumes it read-only.
package op

import (
	"encoding/binary"
	"fmt"
)

var Endian = binary.LittleEndian

const (
	// Entity table capacities. Scripts address entities by slot index,
	// so these are part of the bytecode contract, not tuning knobs.
	MaxActors     = 24
	MaxObjects    = 16
	MaxPerformers = 16
	MaxEvents     = 32

	// ValueStoreSize is the size in bytes of the packed variable record.
	// The save file persists this record verbatim.
	ValueStoreSize = 1024

	// WordSize is the width of every opcode id and parameter on the wire.
	WordSize = 2

	// Variadic marks an opcode that reads parameters until VariadicEnd.
	Variadic = -1

	// VariadicEnd terminates the parameter list of a variadic opcode.
	// The terminator is consumed but not passed to the handler.
	VariadicEnd uint16 = 0xFFFF

	// LocalVarBase is the id of the first per-routine local variable.
	// Locals live in routine scratch space, not in the packed record.
	LocalVarBase  = 0x400
	LocalVarCount = 4

	// DefaultOpcodeBudget caps how many opcodes a single routine may
	// execute within one frame before it is forcibly yielded.
	DefaultOpcodeBudget = 64

	// SpecialProcessCount is the size of the special-process jump table
	// reachable through the ProcessSpecial opcode.
	SpecialProcessCount = 60
)

// MaxParams is the largest fixed arity in the opcode table. Variadic
// opcodes may exceed it; the assembler enforces it only for fixed ones.
const MaxParams = 10

// OpCode describes one instruction: its id, name and parameter arity.
// Arity is the number of uint16 parameter words following the opcode id,
// or Variadic.
type OpCode struct {
	Code  uint16
	Name  string
	Arity int
}

func (oc OpCode) String() string {
	if oc.Arity == Variadic {
		return fmt.Sprintf("<%s/...>", oc.Name)
	}
	return fmt.Sprintf("<%s/%d>", oc.Name, oc.Arity)
}

var opCodesByName = func() map[string]OpCode {
	m := make(map[string]OpCode, len(OpCodeTable))
	for _, elem := range OpCodeTable {
		m[elem.Name] = elem
	}
	return m
}()

// LookupOpCode resolves an opcode id against the catalog.
func LookupOpCode(code uint16) (OpCode, bool) {
	if int(code) >= len(OpCodeTable) {
		return OpCode{}, false
	}
	return OpCodeTable[code], true
}

// OpCodeByName resolves an opcode by symbolic name. Used by the assembler.
func OpCodeByName(name string) (OpCode, bool) {
	oc, ok := opCodesByName[name]
	return oc, ok
}

// CommonRoutine names one shared subroutine invocable by id from any
// routine. The id resolves against the scene's coroutine offset table
// at runtime.
type CommonRoutine struct {
	ID   uint16
	Name string
}

var commonsByName = func() map[string]CommonRoutine {
	m := make(map[string]CommonRoutine, len(CommonRoutineTable))
	for _, elem := range CommonRoutineTable {
		m[elem.Name] = elem
	}
	return m
}()

// LookupCommonRoutine resolves a common-routine id against the catalog.
func LookupCommonRoutine(id uint16) (CommonRoutine, bool) {
	if int(id) >= len(CommonRoutineTable) {
		return CommonRoutine{}, false
	}
	return CommonRoutineTable[id], true
}

// CommonRoutineByName resolves a common routine by symbolic name.
func CommonRoutineByName(name string) (CommonRoutine, bool) {
	cr, ok := commonsByName[name]
	return cr, ok
}

// Direction is an 8-way facing, clockwise from down. Matches the
// values scripts pass to the turn opcodes.
type Direction uint8

const (
	DirDown Direction = iota
	DirDownRight
	DirRight
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft
	DirectionCount
)

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirDownRight:
		return "down-right"
	case DirRight:
		return "right"
	case DirUpRight:
		return "up-right"
	case DirUp:
		return "up"
	case DirUpLeft:
		return "up-left"
	case DirLeft:
		return "left"
	case DirDownLeft:
		return "down-left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
