package op

import "fmt"

// Compiled scene container constants. A container holds one shared
// bytecode blob, a directory binding routines to entity slots, the
// coroutine offset table and the string pool.
const (
	SceneMagic         uint32 = 0x4E435347 // "GSCN".
	SceneFormatVersion        = 1
	SceneNameLength           = 31 // Plus NUL, padded to 32.
)

// RoutineKind tags an entry of the scene's routine directory.
type RoutineKind uint8

const (
	RoutineMaster RoutineKind = iota
	RoutineActor
	RoutineObject
	RoutinePerformer
	RoutineEvent
	RoutineKindCount
)

func (rk RoutineKind) String() string {
	switch rk {
	case RoutineMaster:
		return "master"
	case RoutineActor:
		return "actor"
	case RoutineObject:
		return "object"
	case RoutinePerformer:
		return "performer"
	case RoutineEvent:
		return "event"
	default:
		return fmt.Sprintf("kind(%d)", uint8(rk))
	}
}

// Capacity returns the entity table size for the kind, 1 for the master.
func (rk RoutineKind) Capacity() int {
	switch rk {
	case RoutineMaster:
		return 1
	case RoutineActor:
		return MaxActors
	case RoutineObject:
		return MaxObjects
	case RoutinePerformer:
		return MaxPerformers
	case RoutineEvent:
		return MaxEvents
	default:
		return 0
	}
}

// HeaderStructSize returns the size of the fixed container header:
// magic, format version, scene name, section counts and blob size.
// Hardcoded widths, independent of host architecture.
func HeaderStructSize() int {
	size := 4              // Magic.
	size += 2              // Format version.
	size += SceneNameLength + 1 // Scene name, NUL padded.
	size += 2              // Routine directory count.
	size += 2              // Coroutine offset table count.
	size += 2              // String pool count.
	size += 4              // Blob size.
	return size
}

// Routine directory and coroutine table entry sizes on the wire.
const (
	RoutineEntrySize = 1 + 1 + 4 // Kind, slot, offset.
	CommonEntrySize  = 2 + 4     // Common id, offset.
)
