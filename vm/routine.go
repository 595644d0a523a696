package vm

import (
	"fmt"

	"github.com/azurelit/groundvm/op"
)

var (
	ErrCallOverflow = fmt.Errorf("call while saved state occupied")
	ErrNotRunnable  = fmt.Errorf("routine is not runnable")
)

// ExecState is the resumable execution state of a routine level. Two
// levels exist per routine: level 0 runs, level 1 holds the state saved
// by an in-flight Call/CallCommon. Nesting beyond that single saved
// level is unsupported.
type ExecState struct {
	Blob    []byte   // Shared script blob.
	Strings []string // String pool of the blob's container.

	PC        uint32 // Next opcode address.
	OpAddr    uint32 // Address of the opcode being executed.
	ParamAddr uint32 // Address of its first parameter word.
	ParamCnt  int
}

// Routine is one executable bytecode program bound to an entity or to
// the master script.
type Routine struct {
	Name string
	Kind op.RoutineKind
	Slot int

	States   [2]ExecState
	hasSaved bool

	LockID int // -1 when not waiting.
	Timer  int // Remaining wait frames.
	Held   bool
	Done   bool

	LastReturnValue int64
	Locals          [op.LocalVarCount]uint16

	switchValue int64 // Set by Switch, consumed by the Case family.
	yield       bool  // Stop stepping this routine for the current frame.
}

func (r *Routine) String() string {
	if r.Kind == op.RoutineMaster {
		return "master"
	}
	return fmt.Sprintf("%s %d", r.Kind, r.Slot)
}

// Reset re-points the routine at offset within blob and clears all
// transient state. Used at bind time and when an entity is re-enabled:
// prior execution state is never restored.
func (r *Routine) Reset(blob []byte, strings []string, offset uint32) {
	r.States[0] = ExecState{Blob: blob, Strings: strings, PC: offset}
	r.States[1] = ExecState{}
	r.hasSaved = false
	r.LockID = -1
	r.Timer = 0
	r.Held = false
	r.Done = false
	r.LastReturnValue = 0
	r.Locals = [op.LocalVarCount]uint16{}
	r.switchValue = 0
	r.yield = false
}

// state returns the live (level 0) execution state.
func (r *Routine) state() *ExecState { return &r.States[0] }

// Runnable reports whether the frame scheduler may step the routine.
// Wait timers are handled separately so the tick count stays exact.
func (r *Routine) Runnable() bool {
	return !r.Done && !r.Held && r.LockID < 0 && r.state().Blob != nil
}

// call snapshots level 0 into level 1 and re-points level 0 at the
// target blob offset. A second in-flight call is a fatal overflow.
func (r *Routine) call(target uint32) error {
	if r.hasSaved {
		return fmt.Errorf("%s at 0x%04x: %w", r, r.state().OpAddr, ErrCallOverflow)
	}
	if int(target) >= len(r.state().Blob) {
		return fmt.Errorf("%s: call target 0x%04x outside blob", r, target)
	}
	r.States[1] = r.States[0]
	r.hasSaved = true
	st := r.state()
	st.PC = target
	st.OpAddr = target
	st.ParamAddr = 0
	st.ParamCnt = 0
	return nil
}

// ret copies the saved level back verbatim, resuming immediately after
// the original call site. Returns false when there was no saved level:
// a top-level Return ends the routine.
func (r *Routine) ret() bool {
	if !r.hasSaved {
		return false
	}
	r.States[0] = r.States[1]
	r.States[1] = ExecState{}
	r.hasSaved = false
	return true
}
