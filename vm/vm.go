package vm

import (
	"fmt"
	"math/rand"

	"github.com/azurelit/groundvm/asm/parser"
	"github.com/azurelit/groundvm/op"
)

// Handler implements one opcode. The program counter has already been
// advanced past the opcode and its parameters when the handler runs;
// control-flow handlers reposition it explicitly.
type Handler func(v *VM, r *Routine, params []uint16) error

// SpecialProcess is one entry of the fixed dispatch-by-id table behind
// the ProcessSpecial opcode. The returned value is posted to the
// routine's return slot.
type SpecialProcess func(v *VM, r *Routine, params []uint16) (int64, error)

// VM executes every routine of one loaded scene, one cooperative frame
// at a time. It owns the shared value store, the entity tables and the
// lock manager; presentation is delegated to whoever consumes Messages.
type VM struct {
	Config   *Config
	Registry *Registry
	Values   *ValueStore
	Locks    *LockManager

	Scene *parser.Scene

	// Frame counts completed scheduler frames since scene load.
	Frame uint64

	// Party composition backing the computed team variables. The host
	// sets these; scripts only read them.
	Members int
	Friends int

	handlers map[uint16]Handler
	specials [op.SpecialProcessCount]SpecialProcess

	// Messages carries presentation and diagnostic events. When nobody
	// drains it in time, messages are dropped rather than stalling the
	// frame loop.
	Messages chan Message

	rng *rand.Rand
}

func NewVM(cfg *Config) *VM {
	if cfg == nil {
		cfg = NewConfig()
	}
	v := &VM{
		Config:   cfg,
		Registry: NewRegistry(),
		Values:   NewValueStore(),
		Locks:    NewLockManager(),
		handlers: map[uint16]Handler{},
		Messages: make(chan Message, cfg.MessageBuffer),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	v.registerCoreHandlers()
	v.registerSpecialVars()
	return v
}

// RegisterHandler binds the named opcode to h, replacing any previous
// binding. Unknown names are configuration errors.
func (v *VM) RegisterHandler(name string, h Handler) error {
	oc, ok := v.opByName(name)
	if !ok {
		return fmt.Errorf("register handler: unknown opcode %q", name)
	}
	v.handlers[oc.Code] = h
	return nil
}

func (v *VM) opByName(name string) (op.OpCode, bool) {
	return op.OpCodeByName(name)
}

// RegisterSpecialProcess installs the handler for special-process id.
func (v *VM) RegisterSpecialProcess(id int, sp SpecialProcess) error {
	if id < 0 || id >= op.SpecialProcessCount {
		return fmt.Errorf("special process id %d out of range [0, %d)", id, op.SpecialProcessCount)
	}
	v.specials[id] = sp
	return nil
}

// RegisterSpecialVar installs the computed-value handler backing a
// Special-typed variable.
func (v *VM) RegisterSpecialVar(name string, h SpecialVar) error {
	desc, ok := op.VariableByName(name)
	if !ok {
		return fmt.Errorf("register special var: unknown variable %q", name)
	}
	return v.Values.RegisterSpecial(desc.ID, h)
}

// post emits a message without ever blocking the frame loop.
func (v *VM) post(m Message) {
	select {
	case v.Messages <- m:
	default:
	}
}

func (v *VM) postf(mt MessageType, r *Routine, format string, args ...interface{}) {
	v.post(NewMessage(mt, r, fmt.Sprintf(format, args...)))
}

// LoadScene binds the scene's routine directory onto the entity tables
// and resets all shared state that belongs to the scene, leaving the
// value store untouched: globals outlive scene transitions.
func (v *VM) LoadScene(scene *parser.Scene) error {
	v.Scene = scene
	v.Frame = 0
	v.Locks = NewLockManager()

	v.Registry.Master.Reset(nil, nil, 0)
	v.Registry.Master.Done = true
	for kind := op.RoutineActor; kind < op.RoutineKindCount; kind++ {
		for slot := 0; slot < kind.Capacity(); slot++ {
			if err := v.Registry.Disable(kind, slot); err != nil {
				return err
			}
		}
	}

	for _, entry := range scene.Routines {
		kind := entry.Kind
		slot := int(entry.Slot)
		if kind == op.RoutineMaster {
			v.Registry.Master.Reset(scene.Blob, scene.Strings, entry.Offset)
			continue
		}
		if kind == op.RoutineEvent {
			if slot >= op.MaxEvents {
				return fmt.Errorf("load scene: event slot %d out of range", slot)
			}
			v.Registry.Events[slot].CoroutineID = uint16(entry.Offset)
			v.Registry.Events[slot].Enabled = true
			continue
		}
		r, err := v.Registry.RoutineAt(kind, slot)
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		r.Name = fmt.Sprintf("%s %d", kind, slot)
		r.Reset(scene.Blob, scene.Strings, entry.Offset)
		if err := v.Registry.Enable(kind, slot); err != nil {
			return err
		}
	}
	return nil
}

// readInstruction decodes the opcode at the routine's program counter
// and advances the counter past the opcode and its parameters.
func (v *VM) readInstruction(r *Routine) (op.OpCode, []uint16, error) {
	st := r.state()
	if int(st.PC)+op.WordSize > len(st.Blob) {
		return op.OpCode{}, nil, fmt.Errorf("%s: program counter 0x%04x outside blob", r, st.PC)
	}
	st.OpAddr = st.PC
	code := op.Endian.Uint16(st.Blob[st.PC:])
	oc, ok := op.LookupOpCode(code)
	if !ok {
		return op.OpCode{}, nil, fmt.Errorf("%s at 0x%04x: unknown opcode 0x%03x", r, st.OpAddr, code)
	}
	pc := st.PC + op.WordSize
	st.ParamAddr = pc

	var params []uint16
	if oc.Arity == op.Variadic {
		for {
			if int(pc)+op.WordSize > len(st.Blob) {
				return op.OpCode{}, nil, fmt.Errorf("%s at 0x%04x: %s missing terminator", r, st.OpAddr, oc.Name)
			}
			w := op.Endian.Uint16(st.Blob[pc:])
			pc += op.WordSize
			if w == op.VariadicEnd {
				break
			}
			params = append(params, w)
		}
	} else {
		for i := 0; i < oc.Arity; i++ {
			if int(pc)+op.WordSize > len(st.Blob) {
				return op.OpCode{}, nil, fmt.Errorf("%s at 0x%04x: %s truncated parameters", r, st.OpAddr, oc.Name)
			}
			params = append(params, op.Endian.Uint16(st.Blob[pc:]))
			pc += op.WordSize
		}
	}
	st.ParamCnt = len(params)
	st.PC = pc
	return oc, params, nil
}

// step executes exactly one opcode of r.
func (v *VM) step(r *Routine) error {
	oc, params, err := v.readInstruction(r)
	if err != nil {
		r.Done = true
		return err
	}
	h, ok := v.handlers[oc.Code]
	if !ok {
		return v.defaultHandler(oc, r, params)
	}
	return h(v, r, params)
}

// defaultHandler covers catalog opcodes with no native implementation:
// the calling convention is honored (parameters consumed, counter
// advanced) and the occurrence is reported on the message stream.
func (v *VM) defaultHandler(oc op.OpCode, r *Routine, params []uint16) error {
	if v.Config.StrictOpcodes {
		return fmt.Errorf("%s at 0x%04x: opcode %s has no handler", r, r.state().OpAddr, oc.Name)
	}
	if v.Config.Debug {
		v.postf(MsgDebug, r, "%s %v", oc.Name, params)
	}
	return nil
}

// stepRoutine runs one routine against the per-frame opcode budget.
func (v *VM) stepRoutine(r *Routine) error {
	r.yield = false
	for n := 0; n < v.Config.OpcodeBudget; n++ {
		if !r.Runnable() || r.Timer > 0 || r.yield {
			return nil
		}
		if err := v.step(r); err != nil {
			return err
		}
	}
	return nil
}

// Tick runs one scheduler frame: pending unlocks are applied in table
// order, then every enabled routine in that same order is either
// ticked down (wait timer) or stepped until it yields or exhausts the
// opcode budget, then entity simulation advances.
func (v *VM) Tick() error {
	routines := v.Registry.Routines()
	v.Locks.HandleUnlocks(routines)

	for _, r := range routines {
		if !v.Registry.Enabled(r.Kind, r.Slot) {
			continue
		}
		if r.Timer > 0 {
			r.Timer--
			continue
		}
		if !r.Runnable() {
			continue
		}
		if err := v.stepRoutine(r); err != nil {
			v.postf(MsgError, r, "%v", err)
			return err
		}
	}

	v.Registry.Tick()
	v.Frame++
	return nil
}

// Done reports whether every enabled routine has run to completion.
func (v *VM) Done() bool {
	for _, r := range v.Registry.Routines() {
		if v.Registry.Enabled(r.Kind, r.Slot) && !r.Done && r.state().Blob != nil {
			return false
		}
	}
	return true
}

// Run ticks frames until the scene completes or maxFrames elapses.
// maxFrames <= 0 means no limit.
func (v *VM) Run(maxFrames int) error {
	for n := 0; maxFrames <= 0 || n < maxFrames; n++ {
		if v.Done() {
			name := ""
			if v.Scene != nil {
				name = v.Scene.Name
			}
			v.post(NewMessage(MsgSceneEnd, nil, name))
			return nil
		}
		if err := v.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// TriggerEvent starts the coroutine bound to event slot on the master
// routine, as if the player had stepped on the trigger. The master must
// not have a call in flight.
func (v *VM) TriggerEvent(slot int) error {
	if slot < 0 || slot >= op.MaxEvents {
		return fmt.Errorf("event slot %d out of range", slot)
	}
	ev := &v.Registry.Events[slot]
	if !ev.Enabled {
		return fmt.Errorf("event slot %d is not armed", slot)
	}
	offset, ok := v.Scene.Commons[ev.CoroutineID]
	if !ok {
		return fmt.Errorf("event slot %d: coroutine 0x%03x not in scene", slot, ev.CoroutineID)
	}
	m := &v.Registry.Master
	if m.state().Blob == nil || m.Done {
		// A finished master gets fresh execution state: stacking the
		// call on its stale frame would make the final Return resume
		// past its End, into whatever follows in the shared blob.
		m.Reset(v.Scene.Blob, v.Scene.Strings, offset)
		return nil
	}
	return m.call(offset)
}

// callCommon resolves a common-routine id through the scene's
// coroutine-offset table and performs the two-slot call.
func (v *VM) callCommon(r *Routine, id uint16) error {
	if _, ok := op.LookupCommonRoutine(id); !ok {
		return fmt.Errorf("%s at 0x%04x: unknown common routine 0x%03x", r, r.state().OpAddr, id)
	}
	offset, ok := v.Scene.Commons[id]
	if !ok {
		return fmt.Errorf("%s at 0x%04x: common routine 0x%03x not present in scene", r, r.state().OpAddr, id)
	}
	return r.call(offset)
}

// sceneString returns entry idx of the scene string pool, or a
// placeholder for out-of-range references so message opcodes stay
// recoverable.
func (v *VM) sceneString(r *Routine, idx int) string {
	st := r.state()
	if idx < 0 || idx >= len(st.Strings) {
		return fmt.Sprintf("<string %d>", idx)
	}
	return st.Strings[idx]
}
