package vm

import (
	"fmt"
	"strings"

	"github.com/azurelit/groundvm/op"
)

// Comparison operator encoding shared by the branch and case families.
const (
	cmpLess = iota
	cmpLessEqual
	cmpEqual
	cmpGreaterEqual
	cmpGreater
	cmpNotEqual
)

func compare(cmp uint16, a, b int64) bool {
	switch cmp {
	case cmpLess:
		return a < b
	case cmpLessEqual:
		return a <= b
	case cmpEqual:
		return a == b
	case cmpGreaterEqual:
		return a >= b
	case cmpGreater:
		return a > b
	case cmpNotEqual:
		return a != b
	default:
		return false
	}
}

// s16 widens a parameter word as a signed immediate.
func s16(w uint16) int64 { return int64(int16(w)) }

// jump repositions the program counter at a blob byte offset.
func (v *VM) jump(r *Routine, target uint16) error {
	st := r.state()
	if int(target) >= len(st.Blob) {
		return fmt.Errorf("%s at 0x%04x: jump target 0x%04x outside blob", r, st.OpAddr, target)
	}
	st.PC = uint32(target)
	return nil
}

// rewind re-points the counter at the current opcode so it re-executes
// on the next scheduling attempt. Used by the polling wait opcodes.
func (v *VM) rewind(r *Routine) {
	st := r.state()
	st.PC = st.OpAddr
	r.yield = true
}

// readScriptVar resolves id through the value store, routing local ids
// to the executing routine's scratch slots.
func (v *VM) readScriptVar(r *Routine, id uint16, index int) (int64, error) {
	if id >= op.LocalVarBase && id < op.LocalVarBase+op.LocalVarCount {
		return int64(r.Locals[id-op.LocalVarBase]), nil
	}
	return v.Values.Read(id, index)
}

func (v *VM) writeScriptVar(r *Routine, id uint16, index int, value int64) error {
	if id >= op.LocalVarBase && id < op.LocalVarBase+op.LocalVarCount {
		r.Locals[id-op.LocalVarBase] = uint16(value)
		return nil
	}
	return v.Values.Write(id, index, value)
}

// namedVarID is used by handlers hardwired to a specific directory
// entry; the directory is compiled-in, so a miss cannot happen outside
// a broken build.
func namedVarID(name string) uint16 {
	desc, ok := op.VariableByName(name)
	if !ok {
		panic("variable " + name + " missing from directory")
	}
	return desc.ID
}

// entityAt returns the addressed entity, nil for an out-of-range slot.
// Pose opcodes treat a bad slot as recoverable: warn and no-op rather
// than killing the frame.
func (v *VM) entityAt(r *Routine, kind op.RoutineKind, slot int) *core {
	c := v.Registry.entityCore(kind, slot)
	if c == nil {
		v.postf(MsgWarning, r, "%s slot %d out of range", kind, slot)
	}
	return c
}

func (v *VM) mustRegister(name string, h Handler) {
	if err := v.RegisterHandler(name, h); err != nil {
		panic(err)
	}
}

func (v *VM) registerCoreHandlers() {
	v.registerControlHandlers()
	v.registerSyncHandlers()
	v.registerValueHandlers()
	v.registerEntityHandlers()
	v.registerScenarioHandlers()
	v.registerPresentationHandlers()
}

func (v *VM) registerControlHandlers() {
	v.mustRegister("Null", func(v *VM, r *Routine, p []uint16) error {
		return nil
	})
	v.mustRegister("End", func(v *VM, r *Routine, p []uint16) error {
		r.Done = true
		return nil
	})
	v.mustRegister("Destroy", func(v *VM, r *Routine, p []uint16) error {
		if r.Kind == op.RoutineMaster {
			r.Done = true
			return nil
		}
		return v.Registry.Disable(r.Kind, r.Slot)
	})
	v.mustRegister("Return", func(v *VM, r *Routine, p []uint16) error {
		if !r.ret() {
			r.Done = true
		}
		return nil
	})
	v.mustRegister("Call", func(v *VM, r *Routine, p []uint16) error {
		return r.call(uint32(p[0]))
	})
	v.mustRegister("CallCommon", func(v *VM, r *Routine, p []uint16) error {
		return v.callCommon(r, p[0])
	})
	v.mustRegister("Jump", func(v *VM, r *Routine, p []uint16) error {
		return v.jump(r, p[0])
	})
	v.mustRegister("Branch", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[0], 0)
		if err != nil {
			return err
		}
		if val != 0 {
			return v.jump(r, p[1])
		}
		return nil
	})
	v.mustRegister("BranchBit", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(p[0], int(p[1]))
		if err != nil {
			return err
		}
		if val != 0 {
			return v.jump(r, p[2])
		}
		return nil
	})
	v.mustRegister("BranchValue", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[1], 0)
		if err != nil {
			return err
		}
		if compare(p[0], val, s16(p[2])) {
			return v.jump(r, p[3])
		}
		return nil
	})
	v.mustRegister("BranchVariable", func(v *VM, r *Routine, p []uint16) error {
		a, err := v.readScriptVar(r, p[1], 0)
		if err != nil {
			return err
		}
		b, err := v.readScriptVar(r, p[2], 0)
		if err != nil {
			return err
		}
		if compare(p[0], a, b) {
			return v.jump(r, p[3])
		}
		return nil
	})
	v.mustRegister("BranchPerformance", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(namedVarID("PERFORMANCE_PROGRESS_LIST"), int(p[0]))
		if err != nil {
			return err
		}
		if val != 0 {
			return v.jump(r, p[1])
		}
		return nil
	})
	v.mustRegister("BranchVariation", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(namedVarID("SUM_VARIATION"), 0)
		if err != nil {
			return err
		}
		if val == s16(p[0]) {
			return v.jump(r, p[1])
		}
		return nil
	})
	v.mustRegister("BranchSum", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(namedVarID("FRIEND_SUM"), 0)
		if err != nil {
			return err
		}
		if compare(p[0], val, s16(p[1])) {
			return v.jump(r, p[2])
		}
		return nil
	})
	v.mustRegister("Switch", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[0], 0)
		if err != nil {
			return err
		}
		r.switchValue = val
		return nil
	})
	v.mustRegister("Case", func(v *VM, r *Routine, p []uint16) error {
		if r.switchValue == s16(p[0]) {
			return v.jump(r, p[1])
		}
		return nil
	})
	v.mustRegister("CaseValue", func(v *VM, r *Routine, p []uint16) error {
		if compare(p[0], r.switchValue, s16(p[1])) {
			return v.jump(r, p[2])
		}
		return nil
	})
	v.mustRegister("CaseVariable", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[1], 0)
		if err != nil {
			return err
		}
		if compare(p[0], r.switchValue, val) {
			return v.jump(r, p[2])
		}
		return nil
	})
	v.mustRegister("CaseDefault", func(v *VM, r *Routine, p []uint16) error {
		return v.jump(r, p[0])
	})
	v.mustRegister("CaseEnd", func(v *VM, r *Routine, p []uint16) error {
		return nil
	})
	v.mustRegister("CaseScenario", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(p[0], 0)
		if err != nil {
			return err
		}
		if val == s16(p[1]) {
			return v.jump(r, p[2])
		}
		return nil
	})
}

func (v *VM) registerSyncHandlers() {
	v.mustRegister("Hold", func(v *VM, r *Routine, p []uint16) error {
		r.Held = true
		r.yield = true
		return nil
	})
	v.mustRegister("Wait", func(v *VM, r *Routine, p []uint16) error {
		r.Timer = int(p[0])
		r.yield = true
		return nil
	})
	v.mustRegister("WaitRandom", func(v *VM, r *Routine, p []uint16) error {
		lo, hi := int(p[0]), int(p[1])
		if hi < lo {
			lo, hi = hi, lo
		}
		r.Timer = lo + v.rng.Intn(hi-lo+1)
		r.yield = true
		return nil
	})
	// WaitExecute blocks until a return value has been posted to the
	// routine, by a completed common routine, a special process, or the
	// host. The opcode re-executes every frame until then.
	v.mustRegister("WaitExecute", func(v *VM, r *Routine, p []uint16) error {
		if r.LastReturnValue == 0 {
			v.rewind(r)
		}
		return nil
	})
	v.mustRegister("SetReturnValue", func(v *VM, r *Routine, p []uint16) error {
		r.LastReturnValue = s16(p[0])
		return nil
	})
	v.mustRegister("Lock", func(v *VM, r *Routine, p []uint16) error {
		v.Locks.Lock(r, int(p[0]))
		return nil
	})
	v.mustRegister("Unlock", func(v *VM, r *Routine, p []uint16) error {
		v.Locks.Unlock(int(p[0]))
		return nil
	})
	v.mustRegister("UnlockMain", func(v *VM, r *Routine, p []uint16) error {
		m := &v.Registry.Master
		v.Locks.ReleaseHold(m)
		if m.LockID >= 0 {
			v.Locks.Unlock(m.LockID)
		}
		return nil
	})
	waitLock := func(kind op.RoutineKind) Handler {
		return func(v *VM, r *Routine, p []uint16) error {
			target, err := v.Registry.RoutineAt(kind, int(p[0]))
			if err != nil {
				v.postf(MsgWarning, r, "wait lock: %v", err)
				return nil
			}
			if target.Done || target.LockID == int(p[1]) {
				return nil
			}
			v.rewind(r)
			return nil
		}
	}
	v.mustRegister("WaitLockActor", waitLock(op.RoutineActor))
	v.mustRegister("WaitLockObject", waitLock(op.RoutineObject))
	v.mustRegister("WaitLockPerformer", waitLock(op.RoutinePerformer))
	v.mustRegister("ProcessSpecial", func(v *VM, r *Routine, p []uint16) error {
		id := int(p[0])
		if id < 0 || id >= op.SpecialProcessCount {
			return fmt.Errorf("%s at 0x%04x: special process %d out of range", r, r.state().OpAddr, id)
		}
		sp := v.specials[id]
		if sp == nil {
			v.post(Message{Type: MsgSpecial, Routine: r, Text: fmt.Sprintf("special process %d", id), Params: p})
			r.LastReturnValue = 0
			return nil
		}
		val, err := sp(v, r, p[1:])
		if err != nil {
			return err
		}
		r.LastReturnValue = val
		return nil
	})
}

func (v *VM) registerValueHandlers() {
	arith := func(apply func(cur, arg int64) (int64, bool)) Handler {
		return func(v *VM, r *Routine, p []uint16) error {
			cur, err := v.readScriptVar(r, p[0], int(p[1]))
			if err != nil {
				return err
			}
			next, ok := apply(cur, s16(p[2]))
			if !ok {
				v.postf(MsgWarning, r, "division by zero on variable 0x%03x", p[0])
				return nil
			}
			return v.writeScriptVar(r, p[0], int(p[1]), next)
		}
	}
	v.mustRegister("value_Set", func(v *VM, r *Routine, p []uint16) error {
		return v.writeScriptVar(r, p[0], int(p[1]), s16(p[2]))
	})
	v.mustRegister("value_Add", arith(func(cur, arg int64) (int64, bool) { return cur + arg, true }))
	v.mustRegister("value_Sub", arith(func(cur, arg int64) (int64, bool) { return cur - arg, true }))
	v.mustRegister("value_Mul", arith(func(cur, arg int64) (int64, bool) { return cur * arg, true }))
	v.mustRegister("value_Div", arith(func(cur, arg int64) (int64, bool) {
		if arg == 0 {
			return 0, false
		}
		return cur / arg, true
	}))
	v.mustRegister("value_Copy", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[0], int(p[1]))
		if err != nil {
			return err
		}
		return v.writeScriptVar(r, p[2], int(p[3]), val)
	})
	v.mustRegister("value_Random", func(v *VM, r *Routine, p []uint16) error {
		max := s16(p[2])
		if max < 0 {
			max = 0
		}
		return v.writeScriptVar(r, p[0], int(p[1]), v.rng.Int63n(max+1))
	})
	v.mustRegister("value_Clamp", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.readScriptVar(r, p[0], int(p[1]))
		if err != nil {
			return err
		}
		lo, hi := s16(p[2]), s16(p[3])
		if val < lo {
			val = lo
		}
		if val > hi {
			val = hi
		}
		return v.writeScriptVar(r, p[0], int(p[1]), val)
	})
	v.mustRegister("value_SetDefault", func(v *VM, r *Routine, p []uint16) error {
		desc, err := v.Values.Resolve(p[0])
		if err != nil {
			return err
		}
		for i := 0; i < int(desc.Count); i++ {
			if err := v.writeScriptVar(r, p[0], i, desc.Default); err != nil {
				return err
			}
		}
		return nil
	})

	v.mustRegister("flag_Set", func(v *VM, r *Routine, p []uint16) error {
		return v.Values.Write(p[0], int(p[1]), 1)
	})
	v.mustRegister("flag_Clear", func(v *VM, r *Routine, p []uint16) error {
		return v.Values.Write(p[0], int(p[1]), 0)
	})
	v.mustRegister("flag_Toggle", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(p[0], int(p[1]))
		if err != nil {
			return err
		}
		return v.Values.Write(p[0], int(p[1]), val^1)
	})
	v.mustRegister("flag_CopyBit", func(v *VM, r *Routine, p []uint16) error {
		val, err := v.Values.Read(p[0], int(p[1]))
		if err != nil {
			return err
		}
		return v.Values.Write(p[2], int(p[3]), val)
	})
	clearVar := func(name string) error {
		desc, ok := op.VariableByName(name)
		if !ok {
			return fmt.Errorf("variable %s missing from directory", name)
		}
		for i := 0; i < int(desc.Count); i++ {
			if err := v.Values.Write(desc.ID, i, 0); err != nil {
				return err
			}
		}
		return nil
	}
	v.mustRegister("flag_ResetScenario", func(v *VM, r *Routine, p []uint16) error {
		for _, name := range []string{
			"SCENARIO_MAIN_BIT_FLAG", "SCENARIO_TALK_BIT_FLAG",
			"SCENARIO_SIDE_BIT_FLAG", "SCENARIO_SUB_BIT_FLAG",
		} {
			if err := clearVar(name); err != nil {
				return err
			}
		}
		return nil
	})
	v.mustRegister("flag_ResetAll", func(v *VM, r *Routine, p []uint16) error {
		v.Values.Reset()
		return nil
	})
	v.mustRegister("flag_SetDungeonMode", func(v *VM, r *Routine, p []uint16) error {
		return v.Values.Write(namedVarID("DUNGEON_ENTER_MODE"), 0, s16(p[0]))
	})
	v.mustRegister("flag_SetPerformance", func(v *VM, r *Routine, p []uint16) error {
		return v.Values.Write(namedVarID("PERFORMANCE_PROGRESS_LIST"), int(p[0]), s16(p[1]))
	})
}

// registerEntityHandlers installs the 17-operation pose and motion
// family once per entity kind; the opcode name prefix selects the
// table the slot parameter indexes into.
func (v *VM) registerEntityHandlers() {
	for _, fam := range []struct {
		prefix string
		kind   op.RoutineKind
	}{
		{"actor_", op.RoutineActor},
		{"object_", op.RoutineObject},
		{"performer_", op.RoutinePerformer},
	} {
		v.registerEntityFamily(fam.prefix, fam.kind)
	}
}

func (v *VM) registerEntityFamily(prefix string, kind op.RoutineKind) {
	withEntity := func(h func(c *core, p []uint16) error) Handler {
		return func(v *VM, r *Routine, p []uint16) error {
			c := v.entityAt(r, kind, int(s16(p[0])))
			if c == nil {
				return nil
			}
			return h(c, p)
		}
	}
	pos := func(x, y uint16) Pos {
		return Pos{X: int32(int16(x)), Y: int32(int16(y))}
	}

	v.mustRegister(prefix+"SetPosition", withEntity(func(c *core, p []uint16) error {
		c.SetPosition(pos(p[1], p[2]))
		return nil
	}))
	v.mustRegister(prefix+"SetPositionInitial", withEntity(func(c *core, p []uint16) error {
		c.SetPositionInitial(pos(p[1], p[2]))
		return nil
	}))
	v.mustRegister(prefix+"SetPositionOffset", withEntity(func(c *core, p []uint16) error {
		c.SetPositionOffset(int32(int16(p[1])), int32(int16(p[2])))
		return nil
	}))
	// Move2Position blocks the routine until the entity arrives;
	// Slide2Position starts the same motion and returns immediately.
	v.mustRegister(prefix+"Move2Position", func(v *VM, r *Routine, p []uint16) error {
		c := v.entityAt(r, kind, int(s16(p[0])))
		if c == nil {
			return nil
		}
		target := c.clampPos(pos(p[1], p[2]))
		if !c.moving || c.moveTarget != target {
			if c.Position() == target {
				return nil
			}
			c.moveTo(target, int32(int16(p[3])))
		}
		if c.moving {
			v.rewind(r)
		}
		return nil
	})
	v.mustRegister(prefix+"Slide2Position", withEntity(func(c *core, p []uint16) error {
		c.moveTo(pos(p[1], p[2]), int32(int16(p[3])))
		return nil
	}))
	v.mustRegister(prefix+"Turn2Direction", withEntity(func(c *core, p []uint16) error {
		c.SetDirection(op.Direction(p[1]))
		return nil
	}))
	v.mustRegister(prefix+"TurnDelta", withEntity(func(c *core, p []uint16) error {
		n := int64(op.DirectionCount)
		d := (int64(c.Direction()) + s16(p[1])) % n
		if d < 0 {
			d += n
		}
		c.SetDirection(op.Direction(d))
		return nil
	}))
	v.mustRegister(prefix+"SetHeight", withEntity(func(c *core, p []uint16) error {
		c.SetHeight(int32(int16(p[1])))
		return nil
	}))
	v.mustRegister(prefix+"SetAnimation", withEntity(func(c *core, p []uint16) error {
		c.SetAnimation(int(s16(p[1])))
		return nil
	}))
	v.mustRegister(prefix+"SetEffect", withEntity(func(c *core, p []uint16) error {
		c.SetEffect(int(s16(p[1])))
		return nil
	}))
	v.mustRegister(prefix+"SetAttribute", withEntity(func(c *core, p []uint16) error {
		mask := uint32(p[1])
		if p[2] != 0 {
			c.SetAttributes(c.Attributes() | mask)
		} else {
			c.SetAttributes(c.Attributes() &^ mask)
		}
		return nil
	}))
	v.mustRegister(prefix+"SetBlink", withEntity(func(c *core, p []uint16) error {
		c.SetBlink(p[1] != 0, int(p[2]))
		return nil
	}))
	v.mustRegister(prefix+"SetMovementRange", withEntity(func(c *core, p []uint16) error {
		c.SetMovementRange(pos(p[1], p[2]), pos(p[3], p[4]))
		return nil
	}))
	v.mustRegister(prefix+"WaitAnimation", func(v *VM, r *Routine, p []uint16) error {
		c := v.entityAt(r, kind, int(s16(p[0])))
		if c != nil && !c.AnimationDone() {
			v.rewind(r)
		}
		return nil
	})
	v.mustRegister(prefix+"WaitEffect", func(v *VM, r *Routine, p []uint16) error {
		c := v.entityAt(r, kind, int(s16(p[0])))
		if c != nil && !c.EffectDone() {
			v.rewind(r)
		}
		return nil
	})
	v.mustRegister(prefix+"Enable", func(v *VM, r *Routine, p []uint16) error {
		slot := int(s16(p[0]))
		if v.entityAt(r, kind, slot) == nil {
			return nil
		}
		if err := v.Registry.Enable(kind, slot); err != nil {
			return err
		}
		// Re-enabling always restarts the bound routine from the top.
		if entry, ok := v.Scene.RoutineFor(kind, slot); ok {
			target, err := v.Registry.RoutineAt(kind, slot)
			if err != nil {
				return err
			}
			target.Reset(v.Scene.Blob, v.Scene.Strings, entry.Offset)
		}
		return nil
	})
	v.mustRegister(prefix+"Disable", func(v *VM, r *Routine, p []uint16) error {
		slot := int(s16(p[0]))
		if v.entityAt(r, kind, slot) == nil {
			return nil
		}
		return v.Registry.Disable(kind, slot)
	})
}

func (v *VM) registerScenarioHandlers() {
	setPair := func(name string) Handler {
		id := namedVarID(name)
		return func(v *VM, r *Routine, p []uint16) error {
			if err := v.Values.Write(id, 0, s16(p[0])); err != nil {
				return err
			}
			return v.Values.Write(id, 1, s16(p[1]))
		}
	}
	branchPair := func(name string) Handler {
		id := namedVarID(name)
		return func(v *VM, r *Routine, p []uint16) error {
			val, err := v.Values.Read(id, 0)
			if err != nil {
				return err
			}
			if compare(p[0], val, s16(p[1])) {
				return v.jump(r, p[2])
			}
			return nil
		}
	}
	v.mustRegister("scenario_Set", setPair("SCENARIO_MAIN"))
	v.mustRegister("scenario_SetMain", setPair("SCENARIO_MAIN"))
	v.mustRegister("scenario_SetSub", setPair("SCENARIO_SUB1"))
	v.mustRegister("scenario_SetSide", setPair("SCENARIO_SIDE"))
	v.mustRegister("scenario_BranchMain", branchPair("SCENARIO_MAIN"))
	v.mustRegister("scenario_BranchSub", branchPair("SCENARIO_SUB1"))
	v.mustRegister("scenario_BranchSide", branchPair("SCENARIO_SIDE"))
}

// registerPresentationHandlers installs a typed message emitter for
// every catalog opcode in a presentation family that has no dedicated
// handler yet. The front end consuming the stream decides what fading,
// panning or shaking actually looks like.
func (v *VM) registerPresentationHandlers() {
	// Talk-class opcodes resolve their string-pool parameter so the
	// stream carries readable text; the raw parameters ride along.
	talk := func(strParam int) Handler {
		return func(v *VM, r *Routine, p []uint16) error {
			text := ""
			if strParam < len(p) {
				text = v.sceneString(r, int(p[strParam]))
			}
			v.post(Message{Type: MsgTalk, Routine: r, Text: text, Params: p})
			return nil
		}
	}
	v.mustRegister("message_Talk", talk(0))
	v.mustRegister("message_Talk2", talk(1))
	v.mustRegister("message_Monologue", talk(0))
	v.mustRegister("message_Mail", talk(0))
	v.mustRegister("message_Mail2", talk(1))
	v.mustRegister("message_Notice", talk(0))
	v.mustRegister("message_Explanation", talk(0))
	v.mustRegister("message_Narration", talk(0))
	v.mustRegister("message_SpecialTalk", talk(2))

	families := []struct {
		prefix string
		mt     MessageType
	}{
		{"message_", MsgWindow},
		{"screen_", MsgScreen},
		{"screen2_", MsgScreen},
		{"camera_", MsgCamera},
		{"camera2_", MsgCamera},
		{"bgm_", MsgMusic},
		{"bgm2_", MsgMusic},
		{"se_", MsgSound},
		{"back_", MsgBackground},
	}
	for i := range op.OpCodeTable {
		oc := op.OpCodeTable[i]
		if _, ok := v.handlers[oc.Code]; ok {
			continue
		}
		for _, fam := range families {
			if !strings.HasPrefix(oc.Name, fam.prefix) {
				continue
			}
			mt, name := fam.mt, oc.Name
			v.handlers[oc.Code] = func(v *VM, r *Routine, p []uint16) error {
				v.post(Message{Type: mt, Routine: r, Text: name, Params: p})
				return nil
			}
			break
		}
	}
}

// registerSpecialVars backs the computed team variables. They read
// live engine state instead of value-store bytes; TIME_MINUTES derives
// from the persisted play-time counter so replays stay deterministic.
func (v *VM) registerSpecialVars() {
	register := func(name string, h SpecialVar) {
		if err := v.RegisterSpecialVar(name, h); err != nil {
			panic(err)
		}
	}
	v.Members = 2
	register("MEMBER_SUM", SpecialVar{
		Read:  func() int64 { return int64(v.Members) },
		Write: func(val int64) { v.Members = int(val) },
	})
	register("FRIEND_SUM", SpecialVar{
		Read:  func() int64 { return int64(v.Friends) },
		Write: func(val int64) { v.Friends = int(val) },
	})
	register("UNIT_SUM", SpecialVar{
		Read: func() int64 { return int64(v.Members + v.Friends) },
	})
	register("SUM_VARIATION", SpecialVar{
		Read: func() int64 {
			val, err := v.Values.Read(namedVarID("ROM_VARIATION"), 0)
			if err != nil {
				return 0
			}
			return val
		},
	})
	register("LEVEL_AVERAGE", SpecialVar{
		Read: func() int64 {
			val, err := v.Values.Read(namedVarID("BASE_LEVEL"), 0)
			if err != nil {
				return 0
			}
			return val
		},
	})
	register("TIME_MINUTES", SpecialVar{
		Read: func() int64 {
			val, err := v.Values.Read(namedVarID("PLAY_TIME"), 0)
			if err != nil {
				return 0
			}
			return val / 60
		},
	})
}
