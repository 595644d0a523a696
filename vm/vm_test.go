package vm

import (
	"strings"
	"testing"

	"github.com/azurelit/groundvm/asm"
	"github.com/azurelit/groundvm/asm/parser"
	"github.com/azurelit/groundvm/op"
)

func mustScene(t *testing.T, src string) *parser.Scene {
	t.Helper()
	_, scene, err := asm.Compile("test.gs", src)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	return scene
}

func newTestVM(t *testing.T, src string) *VM {
	t.Helper()
	v := NewVM(&Config{OpcodeBudget: op.DefaultOpcodeBudget, MessageBuffer: 64, Seed: 1})
	if err := v.LoadScene(mustScene(t, src)); err != nil {
		t.Fatalf("load scene: %s", err)
	}
	return v
}

func tick(t *testing.T, v *VM, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := v.Tick(); err != nil {
			t.Fatalf("frame %d: %s", v.Frame, err)
		}
	}
}

func readVar(t *testing.T, v *VM, name string, index int) int64 {
	t.Helper()
	got, err := v.Values.Read(varID(t, name), index)
	if err != nil {
		t.Fatalf("read %s: %s", name, err)
	}
	return got
}

func TestWaitBlocksExactFrameCount(t *testing.T) {
	v := newTestVM(t, `
.scene "wait"
.routine master
	Wait 30
	value_Set $CARRY_GOLD, 0, 1
	End
`)
	// Frame 1 executes the wait; the next 30 scheduling attempts are
	// blocked; the 31st attempt after the wait resumes.
	tick(t, v, 31)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 0 {
		t.Fatalf("resumed early: CARRY_GOLD = %d", got)
	}
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 1 {
		t.Fatalf("did not resume: CARRY_GOLD = %d", got)
	}
	if !v.Registry.Master.Done {
		t.Fatal("master not done")
	}
}

func TestLockUnlockResumesNextPass(t *testing.T) {
	v := newTestVM(t, `
.scene "lock"
.routine master
	Wait 1
	Unlock 5
	End
.routine actor 0
	Lock 5
	value_Set $CARRY_GOLD, 0, 1
	End
`)
	// Frame 1: actor locks. Frame 3: master unlocks; the actor must
	// not run in the same frame.
	tick(t, v, 3)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 0 {
		t.Fatal("actor resumed in the unlocking frame")
	}
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 1 {
		t.Fatal("actor did not resume on the next pass")
	}
}

func TestUnlockWakesWaitersInTableOrder(t *testing.T) {
	v := newTestVM(t, `
.scene "order"
.routine master
	Unlock 5
	End
.routine actor 0
	Lock 5
	value_Add $CARRY_GOLD, 0, 1
	value_Copy $CARRY_GOLD, 0, $POSITION_X, 0
	End
.routine actor 1
	Lock 5
	value_Add $CARRY_GOLD, 0, 1
	value_Copy $CARRY_GOLD, 0, $POSITION_X, 1
	End
`)
	tick(t, v, 3)
	if got := readVar(t, v, "POSITION_X", 0); got != 1 {
		t.Fatalf("actor 0 woke at position %d, want 1", got)
	}
	if got := readVar(t, v, "POSITION_X", 1); got != 2 {
		t.Fatalf("actor 1 woke at position %d, want 2", got)
	}
}

func TestOpcodeBudgetStopsRunawayRoutine(t *testing.T) {
	v := newTestVM(t, `
.scene "loop"
.routine master
loop:
	value_Add $CARRY_GOLD, 0, 1
	Jump :loop
`)
	tick(t, v, 1)
	// Two opcodes per iteration within a 64-opcode budget.
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 32 {
		t.Fatalf("one frame executed %d iterations, want 32", got)
	}
	if v.Registry.Master.Done {
		t.Fatal("runaway routine marked done")
	}
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 64 {
		t.Fatalf("second frame total = %d, want 64", got)
	}
}

func TestCallCommonAndReturnValue(t *testing.T) {
	v := newTestVM(t, `
.scene "common"
.routine master
	CallCommon TALK_MAIN
	WaitExecute
	value_Copy $LOCAL0, 0, $CARRY_GOLD, 0
	End
.common TALK_MAIN
	value_Set $LOCAL0, 0, 21
	SetReturnValue 7
	Return
`)
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 21 {
		t.Fatalf("CARRY_GOLD = %d, want 21", got)
	}
	if v.Registry.Master.LastReturnValue != 7 {
		t.Fatalf("LastReturnValue = %d, want 7", v.Registry.Master.LastReturnValue)
	}
}

func TestBranchAndSwitch(t *testing.T) {
	v := newTestVM(t, `
.scene "branch"
.routine master
	value_Set $BASE_LEVEL, 0, 5
	Branch $BASE_LEVEL, :taken
	value_Set $CARRY_GOLD, 0, 111
	End
taken:
	Switch $BASE_LEVEL
	Case 4, :four
	CaseValue 3, 4, :above
	CaseDefault :other
four:
	value_Set $CARRY_GOLD, 0, 4
	End
above:
	value_Set $CARRY_GOLD, 0, 50
	End
other:
	value_Set $CARRY_GOLD, 0, 99
	End
`)
	tick(t, v, 1)
	// BASE_LEVEL is 5: not the 4 case, but >= 4.
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 50 {
		t.Fatalf("CARRY_GOLD = %d, want 50", got)
	}
}

func TestEntityMoveAndBlockingWait(t *testing.T) {
	v := newTestVM(t, `
.scene "move"
.routine actor 0
	actor_SetPosition 0, 0, 0
	actor_Move2Position 0, 4, 0, 1
	value_Set $CARRY_GOLD, 0, 1
	End
`)
	tick(t, v, 2)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 0 {
		t.Fatal("routine did not block on Move2Position")
	}
	tick(t, v, 4)
	if got := v.Registry.Actors[0].Position(); got != (Pos{X: 4, Y: 0}) {
		t.Fatalf("actor position = %+v", got)
	}
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 1 {
		t.Fatal("routine did not resume after arrival")
	}
}

func TestDisableDiscardsCallState(t *testing.T) {
	v := newTestVM(t, `
.scene "disable"
.routine master
	Wait 2
	actor_Disable 0
	End
.routine actor 0
	CallCommon TALK_MAIN
	End
.common TALK_MAIN
	Wait 60
	Return
`)
	tick(t, v, 1)
	if !v.Registry.Actors[0].Routine.hasSaved {
		t.Fatal("actor call not in flight")
	}
	tick(t, v, 3)
	if v.Registry.Enabled(op.RoutineActor, 0) {
		t.Fatal("actor still enabled")
	}
	r := &v.Registry.Actors[0].Routine
	if r.hasSaved || !r.Done {
		t.Fatalf("disable left call state: %+v", r)
	}
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	scene := mustScene(t, `
.scene "bad"
.routine master
	End
`)
	// Corrupt the opcode word.
	op.Endian.PutUint16(scene.Blob, 0x3FF)
	v := NewVM(&Config{OpcodeBudget: 8, MessageBuffer: 8, Seed: 1})
	if err := v.LoadScene(scene); err != nil {
		t.Fatalf("load scene: %s", err)
	}
	err := v.Tick()
	if err == nil || !strings.Contains(err.Error(), "unknown opcode") {
		t.Fatalf("expected unknown opcode error, got %v", err)
	}
}

func TestDefaultHandlerConsumesParameters(t *testing.T) {
	// item_Get has no native handler; the routine must keep running
	// with the program counter past the consumed parameters.
	v := newTestVM(t, `
.scene "default"
.routine master
	item_Get 3, 0
	value_Set $CARRY_GOLD, 0, 1
	End
`)
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 1 {
		t.Fatal("default handler derailed the routine")
	}
}

func TestPresentationOpcodesEmitMessages(t *testing.T) {
	v := newTestVM(t, `
.scene "talk"
.string hello "Hi there."
.routine master
	message_Talk @hello
	bgm_Play 3
	End
`)
	tick(t, v, 1)

	var talk, music bool
	for len(v.Messages) > 0 {
		msg := <-v.Messages
		switch msg.Type {
		case MsgTalk:
			talk = msg.Text == "Hi there."
		case MsgMusic:
			music = msg.Text == "bgm_Play"
		}
	}
	if !talk {
		t.Fatal("missing talk message with resolved text")
	}
	if !music {
		t.Fatal("missing music message")
	}
}

func TestProcessSpecialDispatch(t *testing.T) {
	v := newTestVM(t, `
.scene "special"
.routine master
	ProcessSpecial 4, 10, 20
	End
`)
	var gotParams []uint16
	if err := v.RegisterSpecialProcess(4, func(_ *VM, _ *Routine, params []uint16) (int64, error) {
		gotParams = params
		return 3, nil
	}); err != nil {
		t.Fatalf("register: %s", err)
	}
	tick(t, v, 1)
	if len(gotParams) != 2 || gotParams[0] != 10 || gotParams[1] != 20 {
		t.Fatalf("special process params = %v", gotParams)
	}
	if v.Registry.Master.LastReturnValue != 3 {
		t.Fatalf("LastReturnValue = %d, want 3", v.Registry.Master.LastReturnValue)
	}
}

func TestLocalVariablesArePerRoutine(t *testing.T) {
	v := newTestVM(t, `
.scene "locals"
.routine master
	value_Set $LOCAL0, 0, 7
	value_Copy $LOCAL0, 0, $POSITION_X, 0
	End
.routine actor 0
	value_Copy $LOCAL0, 0, $POSITION_X, 1
	End
`)
	tick(t, v, 1)
	if got := readVar(t, v, "POSITION_X", 0); got != 7 {
		t.Fatalf("master LOCAL0 = %d, want 7", got)
	}
	if got := readVar(t, v, "POSITION_X", 1); got != 0 {
		t.Fatalf("actor saw master's local: %d", got)
	}
}

func TestTriggerEvent(t *testing.T) {
	v := newTestVM(t, `
.scene "event"
.routine event 2 TALK_MAIN
.routine master
	Hold
	End
.common TALK_MAIN
	value_Set $CARRY_GOLD, 0, 5
	Return
`)
	tick(t, v, 1)
	if err := v.TriggerEvent(2); err != nil {
		t.Fatalf("trigger: %s", err)
	}
	// The master is held; release it so the coroutine runs.
	v.Registry.Master.Held = false
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 5 {
		t.Fatalf("CARRY_GOLD = %d, want 5", got)
	}

	if err := v.TriggerEvent(0); err == nil {
		t.Fatal("expected error for unarmed event slot")
	}
}

func TestTriggerEventAfterMasterEnds(t *testing.T) {
	// TALK_SUB follows the master in the blob; an ended master must
	// restart at the triggered coroutine, never resume past its End
	// into those bytes.
	v := newTestVM(t, `
.scene "revive"
.routine event 1 TALK_MAIN
.routine master
	value_Set $CARRY_GOLD, 0, 7
	End
.common TALK_SUB
	value_Set $CARRY_GOLD, 0, 99
	Return
.common TALK_MAIN
	value_Copy $CARRY_GOLD, 0, $POSITION_X, 0
	Return
`)
	tick(t, v, 1)
	if !v.Registry.Master.Done {
		t.Fatal("master not done")
	}
	if err := v.TriggerEvent(1); err != nil {
		t.Fatalf("trigger: %s", err)
	}
	tick(t, v, 2)
	if got := readVar(t, v, "POSITION_X", 0); got != 7 {
		t.Fatalf("coroutine did not run: POSITION_X = %d", got)
	}
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 7 {
		t.Fatalf("master fell through past the coroutine return: CARRY_GOLD = %d", got)
	}
	if !v.Registry.Master.Done {
		t.Fatal("master not done after coroutine return")
	}
}

func TestTriggerEventWithCallInFlight(t *testing.T) {
	v := newTestVM(t, `
.scene "busy"
.routine event 0 TALK_SUB
.routine master
	CallCommon TALK_MAIN
	End
.common TALK_MAIN
	Wait 30
	Return
.common TALK_SUB
	Return
`)
	tick(t, v, 1)
	if err := v.TriggerEvent(0); err == nil {
		t.Fatal("expected call overflow")
	}
	// The failed trigger leaves the in-flight call untouched.
	m := &v.Registry.Master
	if m.Done || !m.hasSaved {
		t.Fatalf("failed trigger corrupted master state: %+v", m)
	}
}

func TestRunWithoutScene(t *testing.T) {
	v := NewVM(nil)
	if err := v.Run(1); err != nil {
		t.Fatalf("run: %s", err)
	}
}

func TestUnlockMainDefersHoldRelease(t *testing.T) {
	v := newTestVM(t, `
.scene "hold"
.routine master
	Hold
	value_Set $CARRY_GOLD, 0, 1
	End
.routine actor 0
	Wait 1
	UnlockMain
	End
`)
	// Frame 1: master holds, actor waits. Frame 3: actor releases; the
	// release applies at the next frame boundary, same as Unlock.
	tick(t, v, 3)
	if !v.Registry.Master.Held {
		t.Fatal("hold cleared in the releasing frame")
	}
	tick(t, v, 1)
	if got := readVar(t, v, "CARRY_GOLD", 0); got != 1 {
		t.Fatalf("master did not resume: CARRY_GOLD = %d", got)
	}
	if v.Registry.Master.Held {
		t.Fatal("hold not released")
	}
}

func TestSceneRunsToCompletion(t *testing.T) {
	v := newTestVM(t, `
.scene "done"
.routine master
	Wait 2
	End
.routine actor 0
	Wait 4
	End
`)
	if v.Done() {
		t.Fatal("scene done before any frame")
	}
	if err := v.Run(100); err != nil {
		t.Fatalf("run: %s", err)
	}
	if !v.Done() {
		t.Fatal("scene not done after run")
	}
}
