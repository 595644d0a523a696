package vm

import (
	"errors"
	"testing"

	"github.com/azurelit/groundvm/op"
)

func TestRoutineCallReturn(t *testing.T) {
	blob := make([]byte, 64)
	r := &Routine{Kind: op.RoutineActor, Slot: 3}
	r.Reset(blob, nil, 4)

	st := r.state()
	st.PC = 10
	st.OpAddr = 8
	st.ParamAddr = 10
	st.ParamCnt = 1

	if err := r.call(32); err != nil {
		t.Fatalf("call: %s", err)
	}
	if got := r.state().PC; got != 32 {
		t.Fatalf("PC after call = %d, want 32", got)
	}

	if !r.ret() {
		t.Fatal("ret with saved state returned false")
	}
	st = r.state()
	if st.PC != 10 || st.OpAddr != 8 || st.ParamAddr != 10 || st.ParamCnt != 1 {
		t.Fatalf("restored state = %+v", *st)
	}

	// Top-level return: nothing saved anymore.
	if r.ret() {
		t.Fatal("ret without saved state returned true")
	}
}

func TestRoutineCallOverflow(t *testing.T) {
	blob := make([]byte, 64)
	r := &Routine{Kind: op.RoutineMaster}
	r.Reset(blob, nil, 0)

	if err := r.call(8); err != nil {
		t.Fatalf("first call: %s", err)
	}
	err := r.call(16)
	if !errors.Is(err, ErrCallOverflow) {
		t.Fatalf("expected ErrCallOverflow, got %v", err)
	}
}

func TestRoutineCallOutsideBlob(t *testing.T) {
	r := &Routine{Kind: op.RoutineMaster}
	r.Reset(make([]byte, 8), nil, 0)
	if err := r.call(8); err == nil {
		t.Fatal("expected out-of-blob call error")
	}
}

func TestRoutineResetClearsState(t *testing.T) {
	r := &Routine{Kind: op.RoutineActor}
	r.Reset(make([]byte, 16), nil, 0)
	if err := r.call(8); err != nil {
		t.Fatalf("call: %s", err)
	}
	r.LockID = 3
	r.Timer = 7
	r.Held = true
	r.LastReturnValue = 9
	r.Locals[2] = 5

	r.Reset(make([]byte, 16), nil, 4)
	if r.hasSaved || r.LockID != -1 || r.Timer != 0 || r.Held || r.Done {
		t.Fatalf("reset left state behind: %+v", r)
	}
	if r.LastReturnValue != 0 || r.Locals[2] != 0 {
		t.Fatalf("reset left values behind: %+v", r)
	}
	if r.state().PC != 4 {
		t.Fatalf("PC = %d, want 4", r.state().PC)
	}
}

func TestRoutineRunnable(t *testing.T) {
	r := &Routine{Kind: op.RoutineActor}
	if r.Runnable() {
		t.Fatal("unbound routine reported runnable")
	}
	r.Reset(make([]byte, 8), nil, 0)
	if !r.Runnable() {
		t.Fatal("fresh routine not runnable")
	}
	r.LockID = 2
	if r.Runnable() {
		t.Fatal("locked routine reported runnable")
	}
	r.LockID = -1
	r.Held = true
	if r.Runnable() {
		t.Fatal("held routine reported runnable")
	}
	r.Held = false
	r.Done = true
	if r.Runnable() {
		t.Fatal("done routine reported runnable")
	}
}

func TestLockManagerTableOrderWakeup(t *testing.T) {
	lm := NewLockManager()
	r0 := &Routine{Kind: op.RoutineActor, Slot: 0, LockID: -1}
	r1 := &Routine{Kind: op.RoutineActor, Slot: 1, LockID: -1}
	r2 := &Routine{Kind: op.RoutineActor, Slot: 2, LockID: -1}

	lm.Lock(r0, 5)
	lm.Lock(r1, 5)
	lm.Lock(r2, 9)

	// No wake before an unlock is handled.
	lm.HandleUnlocks([]*Routine{r0, r1, r2})
	if r0.LockID != 5 || r1.LockID != 5 || r2.LockID != 9 {
		t.Fatal("routines woken without unlock")
	}

	lm.Unlock(5)
	lm.HandleUnlocks([]*Routine{r0, r1, r2})
	if r0.LockID != -1 || r1.LockID != -1 {
		t.Fatal("waiters on id 5 not woken")
	}
	if r2.LockID != 9 {
		t.Fatal("waiter on id 9 woken by unlock(5)")
	}

	// Pending set is consumed: no spurious wake next frame.
	lm.Lock(r0, 5)
	lm.HandleUnlocks([]*Routine{r0, r1, r2})
	if r0.LockID != 5 {
		t.Fatal("unlock applied twice")
	}
}
