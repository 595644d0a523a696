package vm

import (
	"errors"
	"testing"

	"github.com/azurelit/groundvm/op"
)

func varID(t *testing.T, name string) uint16 {
	t.Helper()
	v, ok := op.VariableByName(name)
	if !ok {
		t.Fatalf("missing variable %q", name)
	}
	return v.ID
}

func TestValueStoreDefaults(t *testing.T) {
	vs := NewValueStore()

	got, err := vs.Read(varID(t, "VERSION"), 0)
	if err != nil {
		t.Fatalf("read VERSION: %s", err)
	}
	if got != 1 {
		t.Fatalf("fresh VERSION = %d, want 1", got)
	}

	for _, v := range op.VariableTable {
		if v.Type == op.VarSpecial || v.Type == op.VarNone || v.Local() || v.Name == "VERSION" {
			continue
		}
		got, err := vs.Read(v.ID, 0)
		if err != nil {
			t.Fatalf("read %s: %s", v.Name, err)
		}
		if got != 0 {
			t.Errorf("fresh %s = %d, want 0", v.Name, got)
		}
	}
}

func TestValueStoreWidths(t *testing.T) {
	vs := NewValueStore()

	// Signed 32-bit keeps large values.
	gold := varID(t, "CARRY_GOLD")
	if err := vs.Write(gold, 0, 99999); err != nil {
		t.Fatalf("write: %s", err)
	}
	if got, _ := vs.Read(gold, 0); got != 99999 {
		t.Fatalf("CARRY_GOLD = %d, want 99999", got)
	}

	// Signed 16-bit sign-extends on the way out.
	posX := varID(t, "POSITION_X")
	if err := vs.Write(posX, 1, -123); err != nil {
		t.Fatalf("write: %s", err)
	}
	if got, _ := vs.Read(posX, 1); got != -123 {
		t.Fatalf("POSITION_X[1] = %d, want -123", got)
	}

	// Writes truncate to the declared width.
	if err := vs.Write(posX, 0, 0x1FFFF); err != nil {
		t.Fatalf("write: %s", err)
	}
	if got, _ := vs.Read(posX, 0); got != -1 {
		t.Fatalf("POSITION_X[0] = %d, want -1 after truncation", got)
	}
}

func TestValueStoreBits(t *testing.T) {
	vs := NewValueStore()
	flags := varID(t, "SCENARIO_MAIN_BIT_FLAG")

	for _, idx := range []int{0, 1, 7, 8, 63, 127} {
		if err := vs.Write(flags, idx, 1); err != nil {
			t.Fatalf("set bit %d: %s", idx, err)
		}
	}
	if got, _ := vs.Read(flags, 7); got != 1 {
		t.Fatal("bit 7 not set")
	}
	if got, _ := vs.Read(flags, 9); got != 0 {
		t.Fatal("bit 9 unexpectedly set")
	}
	if err := vs.Write(flags, 7, 0); err != nil {
		t.Fatalf("clear bit: %s", err)
	}
	if got, _ := vs.Read(flags, 7); got != 0 {
		t.Fatal("bit 7 still set after clear")
	}
	// Neighbors survive the clear.
	if got, _ := vs.Read(flags, 8); got != 1 {
		t.Fatal("bit 8 lost")
	}

	if _, err := vs.Read(flags, 128); err == nil {
		t.Fatal("expected out-of-range index error")
	}
}

func TestValueStoreStrings(t *testing.T) {
	vs := NewValueStore()
	team := varID(t, "TEAM_NAME")

	if err := vs.WriteString(team, "Poppies"); err != nil {
		t.Fatalf("write string: %s", err)
	}
	got, err := vs.ReadString(team)
	if err != nil {
		t.Fatalf("read string: %s", err)
	}
	if got != "Poppies" {
		t.Fatalf("TEAM_NAME = %q", got)
	}

	// Over-long names truncate to the declared count.
	if err := vs.WriteString(team, "An Overly Long Team Name"); err != nil {
		t.Fatalf("write string: %s", err)
	}
	got, _ = vs.ReadString(team)
	if len(got) != 10 {
		t.Fatalf("TEAM_NAME length = %d, want 10", len(got))
	}
}

func TestValueStoreSpecials(t *testing.T) {
	vs := NewValueStore()
	friends := varID(t, "FRIEND_SUM")

	// Without a handler, access is rejected.
	if _, err := vs.Read(friends, 0); !errors.Is(err, ErrSpecialVariable) {
		t.Fatalf("expected ErrSpecialVariable, got %v", err)
	}

	n := int64(42)
	if err := vs.RegisterSpecial(friends, SpecialVar{Read: func() int64 { return n }}); err != nil {
		t.Fatalf("register: %s", err)
	}
	if got, err := vs.Read(friends, 0); err != nil || got != 42 {
		t.Fatalf("FRIEND_SUM = %d (%v), want 42", got, err)
	}
	// Still no write handler.
	if err := vs.Write(friends, 0, 1); !errors.Is(err, ErrSpecialVariable) {
		t.Fatalf("expected ErrSpecialVariable on write, got %v", err)
	}

	// Backed variables cannot be registered as special.
	if err := vs.RegisterSpecial(varID(t, "CARRY_GOLD"), SpecialVar{}); err == nil {
		t.Fatal("expected error registering special on a backed variable")
	}
}

func TestValueStoreLocalsRejected(t *testing.T) {
	vs := NewValueStore()
	if _, err := vs.Read(op.LocalVarBase, 0); !errors.Is(err, ErrLocalVariable) {
		t.Fatalf("expected ErrLocalVariable, got %v", err)
	}
	if err := vs.Write(op.LocalVarBase+1, 0, 3); !errors.Is(err, ErrLocalVariable) {
		t.Fatalf("expected ErrLocalVariable, got %v", err)
	}
}

func TestValueStoreUnknownID(t *testing.T) {
	vs := NewValueStore()
	if _, err := vs.Read(0x3FF, 0); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestValueStoreBytesRoundTrip(t *testing.T) {
	vs := NewValueStore()
	if err := vs.Write(varID(t, "BANK_GOLD"), 0, 1234); err != nil {
		t.Fatalf("write: %s", err)
	}
	snapshot := vs.Bytes()

	other := NewValueStore()
	if err := other.SetBytes(snapshot); err != nil {
		t.Fatalf("set bytes: %s", err)
	}
	if got, _ := other.Read(varID(t, "BANK_GOLD"), 0); got != 1234 {
		t.Fatalf("restored BANK_GOLD = %d, want 1234", got)
	}

	if err := other.SetBytes(snapshot[:100]); err == nil {
		t.Fatal("expected size mismatch error")
	}
}
