package luabind

import (
	"strings"
	"testing"

	"github.com/azurelit/groundvm/asm"
	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

func testBinder(t *testing.T) (*vm.VM, *Binder) {
	t.Helper()
	v := vm.NewVM(&vm.Config{OpcodeBudget: op.DefaultOpcodeBudget, MessageBuffer: 8, Seed: 1})
	b := New(v)
	t.Cleanup(b.Close)
	return v, b
}

func TestVariableAccess(t *testing.T) {
	v, b := testBinder(t)

	if err := b.DoString(`
		setVar("CARRY_GOLD", 250)
		setVar("POSITION_X", -4, 1)
		setString("TEAM_NAME", "Poppies")
	`); err != nil {
		t.Fatalf("do: %s", err)
	}

	gold, ok := op.VariableByName("CARRY_GOLD")
	if !ok {
		t.Fatal("missing CARRY_GOLD")
	}
	if got, _ := v.Values.Read(gold.ID, 0); got != 250 {
		t.Fatalf("CARRY_GOLD = %d, want 250", got)
	}
	posX, _ := op.VariableByName("POSITION_X")
	if got, _ := v.Values.Read(posX.ID, 1); got != -4 {
		t.Fatalf("POSITION_X[1] = %d, want -4", got)
	}

	// Read back through the Lua side.
	if err := b.DoString(`
		if getVar("CARRY_GOLD") ~= 250 then error("bad gold") end
		if getString("TEAM_NAME") ~= "Poppies" then error("bad name") end
	`); err != nil {
		t.Fatalf("readback: %s", err)
	}
}

func TestUnknownVariableRaises(t *testing.T) {
	_, b := testBinder(t)
	err := b.DoString(`getVar("NO_SUCH_VAR")`)
	if err == nil || !strings.Contains(err.Error(), "NO_SUCH_VAR") {
		t.Fatalf("expected unknown-variable error, got %v", err)
	}
}

func TestLuaSpecialProcess(t *testing.T) {
	v, b := testBinder(t)
	if err := b.DoString(`
		registerSpecial(5, function(a, b)
			return a + b
		end)
	`); err != nil {
		t.Fatalf("register: %s", err)
	}

	_, scene, err := asm.Compile("lua.gs", `
.scene "lua"
.routine master
	ProcessSpecial 5, 2, 3
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	if err := v.LoadScene(scene); err != nil {
		t.Fatalf("load: %s", err)
	}
	if err := v.Tick(); err != nil {
		t.Fatalf("tick: %s", err)
	}
	if v.Registry.Master.LastReturnValue != 5 {
		t.Fatalf("LastReturnValue = %d, want 5", v.Registry.Master.LastReturnValue)
	}
}

func TestLuaSpecialVar(t *testing.T) {
	v, b := testBinder(t)
	if err := b.DoString(`
		weather = 3
		registerSpecialVar("MEMBER_SUM",
			function() return weather end,
			function(val) weather = val end)
	`); err != nil {
		t.Fatalf("register: %s", err)
	}

	desc, ok := op.VariableByName("MEMBER_SUM")
	if !ok {
		t.Fatal("missing MEMBER_SUM")
	}
	if got, err := v.Values.Read(desc.ID, 0); err != nil || got != 3 {
		t.Fatalf("MEMBER_SUM = %d (%v), want 3", got, err)
	}
	if err := v.Values.Write(desc.ID, 0, 8); err != nil {
		t.Fatalf("write: %s", err)
	}
	if got, _ := v.Values.Read(desc.ID, 0); got != 8 {
		t.Fatalf("MEMBER_SUM after write = %d, want 8", got)
	}
}

func TestLuaUnlock(t *testing.T) {
	v, b := testBinder(t)
	_, scene, err := asm.Compile("unlock.gs", `
.scene "unlock"
.routine actor 0
	Lock 7
	value_Set $CARRY_GOLD, 0, 1
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	if err := v.LoadScene(scene); err != nil {
		t.Fatalf("load: %s", err)
	}
	if err := v.Tick(); err != nil {
		t.Fatalf("tick: %s", err)
	}
	if err := b.DoString(`unlock(7)`); err != nil {
		t.Fatalf("unlock: %s", err)
	}
	if err := v.Tick(); err != nil {
		t.Fatalf("tick: %s", err)
	}
	gold, _ := op.VariableByName("CARRY_GOLD")
	if got, _ := v.Values.Read(gold.ID, 0); got != 1 {
		t.Fatalf("CARRY_GOLD = %d, want 1", got)
	}
}

func TestDoFileMissing(t *testing.T) {
	_, b := testBinder(t)
	if err := b.DoFile("/no/such/script.lua"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
