package save

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

func testVM(t *testing.T) *vm.VM {
	t.Helper()
	return vm.NewVM(&vm.Config{OpcodeBudget: op.DefaultOpcodeBudget, MessageBuffer: 8, Seed: 1})
}

func write(t *testing.T, v *vm.VM, name string, index int, value int64) {
	t.Helper()
	desc, ok := op.VariableByName(name)
	if !ok {
		t.Fatalf("missing variable %q", name)
	}
	if err := v.Values.Write(desc.ID, index, value); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}
}

func read(t *testing.T, v *vm.VM, name string, index int) int64 {
	t.Helper()
	desc, ok := op.VariableByName(name)
	if !ok {
		t.Fatalf("missing variable %q", name)
	}
	val, err := v.Values.Read(desc.ID, index)
	if err != nil {
		t.Fatalf("read %s: %s", name, err)
	}
	return val
}

func TestEnvelopeRoundTrip(t *testing.T) {
	v := testVM(t)
	write(t, v, "CARRY_GOLD", 0, 777)
	write(t, v, "BASE_LEVEL", 0, 12)

	data, err := Marshal(Snapshot(v))
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	env, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %s", err)
	}

	other := testVM(t)
	if err := Restore(other, env); err != nil {
		t.Fatalf("restore: %s", err)
	}
	if got := read(t, other, "CARRY_GOLD", 0); got != 777 {
		t.Fatalf("restored CARRY_GOLD = %d, want 777", got)
	}
	if got := read(t, other, "BASE_LEVEL", 0); got != 12 {
		t.Fatalf("restored BASE_LEVEL = %d, want 12", got)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	v := testVM(t)
	write(t, v, "CARRY_GOLD", 0, 42)

	a, err := Marshal(Snapshot(v))
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	b, err := Marshal(Snapshot(v))
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if string(a) != string(b) {
		t.Fatal("canonical encoding produced different bytes")
	}
}

func TestUnmarshalRejectsBadEnvelopes(t *testing.T) {
	v := testVM(t)

	env := Snapshot(v)
	env.Version = 99
	data, err := Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if _, err := Unmarshal(data); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version error, got %v", err)
	}

	env = Snapshot(v)
	env.Record = env.Record[:100]
	data, err = Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if _, err := Unmarshal(data); err == nil || !strings.Contains(err.Error(), "record size") {
		t.Fatalf("expected record size error, got %v", err)
	}

	if _, err := Unmarshal([]byte("not cbor")); err == nil {
		t.Fatal("expected error for junk input")
	}
}

func TestUnmarshalRejectsRecordVersionMismatch(t *testing.T) {
	// The record's own VERSION variable must match the engine's,
	// independent of the envelope layout version.
	v := testVM(t)
	write(t, v, "VERSION", 0, 2)

	data, err := Marshal(Snapshot(v))
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	if _, err := Unmarshal(data); err == nil || !strings.Contains(err.Error(), "record version") {
		t.Fatalf("expected record version error, got %v", err)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.sav")

	v := testVM(t)
	write(t, v, "BANK_GOLD", 0, 9000)
	if err := WriteFile(v, path); err != nil {
		t.Fatalf("write file: %s", err)
	}

	other := testVM(t)
	if err := ReadFile(other, path); err != nil {
		t.Fatalf("read file: %s", err)
	}
	if got := read(t, other, "BANK_GOLD", 0); got != 9000 {
		t.Fatalf("BANK_GOLD = %d, want 9000", got)
	}

	if err := ReadFile(other, filepath.Join(t.TempDir(), "missing.sav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUpdateStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	v := testVM(t)
	write(t, v, "PLAY_TIME", 0, 90)
	write(t, v, "CARRY_GOLD", 0, 321)

	if err := UpdateStats(v, path); err != nil {
		t.Fatalf("update: %s", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stats: %s", err)
	}
	if got := gjson.GetBytes(data, "playtime").Float(); got != 1.5 {
		t.Errorf("playtime = %v, want 1.5", got)
	}
	if got := gjson.GetBytes(data, "scenes_played").Int(); got != 1 {
		t.Errorf("scenes_played = %d, want 1", got)
	}
	if got := gjson.GetBytes(data, "gold.carry").Int(); got != 321 {
		t.Errorf("gold.carry = %d, want 321", got)
	}

	// A second update increments the play counter and keeps foreign keys.
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stats: %s", err)
	}
	data = append(data[:len(data)-1], []byte(`,"external":"kept"}`)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write stats: %s", err)
	}
	if err := UpdateStats(v, path); err != nil {
		t.Fatalf("second update: %s", err)
	}
	data, _ = os.ReadFile(path)
	if got := gjson.GetBytes(data, "scenes_played").Int(); got != 2 {
		t.Errorf("scenes_played after second update = %d, want 2", got)
	}
	if got := gjson.GetBytes(data, "external").String(); got != "kept" {
		t.Errorf("external key lost: %q", got)
	}
}

func TestTeamNames(t *testing.T) {
	v := testVM(t)
	for _, elem := range []struct{ name, value string }{
		{"TEAM_NAME", "Poppies"},
		{"HERO_NAME", "Saru"},
		{"PARTNER_NAME", "Kine"},
	} {
		desc, ok := op.VariableByName(elem.name)
		if !ok {
			t.Fatalf("missing variable %q", elem.name)
		}
		if err := v.Values.WriteString(desc.ID, elem.value); err != nil {
			t.Fatalf("write %s: %s", elem.name, err)
		}
	}
	team, hero, partner := TeamNames(v)
	if team != "Poppies" || hero != "Saru" || partner != "Kine" {
		t.Fatalf("names = %q %q %q", team, hero, partner)
	}
}
