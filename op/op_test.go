package op

import "testing"

func TestOpCodeTableIntegrity(t *testing.T) {
	if len(OpCodeTable) != 383 {
		t.Fatalf("expected 383 opcodes, got %d", len(OpCodeTable))
	}
	seenCodes := map[uint16]string{}
	seenNames := map[string]uint16{}
	for i, oc := range OpCodeTable {
		if int(oc.Code) != i {
			t.Errorf("opcode %q: code 0x%03x at index %d", oc.Name, oc.Code, i)
		}
		if prev, dup := seenCodes[oc.Code]; dup {
			t.Errorf("duplicate opcode id 0x%03x (%q and %q)", oc.Code, prev, oc.Name)
		}
		seenCodes[oc.Code] = oc.Name
		if _, dup := seenNames[oc.Name]; dup {
			t.Errorf("duplicate opcode name %q", oc.Name)
		}
		seenNames[oc.Name] = oc.Code
		if oc.Arity != Variadic && (oc.Arity < 0 || oc.Arity > MaxParams) {
			t.Errorf("opcode %q: arity %d out of range", oc.Name, oc.Arity)
		}
	}
}

func TestLookupOpCode(t *testing.T) {
	oc, ok := LookupOpCode(0x005)
	if !ok || oc.Name != "Call" {
		t.Fatalf("expected Call at 0x005, got %+v (ok=%v)", oc, ok)
	}
	if _, ok := LookupOpCode(0xFFF); ok {
		t.Fatal("expected lookup miss for 0xFFF")
	}
	byName, ok := OpCodeByName("CallCommon")
	if !ok || byName.Code != 0x006 {
		t.Fatalf("expected CallCommon at 0x006, got %+v (ok=%v)", byName, ok)
	}
}

func TestCommonRoutineTableIntegrity(t *testing.T) {
	if len(CommonRoutineTable) != 701 {
		t.Fatalf("expected 701 common routines, got %d", len(CommonRoutineTable))
	}
	seen := map[string]uint16{}
	for i, cr := range CommonRoutineTable {
		if int(cr.ID) != i {
			t.Errorf("common %q: id 0x%03x at index %d", cr.Name, cr.ID, i)
		}
		if _, dup := seen[cr.Name]; dup {
			t.Errorf("duplicate common routine name %q", cr.Name)
		}
		seen[cr.Name] = cr.ID
	}
	if _, ok := CommonRoutineByName("TALK_MAIN"); !ok {
		t.Fatal("expected TALK_MAIN in the catalog")
	}
}

func TestVariableDirectoryIntegrity(t *testing.T) {
	seen := map[uint16]string{}
	for _, v := range VariableTable {
		if prev, dup := seen[v.ID]; dup {
			t.Errorf("duplicate variable id 0x%03x (%q and %q)", v.ID, prev, v.Name)
		}
		seen[v.ID] = v.Name
		if v.Count < 1 {
			t.Errorf("variable %q: count %d", v.Name, v.Count)
		}
		if v.Type == VarSpecial || v.Type == VarNone || v.Local() {
			continue
		}
		var end int
		if v.Type == VarBit {
			end = int(v.Off) + (int(v.Shift)+int(v.Count)+7)/8
		} else {
			end = int(v.Off) + int(v.Count)*v.Type.Width()
		}
		if end > ValueStoreSize {
			t.Errorf("variable %q: extends to %d, past the %d-byte record", v.Name, end, ValueStoreSize)
		}
	}
}

// Non-bit variables must not share record bytes. Bit variables pack
// within their own byte ranges and are checked at bit granularity.
func TestVariableDirectoryNoOverlap(t *testing.T) {
	byteOwner := map[int]string{}
	bitOwner := map[int]string{}
	for _, v := range VariableTable {
		if v.Type == VarSpecial || v.Type == VarNone || v.Local() {
			continue
		}
		if v.Type == VarBit {
			for i := 0; i < int(v.Count); i++ {
				bit := int(v.Off)*8 + int(v.Shift) + i
				if prev, dup := bitOwner[bit]; dup {
					t.Fatalf("bit %d claimed by %q and %q", bit, prev, v.Name)
				}
				bitOwner[bit] = v.Name
			}
			continue
		}
		for i := 0; i < int(v.Count)*v.Type.Width(); i++ {
			off := int(v.Off) + i
			if prev, dup := byteOwner[off]; dup {
				t.Fatalf("record byte %d claimed by %q and %q", off, prev, v.Name)
			}
			byteOwner[off] = v.Name
		}
	}
	// Bits must not land inside bytes owned by sized variables.
	for bit, name := range bitOwner {
		if prev, dup := byteOwner[bit/8]; dup {
			t.Fatalf("bit variable %q overlaps byte variable %q at offset %d", name, prev, bit/8)
		}
	}
}

func TestLocalVariables(t *testing.T) {
	for i := uint16(0); i < LocalVarCount; i++ {
		v, ok := LookupVariable(LocalVarBase + i)
		if !ok {
			t.Fatalf("missing local variable 0x%03x", LocalVarBase+i)
		}
		if !v.Local() {
			t.Errorf("variable %q at 0x%03x not marked local", v.Name, v.ID)
		}
	}
	v, ok := VariableByName("VERSION")
	if !ok {
		t.Fatal("missing VERSION variable")
	}
	if v.Default != 1 {
		t.Errorf("VERSION default = %d, want 1", v.Default)
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionCount != 8 {
		t.Fatalf("expected 8 directions, got %d", DirectionCount)
	}
	seen := map[string]bool{}
	for d := DirDown; d < DirectionCount; d++ {
		s := d.String()
		if s == "" || seen[s] {
			t.Errorf("direction %d: bad or duplicate name %q", d, s)
		}
		seen[s] = true
	}
}

func TestRoutineKindCapacity(t *testing.T) {
	total := 0
	for rk := RoutineActor; rk < RoutineKindCount; rk++ {
		if rk.Capacity() <= 0 {
			t.Errorf("kind %s: capacity %d", rk, rk.Capacity())
		}
		total += rk.Capacity()
	}
	if want := MaxActors + MaxObjects + MaxPerformers + MaxEvents; total != want {
		t.Errorf("entity capacity sum = %d, want %d", total, want)
	}
}
