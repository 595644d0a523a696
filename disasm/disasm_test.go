package disasm

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/azurelit/groundvm/asm"
	"github.com/azurelit/groundvm/op"
)

const sampleSource = `
.scene "sample"
.string done "All done."
.routine event 2 TALK_MAIN
.routine master
	Wait 4
	Branch $BASE_LEVEL, :skip
	CallCommon TALK_MAIN
skip:
	End
.routine actor 0
	actor_SetPosition 0, 3, 4
	actor_Turn2Direction 0, 2
	End
.common TALK_MAIN
	message_Notice 0
	SetReturnValue 1
	Return
`

func TestListingRoundTrip(t *testing.T) {
	buf, scene, err := asm.Compile("sample.gs", sampleSource)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}

	listing, err := Disasm(buf)
	if err != nil {
		t.Fatalf("disasm: %s", err)
	}

	_, back, err := asm.Compile("listing.gs", listing)
	if err != nil {
		t.Fatalf("recompile listing: %s\n%s", err, listing)
	}

	if back.Name != scene.Name {
		t.Errorf("name %q != %q", back.Name, scene.Name)
	}
	if !bytes.Equal(back.Blob, scene.Blob) {
		t.Error("blob changed across the round trip")
	}
	if !reflect.DeepEqual(back.Commons, scene.Commons) {
		t.Errorf("commons %v != %v", back.Commons, scene.Commons)
	}
	if !reflect.DeepEqual(back.Strings, scene.Strings) {
		t.Errorf("strings %v != %v", back.Strings, scene.Strings)
	}
	// Directory order may differ in the listing; compare bindings.
	if len(back.Routines) != len(scene.Routines) {
		t.Fatalf("routine count %d != %d", len(back.Routines), len(scene.Routines))
	}
	for _, entry := range scene.Routines {
		got, ok := back.RoutineFor(entry.Kind, int(entry.Slot))
		if !ok || got.Offset != entry.Offset {
			t.Errorf("binding %s %d: got %+v, want offset %d", entry.Kind, entry.Slot, got, entry.Offset)
		}
	}
}

func TestListingMarks(t *testing.T) {
	buf, _, err := asm.Compile("sample.gs", sampleSource)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	listing, err := Disasm(buf)
	if err != nil {
		t.Fatalf("disasm: %s", err)
	}

	for _, want := range []string{
		`.scene "sample"`,
		".routine event 2 TALK_MAIN",
		`.string str_0 "All done."`,
		".routine master",
		".routine actor 0",
		".common TALK_MAIN",
	} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q:\n%s", want, listing)
		}
	}
	// The branch target renders as a label, not a raw offset.
	if !strings.Contains(listing, "loc_") {
		t.Errorf("listing has no labels:\n%s", listing)
	}
}

func TestDisasmRejectsCorruptBlob(t *testing.T) {
	buf, scene, err := asm.Compile("bad.gs", `
.scene "bad"
.routine master
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	// Clobber the End opcode with an out-of-catalog id.
	op.Endian.PutUint16(buf[len(buf)-len(scene.Blob):], 0x3FF)
	if _, err := Disasm(buf); err == nil {
		t.Fatal("expected decode error for corrupt blob")
	}
}
