package asm

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/azurelit/groundvm/asm/parser"
	"github.com/azurelit/groundvm/assets"
	"github.com/azurelit/groundvm/op"
)

func TestCompileRoundTrip(t *testing.T) {
	src := `
.scene "roundtrip"
.string done "All done."
.routine event 1 TALK_MAIN
.routine master
	Wait 2
	CallCommon TALK_MAIN
	End
.routine actor 0
	actor_SetPosition 0, 3, 4
	End
.common TALK_MAIN
	message_Notice @done
	Return
`
	buf, scene, err := Compile("roundtrip.gs", src)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	if scene.Name != "roundtrip" {
		t.Fatalf("scene name %q", scene.Name)
	}

	decoded, err := parser.DecodeScene(buf)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if decoded.Name != scene.Name {
		t.Errorf("name %q != %q", decoded.Name, scene.Name)
	}
	if !reflect.DeepEqual(decoded.Routines, scene.Routines) {
		t.Errorf("routines %v != %v", decoded.Routines, scene.Routines)
	}
	if !reflect.DeepEqual(decoded.Commons, scene.Commons) {
		t.Errorf("commons %v != %v", decoded.Commons, scene.Commons)
	}
	if !reflect.DeepEqual(decoded.Strings, scene.Strings) {
		t.Errorf("strings %v != %v", decoded.Strings, scene.Strings)
	}
	if !bytes.Equal(decoded.Blob, scene.Blob) {
		t.Error("blob mismatch after decode")
	}
}

func TestEventBindingHoldsCoroutineID(t *testing.T) {
	_, scene, err := Compile("event.gs", `
.scene "event"
.routine event 3 TALK_MAIN
.routine event 4 42
.routine master
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	cr, ok := op.CommonRoutineByName("TALK_MAIN")
	if !ok {
		t.Fatal("TALK_MAIN missing from catalog")
	}
	byName, ok := scene.RoutineFor(op.RoutineEvent, 3)
	if !ok || byName.Offset != uint32(cr.ID) {
		t.Fatalf("event 3 offset = %d, want coroutine id %d", byName.Offset, cr.ID)
	}
	byID, ok := scene.RoutineFor(op.RoutineEvent, 4)
	if !ok || byID.Offset != 42 {
		t.Fatalf("event 4 offset = %d, want 42", byID.Offset)
	}
}

func TestForwardLabelResolution(t *testing.T) {
	_, scene, err := Compile("fwd.gs", `
.scene "fwd"
.routine master
	Jump :skip
	End
skip:
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	dec, _, err := parser.DecodeNextInstruction(scene.Blob)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if dec.OpCode.Name != "Jump" {
		t.Fatalf("first opcode %q", dec.OpCode.Name)
	}
	// Jump (4 bytes) + End (2 bytes) puts the label at offset 6.
	if dec.Params[0] != 6 {
		t.Fatalf("forward label resolved to %d, want 6", dec.Params[0])
	}
}

func TestVariadicEncoding(t *testing.T) {
	_, scene, err := Compile("variadic.gs", `
.scene "variadic"
.routine master
	debug_Print 1, 2, 3
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	dec, size, err := parser.DecodeNextInstruction(scene.Blob)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !reflect.DeepEqual(dec.Params, []uint16{1, 2, 3}) {
		t.Fatalf("params %v", dec.Params)
	}
	// Opcode word, three parameters, terminator.
	if size != 5*op.WordSize {
		t.Fatalf("size %d, want %d", size, 5*op.WordSize)
	}
}

func TestNegativeImmediateEncoding(t *testing.T) {
	_, scene, err := Compile("neg.gs", `
.scene "neg"
.routine master
	value_Set $POSITION_X, 0, -5
	End
`)
	if err != nil {
		t.Fatalf("compile: %s", err)
	}
	dec, _, err := parser.DecodeNextInstruction(scene.Blob)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if dec.Params[2] != 0xFFFB {
		t.Fatalf("immediate -5 encoded as 0x%04x", dec.Params[2])
	}
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "unknown instruction",
			src:     ".routine master\n\tFrobnicate\n",
			wantErr: "unknown instruction",
		},
		{
			name:    "arity mismatch",
			src:     ".routine master\n\tWait\n",
			wantErr: "expected 1 parameters",
		},
		{
			name:    "unknown variable",
			src:     ".routine master\n\tvalue_Set $NO_SUCH_VAR, 0, 1\n",
			wantErr: "unknown variable",
		},
		{
			name:    "unknown label",
			src:     ".routine master\n\tJump :nowhere\n\tEnd\n",
			wantErr: "unknown label",
		},
		{
			name:    "duplicate label",
			src:     ".routine master\nhere:\nhere:\n\tEnd\n",
			wantErr: "duplicate label",
		},
		{
			name:    "duplicate routine binding",
			src:     ".routine actor 0\n\tEnd\n.routine actor 0\n\tEnd\n",
			wantErr: "duplicate routine binding",
		},
		{
			name:    "no routine binding",
			src:     ".scene \"empty\"\n",
			wantErr: "no routine binding",
		},
		{
			name:    "slot out of range",
			src:     ".routine actor 24\n\tEnd\n",
			wantErr: "out of range",
		},
		{
			name:    "unknown event coroutine",
			src:     ".routine event 0 NO_SUCH_ROUTINE\n.routine master\n\tEnd\n",
			wantErr: "unknown coroutine",
		},
		{
			name:    "unknown common routine",
			src:     ".common NO_SUCH_ROUTINE\n.routine master\n\tEnd\n",
			wantErr: "unknown common routine",
		},
		{
			name:    "duplicate string",
			src:     ".string a \"one\"\n.string a \"two\"\n.routine master\n\tEnd\n",
			wantErr: "duplicate string",
		},
		{
			name:    "trailing comma",
			src:     ".routine master\n\tWait 1,\n",
			wantErr: "unexpected comma",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Compile(tc.name+".gs", tc.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestCompileDemoScene(t *testing.T) {
	buf, scene, err := Compile("demo.gs", assets.DemoScene)
	if err != nil {
		t.Fatalf("compile demo: %s", err)
	}
	if _, ok := scene.RoutineFor(op.RoutineMaster, 0); !ok {
		t.Fatal("demo has no master routine")
	}
	if len(scene.Strings) == 0 {
		t.Fatal("demo has no strings")
	}
	if _, err := parser.DecodeScene(buf); err != nil {
		t.Fatalf("decode demo: %s", err)
	}
}
