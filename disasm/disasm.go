// Package disasm turns a compiled scene container back into assembly
// source accepted by the asm package.
package disasm

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/azurelit/groundvm/asm/parser"
	"github.com/azurelit/groundvm/op"
)

// jumpParam reports whether param i of oc carries a blob byte offset.
// Those become label references in the listing.
func jumpParam(oc op.OpCode, i int) bool {
	switch oc.Name {
	case "Call", "Jump", "CaseDefault":
		return i == 0
	case "Branch", "BranchPerformance", "BranchVariation", "Case":
		return i == 1
	case "BranchBit", "BranchSum", "CaseValue", "CaseVariable", "CaseScenario",
		"scenario_BranchMain", "scenario_BranchSub", "scenario_BranchSide":
		return i == 2
	case "BranchValue", "BranchVariable":
		return i == 3
	}
	return false
}

// Disasm decodes a compiled scene container and renders assembly
// source. The output round-trips through asm.Compile back to an
// equivalent container.
func Disasm(data []byte) (string, error) {
	scene, err := parser.DecodeScene(data)
	if err != nil {
		return "", fmt.Errorf("decode scene: %w", err)
	}
	return Listing(scene)
}

// Listing renders an already decoded scene.
func Listing(scene *parser.Scene) (string, error) {
	// First pass over the blob: every jump target gets a label.
	labels := map[uint32]string{}
	for idx := 0; idx < len(scene.Blob); {
		dec, size, err := parser.DecodeNextInstruction(scene.Blob[idx:])
		if err != nil {
			return "", fmt.Errorf("offset 0x%04x: %w", idx, err)
		}
		for i, param := range dec.Params {
			if jumpParam(dec.OpCode, i) {
				labels[uint32(param)] = fmt.Sprintf("loc_%04x", param)
			}
		}
		idx += size
	}

	// The .routine and .common directives bind to the offset they sit
	// at, so they are emitted inline where their code starts.
	routinesAt := map[uint32][]parser.RoutineEntry{}
	var events []parser.RoutineEntry
	for _, entry := range scene.Routines {
		if entry.Kind == op.RoutineEvent {
			events = append(events, entry)
			continue
		}
		routinesAt[entry.Offset] = append(routinesAt[entry.Offset], entry)
	}
	commonsAt := map[uint32][]uint16{}
	commonIDs := make([]int, 0, len(scene.Commons))
	for id := range scene.Commons {
		commonIDs = append(commonIDs, int(id))
	}
	sort.Ints(commonIDs)
	for _, id := range commonIDs {
		off := scene.Commons[uint16(id)]
		commonsAt[off] = append(commonsAt[off], uint16(id))
	}

	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, ".scene %s\n", strconv.Quote(scene.Name))
	for _, entry := range events {
		cr, _ := op.LookupCommonRoutine(uint16(entry.Offset))
		fmt.Fprintf(buf, ".routine event %d %s\n", entry.Slot, cr.Name)
	}
	for i, s := range scene.Strings {
		fmt.Fprintf(buf, ".string str_%d %s\n", i, strconv.Quote(s))
	}

	emitMarks := func(offset uint32) {
		for _, entry := range routinesAt[offset] {
			if entry.Kind == op.RoutineMaster {
				fmt.Fprintf(buf, "\n.routine master\n")
			} else {
				fmt.Fprintf(buf, "\n.routine %s %d\n", entry.Kind, entry.Slot)
			}
		}
		for _, id := range commonsAt[offset] {
			cr, _ := op.LookupCommonRoutine(id)
			fmt.Fprintf(buf, "\n.common %s\n", cr.Name)
		}
		if name, ok := labels[offset]; ok {
			fmt.Fprintf(buf, "%s:\n", name)
		}
	}

	for idx := 0; idx < len(scene.Blob); {
		emitMarks(uint32(idx))
		dec, size, err := parser.DecodeNextInstruction(scene.Blob[idx:])
		if err != nil {
			return "", fmt.Errorf("offset 0x%04x: %w", idx, err)
		}
		fmt.Fprintf(buf, "\t%s", dec.OpCode.Name)
		for i, param := range dec.Params {
			sep := " "
			if i > 0 {
				sep = ", "
			}
			if jumpParam(dec.OpCode, i) {
				fmt.Fprintf(buf, "%s:%s", sep, labels[uint32(param)])
			} else {
				fmt.Fprintf(buf, "%s%d", sep, param)
			}
		}
		buf.WriteByte('\n')
		idx += size
	}
	return buf.String(), nil
}
