package parser

import (
	"bytes"
	"fmt"

	"github.com/azurelit/groundvm/op"
)

// Scene is one compiled scene container: a shared bytecode blob, the
// routine directory binding blob offsets to entity slots, the coroutine
// offset table and the string pool.
type Scene struct {
	Name     string
	Routines []RoutineEntry
	Commons  map[uint16]uint32
	Strings  []string
	Blob     []byte
}

// RoutineFor returns the directory entry bound to (kind, slot).
func (s *Scene) RoutineFor(kind op.RoutineKind, slot int) (RoutineEntry, bool) {
	for _, elem := range s.Routines {
		if elem.Kind == kind && int(elem.Slot) == slot {
			return elem, true
		}
	}
	return RoutineEntry{}, false
}

// String returns the pool entry at idx, empty when out of range.
func (s *Scene) String(idx int) string {
	if idx < 0 || idx >= len(s.Strings) {
		return ""
	}
	return s.Strings[idx]
}

// MarshalBinary encodes the container.
func (s *Scene) MarshalBinary() ([]byte, error) {
	if len(s.Name) > op.SceneNameLength {
		return nil, fmt.Errorf("scene name %q too long", s.Name)
	}
	if len(s.Blob) > MaxBlobSize {
		return nil, fmt.Errorf("blob exceeds %d bytes", MaxBlobSize)
	}

	buf := bytes.NewBuffer(nil)
	tmp := make([]byte, 4)

	op.Endian.PutUint32(tmp, op.SceneMagic)
	buf.Write(tmp)
	op.Endian.PutUint16(tmp, op.SceneFormatVersion)
	buf.Write(tmp[:2])

	name := make([]byte, op.SceneNameLength+1)
	copy(name, s.Name)
	buf.Write(name)

	op.Endian.PutUint16(tmp, uint16(len(s.Routines)))
	buf.Write(tmp[:2])
	op.Endian.PutUint16(tmp, uint16(len(s.Commons)))
	buf.Write(tmp[:2])
	op.Endian.PutUint16(tmp, uint16(len(s.Strings)))
	buf.Write(tmp[:2])
	op.Endian.PutUint32(tmp, uint32(len(s.Blob)))
	buf.Write(tmp)

	for _, elem := range s.Routines {
		buf.WriteByte(byte(elem.Kind))
		buf.WriteByte(elem.Slot)
		op.Endian.PutUint32(tmp, elem.Offset)
		buf.Write(tmp)
	}

	// The coroutine table is written in id order to keep the output
	// deterministic.
	for id := range uint16(len(op.CommonRoutineTable)) {
		off, ok := s.Commons[id]
		if !ok {
			continue
		}
		op.Endian.PutUint16(tmp, id)
		buf.Write(tmp[:2])
		op.Endian.PutUint32(tmp, off)
		buf.Write(tmp)
	}

	for _, elem := range s.Strings {
		buf.WriteString(elem)
		buf.WriteByte(0)
	}

	buf.Write(s.Blob)
	return buf.Bytes(), nil
}

// DecodeScene decodes a compiled scene container.
func DecodeScene(data []byte) (*Scene, error) {
	if len(data) < op.HeaderStructSize() {
		return nil, fmt.Errorf("truncated scene header")
	}
	idx := 0
	if magic := op.Endian.Uint32(data); magic != op.SceneMagic {
		return nil, fmt.Errorf("bad magic 0x%08x", magic)
	}
	idx += 4
	if v := op.Endian.Uint16(data[idx:]); v != op.SceneFormatVersion {
		return nil, fmt.Errorf("unsupported scene format version %d", v)
	}
	idx += 2

	name := data[idx : idx+op.SceneNameLength+1]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	idx += op.SceneNameLength + 1

	routineCount := int(op.Endian.Uint16(data[idx:]))
	commonCount := int(op.Endian.Uint16(data[idx+2:]))
	stringCount := int(op.Endian.Uint16(data[idx+4:]))
	blobSize := int(op.Endian.Uint32(data[idx+6:]))
	idx += 10

	s := &Scene{
		Name:    string(name),
		Commons: make(map[uint16]uint32, commonCount),
	}

	for range routineCount {
		if idx+op.RoutineEntrySize > len(data) {
			return nil, fmt.Errorf("truncated routine directory")
		}
		kind := op.RoutineKind(data[idx])
		if kind >= op.RoutineKindCount {
			return nil, fmt.Errorf("invalid routine kind %d", data[idx])
		}
		slot := data[idx+1]
		if int(slot) >= kind.Capacity() {
			return nil, fmt.Errorf("routine slot %d out of range for %s", slot, kind)
		}
		s.Routines = append(s.Routines, RoutineEntry{
			Kind:   kind,
			Slot:   slot,
			Offset: op.Endian.Uint32(data[idx+2:]),
		})
		idx += op.RoutineEntrySize
	}

	for range commonCount {
		if idx+op.CommonEntrySize > len(data) {
			return nil, fmt.Errorf("truncated coroutine table")
		}
		id := op.Endian.Uint16(data[idx:])
		if _, ok := op.LookupCommonRoutine(id); !ok {
			return nil, fmt.Errorf("unknown common routine id 0x%03x", id)
		}
		s.Commons[id] = op.Endian.Uint32(data[idx+2:])
		idx += op.CommonEntrySize
	}

	for range stringCount {
		end := bytes.IndexByte(data[idx:], 0)
		if end < 0 {
			return nil, fmt.Errorf("unterminated string pool entry")
		}
		s.Strings = append(s.Strings, string(data[idx:idx+end]))
		idx += end + 1
	}

	if idx+blobSize > len(data) {
		return nil, fmt.Errorf("truncated blob: want %d bytes, have %d", blobSize, len(data)-idx)
	}
	s.Blob = data[idx : idx+blobSize]

	for _, elem := range s.Routines {
		if elem.Kind == op.RoutineEvent {
			// Event entries hold a coroutine id, not a code offset.
			if _, ok := op.LookupCommonRoutine(uint16(elem.Offset)); !ok {
				return nil, fmt.Errorf("event %d references unknown coroutine 0x%03x", elem.Slot, elem.Offset)
			}
			continue
		}
		if int(elem.Offset) >= len(s.Blob) && len(s.Blob) > 0 {
			return nil, fmt.Errorf("routine %s %d offset 0x%x outside blob", elem.Kind, elem.Slot, elem.Offset)
		}
	}
	return s, nil
}
