// Package save persists ground-mode session state. The variable record
// is carried verbatim inside a small CBOR envelope; the encoding is
// canonical so identical sessions produce identical files.
package save

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("save: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// envelopeVersion tracks the envelope layout, independent of the
// record's own VERSION variable.
const envelopeVersion = 1

// Envelope is the on-disk save structure.
type Envelope struct {
	Version int    `cbor:"version"`
	Scene   string `cbor:"scene"`
	Frame   uint64 `cbor:"frame"`
	Record  []byte `cbor:"record"`
}

// Snapshot captures the VM's persistent state: the packed variable
// record plus enough context to report where the save was taken.
func Snapshot(v *vm.VM) *Envelope {
	env := &Envelope{
		Version: envelopeVersion,
		Frame:   v.Frame,
		Record:  v.Values.Bytes(),
	}
	if v.Scene != nil {
		env.Scene = v.Scene.Name
	}
	return env
}

// Marshal serializes an envelope to canonical CBOR bytes.
func Marshal(env *Envelope) ([]byte, error) {
	return cborEncMode.Marshal(env)
}

// Unmarshal deserializes and validates an envelope.
func Unmarshal(data []byte) (*Envelope, error) {
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("save: unmarshal envelope: %w", err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("save: unsupported envelope version %d", env.Version)
	}
	if len(env.Record) != op.ValueStoreSize {
		return nil, fmt.Errorf("save: record size %d, want %d", len(env.Record), op.ValueStoreSize)
	}
	if err := checkRecordVersion(env.Record); err != nil {
		return nil, err
	}
	return &env, nil
}

// checkRecordVersion compares the VERSION variable stored inside the
// record against the engine's expected value. A mismatch means the
// record was written by an incompatible engine revision; restoring it
// would misinterpret the packed layout.
func checkRecordVersion(record []byte) error {
	desc, ok := op.VariableByName("VERSION")
	if !ok {
		return fmt.Errorf("save: VERSION missing from variable directory")
	}
	vs := vm.NewValueStore()
	if err := vs.SetBytes(record); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	got, err := vs.Read(desc.ID, 0)
	if err != nil {
		return fmt.Errorf("save: read record version: %w", err)
	}
	if got != desc.Default {
		return fmt.Errorf("save: record version %d, want %d", got, desc.Default)
	}
	return nil
}

// Restore loads an envelope's record into the VM's value store.
func Restore(v *vm.VM, env *Envelope) error {
	return v.Values.SetBytes(env.Record)
}

// WriteFile snapshots the VM and writes the save to path.
func WriteFile(v *vm.VM, path string) error {
	data, err := Marshal(Snapshot(v))
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads the save at path into the VM's value store.
func ReadFile(v *vm.VM, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("save: read %s: %w", path, err)
	}
	env, err := Unmarshal(data)
	if err != nil {
		return err
	}
	return Restore(v, env)
}
