package vm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/azurelit/groundvm/op"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %s", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// A missing file yields the built-in defaults.
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if cfg.OpcodeBudget != op.DefaultOpcodeBudget {
		t.Errorf("OpcodeBudget = %d, want %d", cfg.OpcodeBudget, op.DefaultOpcodeBudget)
	}
	if cfg.MessageBuffer != 256 {
		t.Errorf("MessageBuffer = %d, want 256", cfg.MessageBuffer)
	}
	if cfg.FrameDuration != 16*time.Millisecond {
		t.Errorf("FrameDuration = %s, want 16ms", cfg.FrameDuration)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
[engine]
opcode_budget = 128
message_buffer = 32
seed = 7
debug = true
strict_opcodes = true
frame_millis = 33
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if cfg.OpcodeBudget != 128 || cfg.MessageBuffer != 32 || cfg.Seed != 7 {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if !cfg.Debug || !cfg.StrictOpcodes {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.FrameDuration != 33*time.Millisecond {
		t.Errorf("FrameDuration = %s, want 33ms", cfg.FrameDuration)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	path := writeConfig(t, "[engine]\nopcode_budget = 0\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for zero opcode budget")
	}
	path = writeConfig(t, "[engine]\nmessage_buffer = -1\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for negative message buffer")
	}
}
