package vm

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"

	"github.com/azurelit/groundvm/op"
)

// Config carries the tunables of the engine. Zero values are never
// used directly; NewConfig supplies the defaults and LoadConfig
// overlays an ini file on top of them.
type Config struct {
	// OpcodeBudget caps opcodes executed per routine per frame.
	OpcodeBudget int `ini:"opcode_budget"`
	// MessageBuffer sizes the message channel.
	MessageBuffer int `ini:"message_buffer"`
	// Seed feeds the deterministic random source used by the
	// WaitRandom and value_Random opcodes.
	Seed int64 `ini:"seed"`
	// Debug forwards opcodes without a native handler to the message
	// stream instead of dropping them silently.
	Debug bool `ini:"debug"`
	// StrictOpcodes turns an opcode without a native handler into a
	// fatal error. Off by default: most presentation opcodes are
	// front-end concerns.
	StrictOpcodes bool `ini:"strict_opcodes"`
	// FrameDuration paces real-time front ends. The headless runner
	// ignores it.
	FrameDuration time.Duration `ini:"-"`
	// FrameMillis is the on-disk form of FrameDuration.
	FrameMillis int `ini:"frame_millis"`
}

func NewConfig() *Config {
	return &Config{
		OpcodeBudget:  op.DefaultOpcodeBudget,
		MessageBuffer: 256,
		Seed:          time.Now().UnixNano(),
		FrameMillis:   16,
		FrameDuration: 16 * time.Millisecond,
	}
}

// LoadConfig reads path and overlays its [engine] section onto the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	f, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.Section("engine").MapTo(cfg); err != nil {
		return nil, fmt.Errorf("map config %s: %w", path, err)
	}
	if cfg.OpcodeBudget <= 0 {
		return nil, fmt.Errorf("config %s: opcode_budget must be positive", path)
	}
	if cfg.MessageBuffer <= 0 {
		return nil, fmt.Errorf("config %s: message_buffer must be positive", path)
	}
	cfg.FrameDuration = time.Duration(cfg.FrameMillis) * time.Millisecond
	return cfg, nil
}
