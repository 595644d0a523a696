// Package cli loads the shared command-line surface of the groundvm
// binaries: engine config, scene input and optional Lua bindings.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/azurelit/groundvm/asm"
	"github.com/azurelit/groundvm/asm/parser"
	"github.com/azurelit/groundvm/assets"
	"github.com/azurelit/groundvm/vm"
)

// Options is the parsed command line.
type Options struct {
	Config    *vm.Config
	Scene     *parser.Scene
	SceneName string
	LuaPath   string
	SavePath  string
	StatsPath string
	MaxFrames int
}

// LoadScene reads path and returns the decoded scene, compiling first
// when the input is assembly source. The embedded demo scene is used
// for the reserved name "demo".
func LoadScene(path string) (*parser.Scene, error) {
	if path == "demo" {
		_, scene, err := asm.Compile("demo.gs", assets.DemoScene)
		if err != nil {
			return nil, fmt.Errorf("compile embedded demo: %w", err)
		}
		return scene, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	if strings.HasSuffix(path, ".gs") {
		_, scene, err := asm.Compile(path, string(data))
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", path, err)
		}
		return scene, nil
	}
	scene, err := parser.DecodeScene(data)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return scene, nil
}

// ParseConfig parses flags and loads the scene named by the first
// positional argument (.gs source or compiled container, or "demo").
func ParseConfig() (*Options, error) {
	configPath := flag.String("config", "", "engine config file (ini)")
	luaPath := flag.String("lua", "", "lua bindings script")
	savePath := flag.String("save", "", "save file to load before and write after the run")
	statsPath := flag.String("stats", "", "stats sidecar json to update after the run")
	maxFrames := flag.Int("frames", 0, "stop after this many frames (0 = run to scene end)")
	seed := flag.Int64("seed", 0, "override random seed (0 = from config)")
	debug := flag.Bool("debug", false, "report unhandled opcodes on the message stream")
	flag.Parse()

	scenePath := flag.Arg(0)
	if scenePath == "" {
		return nil, fmt.Errorf("usage: %s [flags] <scene.gs|scene.gsb|demo>", os.Args[0])
	}

	cfg := vm.NewConfig()
	if *configPath != "" {
		c, err := vm.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *debug {
		cfg.Debug = true
	}

	scene, err := LoadScene(scenePath)
	if err != nil {
		return nil, err
	}

	return &Options{
		Config:    cfg,
		Scene:     scene,
		SceneName: scenePath,
		LuaPath:   *luaPath,
		SavePath:  *savePath,
		StatsPath: *statsPath,
		MaxFrames: *maxFrames,
	}, nil
}
