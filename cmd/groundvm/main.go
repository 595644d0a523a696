// Command groundvm runs a scene headless and prints the message stream.
package main

import (
	"fmt"
	"log"

	"github.com/azurelit/groundvm/cli"
	"github.com/azurelit/groundvm/luabind"
	"github.com/azurelit/groundvm/save"
	"github.com/azurelit/groundvm/vm"
)

func run(opts *cli.Options) error {
	v := vm.NewVM(opts.Config)

	if opts.LuaPath != "" {
		b := luabind.New(v)
		defer b.Close()
		if err := b.DoFile(opts.LuaPath); err != nil {
			return err
		}
	}
	if opts.SavePath != "" {
		if err := save.ReadFile(v, opts.SavePath); err != nil {
			// A missing save is a fresh game, not a failure.
			log.Printf("No usable save at %q, starting fresh: %s.", opts.SavePath, err)
		}
	}

	if err := v.LoadScene(opts.Scene); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range v.Messages {
			if msg.Routine != nil {
				fmt.Printf("[%6d] %-10s %-10s %s %v\n", v.Frame, msg.Routine, msg.Type, msg.Text, msg.Params)
			} else {
				fmt.Printf("[%6d] %-10s %-10s %s\n", v.Frame, "engine", msg.Type, msg.Text)
			}
		}
	}()

	if err := v.Run(opts.MaxFrames); err != nil {
		return err
	}
	close(v.Messages)
	<-done

	if opts.SavePath != "" {
		if err := save.WriteFile(v, opts.SavePath); err != nil {
			return err
		}
	}
	if opts.StatsPath != "" {
		if err := save.UpdateStats(v, opts.StatsPath); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	opts, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("Failed to run scene %q: %s.", opts.SceneName, err)
	}
}
