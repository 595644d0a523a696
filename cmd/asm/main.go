package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/azurelit/groundvm/asm"
)

func run(input, output string, prettyPrint bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	buf, scene, err := asm.Compile(input, string(data))
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}
	if prettyPrint {
		fmt.Printf("scene %q: %d routines, %d coroutines, %d strings, %d blob bytes\n",
			scene.Name, len(scene.Routines), len(scene.Commons), len(scene.Strings), len(scene.Blob))
		return nil
	}

	if err := os.WriteFile(output, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	output := flag.String("o", "", "output file, default to <input>.gsb")
	prettyPrint := flag.Bool("pretty", false, "print a summary, do not output the compiled file")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		log.Fatalf("usage: %s [-o out.gsb] [-pretty] <scene.gs>", os.Args[0])
	}
	if *output == "" {
		*output = strings.TrimSuffix(input, ".gs") + ".gsb"
	}
	if err := run(input, *output, *prettyPrint); err != nil {
		log.Fatalf("Failed to assemble %q: %s.", input, err)
	}
}
