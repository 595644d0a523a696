package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/azurelit/groundvm/disasm"
)

func main() {
	log.SetFlags(0)
	output := flag.String("o", "", "output file, default to stdout")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		log.Fatalf("usage: %s [-o out.gs] <scene.gsb>", os.Args[0])
	}

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("Failed to read %q: %s.", input, err)
	}
	listing, err := disasm.Disasm(data)
	if err != nil {
		log.Fatalf("Failed to disassemble %q: %s.", input, err)
	}
	if *output == "" {
		fmt.Print(listing)
		return
	}
	if err := os.WriteFile(*output, []byte(listing), 0o644); err != nil {
		log.Fatalf("Failed to write %q: %s.", *output, err)
	}
}
