// Package asm assembles scene-script source into compiled scene
// containers consumable by the vm package.
package asm

import (
	"fmt"

	"github.com/azurelit/groundvm/asm/parser"
)

// Compile parses and encodes the input, returning both the container
// bytes and the in-memory Scene.
func Compile(inputName, inputData string) ([]byte, *parser.Scene, error) {
	p := parser.NewParser(inputName, inputData)
	if err := p.Parse(); err != nil {
		return nil, nil, fmt.Errorf("failed to parse: %w", err)
	}

	scene, err := parser.NewProgram(p).Encode()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode scene: %w", err)
	}

	buf, err := scene.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal scene: %w", err)
	}
	return buf, scene, nil
}
