// Package loaders reads bench description files into the shapes the optics
// engine consumes.
package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opticslab/paraxial/pkg/optics"
)

// Bench is an ordered optical chain plus the rays to trace through it, as
// described by a YAML bench file:
//
//	components:
//	  - type: free_space
//	    params: {length: 100}
//	  - type: positive_lens
//	    params: {focal_length: 50}
//	rays:
//	  - {height: 10, angle: 0}
type Bench struct {
	Components []optics.ComponentSpec `yaml:"components"`
	Rays       []optics.Ray           `yaml:"rays"`
}

// LoadBench reads and parses a bench file. Component order is preserved as
// written; unknown kinds and missing parameters pass through untouched for
// the engine's permissive defaults to handle. Absent sections decode to nil
// slices, which the engine treats as empty.
func LoadBench(filename string) (*Bench, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open bench file: %w", err)
	}

	var bench Bench
	if err := yaml.Unmarshal(data, &bench); err != nil {
		return nil, fmt.Errorf("failed to parse bench file %s: %w", filename, err)
	}

	return &bench, nil
}
