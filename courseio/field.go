// Package courseio handles the planner's only two I/O boundaries:
// loading a field boundary and writing out the generated course. Both are
// explicitly external to the core per spec §6 ("Deserialization" and
// "Course serialization"); this package is the stand-in for the host's
// loadFieldFromPickle/writeCourseToFile.
package courseio

import (
	"fmt"
	"os"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"gopkg.in/yaml.v2"
)

// FieldInput is everything a host can supply about a field ahead of
// planning: the boundary is required, the rest is optional metadata a
// caller may use to prefill Settings.
type FieldInput struct {
	Boundary        []geo.Point `yaml:"boundary"`
	NHeadlandPasses int         `yaml:"nHeadlandPasses,omitempty"`
	Width           float64     `yaml:"width,omitempty"`
	IsClockwise     *bool       `yaml:"isClockwise,omitempty"`
}

// LoadField reads a field fixture from a YAML file. This plays the role
// the spec's loadFieldFromPickle(name) plays against the original's
// pickled Lua tables: only the boundary and the optional metadata fields
// are consumed.
func LoadField(path string) (*FieldInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("courseio: read field file: %w", err)
	}
	var f FieldInput
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("courseio: parse field file: %w", err)
	}
	if len(f.Boundary) < 3 {
		return nil, fmt.Errorf("courseio: field boundary needs at least 3 points, got %d", len(f.Boundary))
	}
	return &f, nil
}

// SaveField writes a FieldInput to path in the same YAML form LoadField
// reads, mainly useful for tests and for round-tripping a generated
// fixture.
func SaveField(path string, f *FieldInput) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
