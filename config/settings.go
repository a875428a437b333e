// Package config defines the planner's build settings and their YAML
// persistence, grounded on go-detour's sample/solomesh.Settings and its
// cmd/recast/cmd config file handling.
package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

// Settings holds every tunable parameter generateCourseForField accepts,
// plus the planner-wide constants (spec §6 Constants). The constant fields
// (WaypointSpacing through AngularWrapTolerance) are saved and loaded with
// the rest, but they are not passed to the planner: it always uses its
// own built-in values, so changing them has no effect on a course.
type Settings struct {
	ImplementWidth    float64 `yaml:"implementWidth"`
	NHeadlandPasses   int     `yaml:"nHeadlandPasses"`
	HeadlandClockwise bool    `yaml:"headlandClockwise"`

	HeadlandStartX float64 `yaml:"headlandStartX"`
	HeadlandStartY float64 `yaml:"headlandStartY"`

	OverlapPercent                 float64 `yaml:"overlapPercent"`
	UseBoundaryAsFirstHeadlandPass bool    `yaml:"useBoundaryAsFirstHeadlandPass"`
	NTracksToSkip                  int     `yaml:"nTracksToSkip"`
	ExtendTracks                   float64 `yaml:"extendTracks"`
	MinVertexDistance              float64 `yaml:"minVertexDistance"`
	AngleThreshold                 float64 `yaml:"angleThreshold"`
	DoSmooth                       bool    `yaml:"doSmooth"`

	WaypointSpacing        float64 `yaml:"waypointSpacing"`
	MaxLinkSearchDistance  float64 `yaml:"maxLinkSearchDistance"`
	DirectionBinWidthDeg   float64 `yaml:"directionBinWidthDeg"`
	AngleScanStepDeg       float64 `yaml:"angleScanStepDeg"`
	OffsetRecursionCap     int     `yaml:"offsetRecursionCap"`
	AngularWrapTolerance   float64 `yaml:"angularWrapTolerance"`
}

// NewDefaultSettings returns a Settings filled with the spec's §6
// constants and reasonable field-specific defaults.
func NewDefaultSettings() Settings {
	return Settings{
		ImplementWidth:    6.0,
		NHeadlandPasses:   2,
		HeadlandClockwise: true,

		HeadlandStartX: 0,
		HeadlandStartY: 0,

		OverlapPercent:                 0,
		UseBoundaryAsFirstHeadlandPass: false,
		NTracksToSkip:                  0,
		ExtendTracks:                   0,
		MinVertexDistance:              0.5,
		AngleThreshold:                 math.Pi / 6,
		DoSmooth:                       true,

		WaypointSpacing:       5.0,
		MaxLinkSearchDistance: 30.0,
		DirectionBinWidthDeg:  10.0,
		AngleScanStepDeg:      2.0,
		OffsetRecursionCap:    50,
		AngularWrapTolerance:  math.Pi,
	}
}

// Load reads and parses a YAML settings file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s := NewDefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes s to path in YAML form, creating or truncating the file.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
