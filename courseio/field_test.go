package courseio

import (
	"path/filepath"
	"testing"

	"github.com/CourseplayPathEditor/course-generator/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadFieldRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yml")

	cw := true
	f := &FieldInput{
		Boundary:        []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		NHeadlandPasses: 3,
		Width:           6,
		IsClockwise:     &cw,
	}
	require.NoError(t, SaveField(path, f))

	loaded, err := LoadField(path)
	require.NoError(t, err)
	assert.Equal(t, f.Boundary, loaded.Boundary)
	assert.Equal(t, 3, loaded.NHeadlandPasses)
	require.NotNil(t, loaded.IsClockwise)
	assert.True(t, *loaded.IsClockwise)
}

func TestLoadFieldRejectsTooFewBoundaryPoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, SaveField(path, &FieldInput{Boundary: []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}))

	_, err := LoadField(path)
	assert.Error(t, err)
}

func TestLoadFieldMissingFile(t *testing.T) {
	_, err := LoadField(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
