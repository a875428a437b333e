package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultSettingsMatchesSpecConstants(t *testing.T) {
	s := NewDefaultSettings()
	assert.Equal(t, 5.0, s.WaypointSpacing)
	assert.Equal(t, 30.0, s.MaxLinkSearchDistance)
	assert.Equal(t, 10.0, s.DirectionBinWidthDeg)
	assert.Equal(t, 2.0, s.AngleScanStepDeg)
	assert.Equal(t, 50, s.OffsetRecursionCap)
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.yml")

	s := NewDefaultSettings()
	s.ImplementWidth = 12.5
	s.NTracksToSkip = 2

	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.ImplementWidth, loaded.ImplementWidth)
	assert.Equal(t, s.NTracksToSkip, loaded.NTracksToSkip)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadFillsUnspecifiedFieldsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("implementWidth: 8\n"), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, loaded.ImplementWidth)
	assert.Equal(t, 50, loaded.OffsetRecursionCap)
}
