package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maemo32/tomasulo-sim/internal/isa"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hardware.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile_FullTableOverride(t *testing.T) {
	path := writeConfig(t, `
[mul]
count = 4
cycles = 20
`)
	hc, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, hc[isa.StationMul].Count)
	assert.Equal(t, 20, hc[isa.StationMul].Cycles)
	// Every op-type the file omits keeps its Defaults() value.
	assert.Equal(t, Defaults()[isa.StationLoad], hc[isa.StationLoad])
}

func TestLoadFile_PartialTableMergesOntoDefault(t *testing.T) {
	path := writeConfig(t, `
[load]
count = 3
`)
	hc, err := LoadFile(path)
	require.NoError(t, err)

	// count overridden, cycles left at its Defaults() value — not
	// zeroed by the omitted field.
	assert.Equal(t, 3, hc[isa.StationLoad].Count)
	assert.Equal(t, Defaults()[isa.StationLoad].Cycles, hc[isa.StationLoad].Cycles)
}

func TestLoadFile_MissingFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}
