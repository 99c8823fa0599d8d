package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSW2D(t *testing.T) {
	var (
		dir = t.TempDir()
		err error
	)
	fileInput := []byte(`
Title: channel
NX: 40
NY: 4
DX: 0.25
FinalTime: 4.
InitType: DamBreak
HLeft: 2
HRight: 1
DamPosition: 5
BCs:
  west: Outflow
  east: Outflow
  south: Wall
  north: Wall
OutputFormat: binary
OutputDir: ` + dir + `
PlotSteps: 1000
`)
	icFile := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(icFile, fileInput, 0644))
	msw := &ModelSW2D{ICFile: icFile, FinalTime: 0.2, PlotSteps: 4}
	ip, err := processInputSW2D(msw)
	require.NoError(t, err)
	// Command line values override the file
	assert.Equal(t, 0.2, ip.FinalTime)
	assert.Equal(t, 4, ip.PlotSteps)
	assert.Equal(t, "Outflow", ip.BCs["west"])
	require.NoError(t, RunSW2D(msw, ip))
	files, err := filepath.Glob(filepath.Join(dir, "channel_*.bin"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
	{
		_, err = processInputSW2D(&ModelSW2D{})
		assert.Error(t, err)
		_, err = processInputSW2D(&ModelSW2D{ICFile: filepath.Join(dir, "missing.yaml")})
		assert.Error(t, err)
	}
}
