package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParametersSW2D(t *testing.T) {
	fileInput := []byte(`
Title: Channel
NX: 200
NY: 10
DX: 0.05
FinalTime: 0.5
InitType: DamBreak
HLeft: 2
HRight: 1
DamPosition: 5
BlocksX: 2
OutputFormat: VTK
BCs:
  left: Inflow
  right: Outflow
Inflow:
  left:
    h: 2.
    hu: 1.5
    Amplitude: 0.1
    period: 2
`)
	var ip InputParametersSW2D
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Channel", ip.Title)
	assert.Equal(t, 200, ip.NX)
	assert.Equal(t, 0.05, ip.DX)
	// Defaults
	assert.Equal(t, 0.05, ip.DY)
	assert.Equal(t, 9.81, ip.Gravity)
	assert.Equal(t, 0.1, ip.DryTolerance)
	assert.Equal(t, 1.e-7, ip.ZeroTolerance)
	assert.Equal(t, 1, ip.BlocksY)
	assert.Equal(t, ".", ip.OutputDir)
	assert.Equal(t, "vtk", ip.OutputFormat)
	assert.Equal(t, "Inflow", ip.BCs["left"])
	assert.Equal(t, 1.5, ip.InflowParameter("left", "hu"))
	assert.Equal(t, 0.1, ip.InflowParameter("left", "amplitude"))
	assert.Equal(t, 0., ip.InflowParameter("left", "hv"))
	assert.Equal(t, 0., ip.InflowParameter("right", "h"))
	ip.Print()
}

func TestInputParametersSW2DErrors(t *testing.T) {
	var (
		base = "NX: 10\nNY: 10\nFinalTime: 1\n"
	)
	for _, extra := range []string{
		"BlocksX: 11\n",
		"DX: -1\n",
		"OutputFormat: png\n",
		"Inflow:\n  left:\n    depth: 1\n",
	} {
		var ip InputParametersSW2D
		assert.Error(t, ip.Parse([]byte(base+extra)), extra)
	}
	{
		var ip InputParametersSW2D
		assert.Error(t, ip.Parse([]byte("NX: 10\nNY: 10\n")))
	}
	{
		var ip InputParametersSW2D
		assert.Error(t, ip.Parse([]byte("NX: [1]\n")))
	}
}
