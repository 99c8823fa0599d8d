package ShallowWater2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/riemann"
	"github.com/notargets/goswe/types"
)

func parseInput(t *testing.T, input string) (ip *InputParameters.InputParametersSW2D) {
	ip = &InputParameters.InputParametersSW2D{}
	require.NoError(t, ip.Parse([]byte(input)))
	return
}

func TestSW2DSolve(t *testing.T) {
	ip := parseInput(t, `
Title: Radial
NX: 30
NY: 20
FinalTime: 2.5
InitType: RadialDamBreak
HLeft: 2
HRight: 1
DamPosition: 4
CenterX: 15
CenterY: 10
BlocksX: 3
BlocksY: 2
PlotSteps: 5
BCs:
  left: wall
  right: wall
  bottom: wall
  top: wall
`)
	c, err := NewSW2D(ip, 2, true)
	require.NoError(t, err)
	var outputs []*Snapshot
	c.Output = func(s *Snapshot) error {
		outputs = append(outputs, s)
		return nil
	}
	require.NoError(t, c.Solve())
	assert.InDelta(t, 2.5, c.Group.Time(), 1.e-6)
	require.NotEmpty(t, outputs)
	last := outputs[len(outputs)-1]
	assert.Equal(t, c.Steps, last.Step)
	assert.InDelta(t, c.Mass0, last.Mass(), 1.e-5*c.Mass0)
	for _, s := range outputs[:len(outputs)-1] {
		assert.Equal(t, 0, s.Step%5)
	}
}

func TestSW2DMaxIterations(t *testing.T) {
	ip := parseInput(t, `
NX: 10
NY: 10
MaxIterations: 7
InitType: dambreak
HLeft: 1
HRight: 0.5
DamPosition: 5
`)
	c, err := NewSW2D(ip, 1, false)
	require.NoError(t, err)
	require.NoError(t, c.Solve())
	assert.Equal(t, 7, c.Steps)
	assert.Greater(t, c.Group.Time(), 0.)
	{ // A still, dry domain has no step limit and no final time
		ip := parseInput(t, "NX: 4\nNY: 4\nMaxIterations: 3\nInitType: still\n")
		c, err := NewSW2D(ip, 1, false)
		require.NoError(t, err)
		assert.Error(t, c.Solve())
	}
}

func TestSW2DInflow(t *testing.T) {
	ip := parseInput(t, `
NX: 20
NY: 4
FinalTime: 1
InitType: still
HLeft: 1
BCs:
  left: inflow
  right: outflow
  bottom: wall
  top: wall
Inflow:
  Left:
    h: 1.5
    hu: 1
`)
	c, err := NewSW2D(ip, 1, false)
	require.NoError(t, err)
	assert.Equal(t, types.Inflow, c.Group.Blocks[0].Boundaries[types.BndLeft])
	assert.Equal(t, float32(1.5), c.Group.Blocks[0].H.Get(0, 1))
	require.NoError(t, c.Solve())
	assert.Greater(t, c.Snapshot().Mass(), c.Mass0)
	{
		ip := parseInput(t, "NX: 4\nNY: 4\nFinalTime: 1\nBCs:\n  top: inflow\n")
		_, err := NewSW2D(ip, 1, false)
		assert.Error(t, err)
	}
	{
		ip := parseInput(t, "NX: 4\nNY: 4\nFinalTime: 1\nInflow:\n  top:\n    h: 1\n")
		_, err := NewSW2D(ip, 1, false)
		assert.Error(t, err)
	}
	{
		ip := parseInput(t, "NX: 4\nNY: 4\nFinalTime: 1\nInitType: flood\n")
		_, err := NewSW2D(ip, 1, false)
		assert.Error(t, err)
	}
}

func TestSW2DOuterConnect(t *testing.T) {
	for _, edge := range []string{"left", "East", "bottom", "north"} {
		ip := parseInput(t, "NX: 4\nNY: 4\nFinalTime: 1\nBlocksX: 2\nBCs:\n  "+edge+": connect\n")
		_, err := NewSW2D(ip, 1, false)
		assert.Error(t, err, edge)
	}
	assert.Panics(t, func() {
		NewGroup(4, 4, 2, 1, 1, 1, nil, nil, nil, nil,
			types.Boundaries{types.Wall, types.Connect, types.Wall, types.Wall}, riemann.DefaultSolverConfig(), 1)
	})
}

func TestSinusoidalInflow(t *testing.T) {
	f := SinusoidalInflow(1, 0.5, 0, 0.2, 4)
	h, hu, hv := f(types.BndLeft, 1, 0)
	assert.InDelta(t, 1.2, h, 1.e-6)
	assert.Equal(t, float32(0.5), hu)
	assert.Equal(t, float32(0), hv)
	h, _, _ = SinusoidalInflow(0.1, 0, 0, 0.5, 4)(types.BndLeft, 3, 0)
	assert.Equal(t, float32(0), h)
	h, _, _ = SinusoidalInflow(2, 0, 0, 0, 0)(types.BndLeft, 3, 0)
	assert.Equal(t, float32(2), h)
}

func TestSW2DCheckDivergence(t *testing.T) {
	ip := parseInput(t, "NX: 6\nNY: 6\nFinalTime: 1\nInitType: still\nHLeft: 1\nBlocksX: 2\n")
	c, err := NewSW2D(ip, 1, false)
	require.NoError(t, err)
	assert.NoError(t, c.CheckDivergence())
	c.Group.Blocks[1].HU.Set(2, 2, float32(math.NaN()))
	assert.Error(t, c.CheckDivergence())
}
