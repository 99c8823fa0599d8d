package ShallowWater2D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/riemann"
	"github.com/notargets/goswe/types"
	"github.com/notargets/goswe/utils"
)

// TimeTolerance ends a run that is this close to its final time, a step
// clipped to a smaller remainder would not move a float64 clock.
const TimeTolerance = 1.e-9

// OutputFunc receives a snapshot every PlotSteps steps and after the last one.
type OutputFunc func(s *Snapshot) error

type SW2D struct {
	Title         string
	FinalTime     float64
	MaxIterations int
	PlotSteps     int
	Init          InitType
	Config        riemann.SolverConfig
	Group         *Group
	Output        OutputFunc
	Steps         int
	Mass0         float64
	verbose       bool
}

func NewSW2D(ip *InputParameters.InputParametersSW2D, ProcLimit int, verbose bool) (c *SW2D, err error) {
	var (
		bcs types.Boundaries
		it  InitType
	)
	if err = ip.Validate(); err != nil {
		return
	}
	if it, err = NewInitType(ip.InitType); err != nil {
		return
	}
	if bcs, err = types.ParseBoundaries(ip.BCs, types.Outflow); err != nil {
		return
	}
	for _, edge := range types.BoundaryEdges {
		if bcs[edge] == types.Connect {
			err = fmt.Errorf("%s edge of the domain has no neighbor to connect to", edge)
			return
		}
	}
	if ProcLimit == 0 {
		ProcLimit = ip.ParallelDegree
	}
	c = &SW2D{
		Title:         ip.Title,
		FinalTime:     ip.FinalTime,
		MaxIterations: ip.MaxIterations,
		PlotSteps:     ip.PlotSteps,
		Init:          it,
		Config: riemann.NewSolverConfig(
			float32(ip.DryTolerance), float32(ip.Gravity), float32(ip.ZeroTolerance)),
		verbose: verbose,
	}
	var (
		dx, dy = float32(ip.DX), float32(ip.DY)
	)
	h, hu, hv, b := it.InitialState(ip.NX, ip.NY, dx, dy, InitParams{
		HLeft:          float32(ip.HLeft),
		HRight:         float32(ip.HRight),
		DamPosition:    float32(ip.DamPosition),
		CenterX:        float32(ip.CenterX),
		CenterY:        float32(ip.CenterY),
		Surface:        float32(ip.Surface),
		HumpHeight:     float32(ip.HumpHeight),
		HumpRadius:     float32(ip.HumpRadius),
		ParallelDegree: ProcLimit,
	})
	c.Group = NewGroup(ip.NX, ip.NY, ip.BlocksX, ip.BlocksY, dx, dy, h, hu, hv, b, bcs, c.Config, ProcLimit)
	for name := range ip.Inflow {
		var edge types.BoundaryEdge
		if edge, err = types.ParseBoundaryEdge(name); err != nil {
			return
		}
		if bcs[edge] != types.Inflow {
			err = fmt.Errorf("inflow parameters given for %s edge classified %s", edge, bcs[edge])
			return
		}
		c.Group.SetInflow(edge, SinusoidalInflow(
			ip.InflowParameter(name, "h"), ip.InflowParameter(name, "hu"), ip.InflowParameter(name, "hv"),
			ip.InflowParameter(name, "amplitude"), ip.InflowParameter(name, "period")))
	}
	for _, edge := range types.BoundaryEdges {
		if bcs[edge] == types.Inflow {
			if !hasInflowKey(ip, edge) {
				err = fmt.Errorf("%s edge is Inflow but has no inflow parameters", edge)
				return
			}
		}
	}
	c.Mass0 = c.Group.Snapshot().Mass()
	return
}

func hasInflowKey(ip *InputParameters.InputParametersSW2D, edge types.BoundaryEdge) bool {
	for name := range ip.Inflow {
		if e, err := types.ParseBoundaryEdge(name); err == nil && e == edge {
			return true
		}
	}
	return false
}

// SinusoidalInflow holds depth h0 modulated by amplitude with the given
// period, momenta stay fixed. A zero period gives a constant inflow.
func SinusoidalInflow(h0, hu, hv, amplitude, period float64) InflowFunc {
	if period == 0 || amplitude == 0 {
		return ConstantInflow(float32(h0), float32(hu), float32(hv))
	}
	return func(_ types.BoundaryEdge, t float64, _ int) (float32, float32, float32) {
		h := h0 + amplitude*math.Sin(2*math.Pi*t/period)
		return float32(max(0, h)), float32(hu), float32(hv)
	}
}

func (c *SW2D) CheckIfFinished(Time float64, steps int) (finished bool) {
	if (c.FinalTime > 0 && Time >= c.FinalTime-TimeTolerance) ||
		(c.MaxIterations > 0 && steps >= c.MaxIterations) {
		finished = true
	}
	return
}

// Solve advances the group until the final time or the iteration limit. The
// last step is clipped so the run ends on the final time.
func (c *SW2D) Solve() (err error) {
	var (
		g        = c.Group
		dt       float32
		finished = c.CheckIfFinished(g.Time(), c.Steps)
		elapsed  time.Duration
		start    time.Time
	)
	c.PrintInitialization()
	for !finished {
		start = time.Now()
		dt = g.ComputeNumericalFluxes()
		if c.FinalTime > 0 {
			if rem := float32(c.FinalTime - g.Time()); dt > rem {
				dt = rem
			}
		}
		if dt == UnconstrainedTimestep {
			return fmt.Errorf("no wave limits the time step at t = %g and no final time is set", g.Time())
		}
		g.UpdateUnknowns(dt)
		elapsed += time.Since(start)
		c.Steps++
		finished = c.CheckIfFinished(g.Time(), c.Steps)
		plotNow := c.PlotSteps > 0 && c.Steps%c.PlotSteps == 0
		if finished || plotNow || c.Steps == 1 {
			if err = c.CheckDivergence(); err != nil {
				return
			}
			s := c.Snapshot()
			c.PrintUpdate(s, dt)
			if c.Output != nil && (finished || plotNow) {
				if err = c.Output(s); err != nil {
					return
				}
			}
		}
	}
	c.PrintFinal(elapsed)
	return
}

// CheckDivergence fails when any field of any block holds a NaN or an infinity.
func (c *SW2D) CheckDivergence() (err error) {
	for n, blk := range c.Group.Blocks {
		if utils.IsNan(blk.H.Data()) || utils.IsNan(blk.HU.Data()) || utils.IsNan(blk.HV.Data()) {
			return fmt.Errorf("solution diverged in block %d at step %d, t = %g", n, c.Steps, blk.Time())
		}
	}
	return
}

func (c *SW2D) Snapshot() (s *Snapshot) {
	s = c.Group.Snapshot()
	s.Step = c.Steps
	return
}

func (c *SW2D) PrintInitialization() {
	if !c.verbose {
		return
	}
	g := c.Group
	fmt.Printf("%s: %s on %d x %d cells in %d x %d blocks\n",
		c.Title, c.Init.Print(), g.NX, g.NY, g.BlocksX, g.BlocksY)
	c.Config.Print()
	if c.FinalTime > 0 {
		fmt.Printf("Solving until finaltime = %8.5f\n", c.FinalTime)
	} else {
		fmt.Printf("Solving until Max Iterations = %d\n", c.MaxIterations)
	}
	fmt.Printf("    iter      time        dt    max_ws       mass      h_min      h_max\n")
}

func (c *SW2D) PrintUpdate(s *Snapshot, dt float32) {
	if !c.verbose {
		return
	}
	hMin, hMax := s.DepthRange()
	fmt.Printf("%8d%10.5f%10.3e%10.4f%11.4e%11.4e%11.4e\n",
		s.Step, s.Time, dt, c.Group.MaxWavespeed(), s.Mass(), hMin, hMax)
}

func (c *SW2D) PrintFinal(elapsed time.Duration) {
	if !c.verbose || c.Steps == 0 {
		return
	}
	var (
		cells = c.Group.NX * c.Group.NY
		rate  = float64(elapsed.Microseconds()) / float64(cells*c.Steps)
	)
	fmt.Printf("\nRate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, c.Steps)
	fmt.Printf("%s\n", utils.GetMemUsage())
	if c.Mass0 > 0 {
		fmt.Printf("Relative mass change = %11.4e\n", (c.Snapshot().Mass()-c.Mass0)/c.Mass0)
	}
}
