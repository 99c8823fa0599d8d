package ShallowWater2D

import (
	"fmt"
	"math"

	"github.com/notargets/goswe/grid"
	"github.com/notargets/goswe/riemann"
	"github.com/notargets/goswe/types"
	"github.com/notargets/goswe/utils"
)

const (
	CFLNumber    float32 = 0.4
	MinWavespeed float32 = 1.e-6
	// UnconstrainedTimestep is returned when no wave limits the step, the
	// driver has to bound the step itself
	UnconstrainedTimestep float32 = math.MaxFloat32
)

/*
	A Block advances the 2D shallow water equations on a structured grid of
	NX x NY interior cells surrounded by a ghost ring one cell deep.

	Each step is a sequence of phases separated by barriers:
		1) Flux sweep: F-Wave net updates for every x and y interface
		2) Reduction of the largest wave speed over both sweeps
		3) Time step from the CFL condition
		4) Conservative update of the interior, dry cell cleanup and ghost refresh

	Interface storage: the x sweep holds NY rows of NX+1 interfaces, the
	interface between cells (j-1, i) and (j, i) sits at (j-1, i-1). The y sweep
	holds NY+1 rows of NX interfaces, the interface between cells (j, i-1) and
	(j, i) sits at (j-1, i-1).
*/
type Block struct {
	NX, NY           int
	DX, DY           float32
	OffsetX, OffsetY float32 // Physical position of the lower left interior corner
	H, HU, HV, B     *grid.Grid
	Boundaries       types.Boundaries
	Config           riemann.SolverConfig
	ParallelDegree   int
	inflow           [4]InflowFunc
	layoutX, layoutY grid.Layout
	updatesX         []riemann.Update
	updatesY         []riemann.Update
	sweepX, sweepY   *utils.PartitionMap // Partitions of interface rows
	interior         *utils.PartitionMap // Partition of interior rows
	maxSpeedX        []float32           // Per bucket partial reductions
	maxSpeedY        []float32
	maxWavespeed     float32
	maxTimestep      float32
	time             float64
}

// NewBlock builds a block from initial fields sized (nx+2) x (ny+2), ghosts
// included. A nil field starts at zero. The block keeps the grids it is given.
func NewBlock(nx, ny int, dx, dy float32, h, hu, hv, b *grid.Grid,
	bcs types.Boundaries, sc riemann.SolverConfig, ProcLimit int) (blk *Block) {
	if nx < 1 || ny < 1 {
		panic(fmt.Errorf("block needs at least one interior cell, have %d x %d", nx, ny))
	}
	if dx <= 0 || dy <= 0 {
		panic(fmt.Errorf("cell sizes must be positive, have dx = %g, dy = %g", dx, dy))
	}
	blk = &Block{
		NX:         nx,
		NY:         ny,
		DX:         dx,
		DY:         dy,
		H:          fieldOrZero(h, nx, ny, "h"),
		HU:         fieldOrZero(hu, nx, ny, "hu"),
		HV:         fieldOrZero(hv, nx, ny, "hv"),
		B:          fieldOrZero(b, nx, ny, "b"),
		Boundaries: bcs,
		Config:     sc,
		layoutX:    grid.NewLayout(nx+1, ny),
		layoutY:    grid.NewLayout(nx, ny+1),
	}
	blk.updatesX = make([]riemann.Update, blk.layoutX.Len())
	blk.updatesY = make([]riemann.Update, blk.layoutY.Len())
	blk.SetParallelDegree(ProcLimit)
	blk.checkDepth()
	blk.SetBathymetryGhosts()
	blk.SetGhostLayer()
	return
}

func fieldOrZero(g *grid.Grid, nx, ny int, name string) *grid.Grid {
	if g == nil {
		return grid.NewGrid(nx+2, ny+2)
	}
	if g.Width != nx+2 || g.Height != ny+2 {
		panic(fmt.Errorf("field %s is %d x %d, block with ghosts is %d x %d", name, g.Width, g.Height, nx+2, ny+2))
	}
	return g
}

func (blk *Block) checkDepth() {
	for i := 1; i <= blk.NY; i++ {
		row := blk.H.Row(i)
		for j := 1; j <= blk.NX; j++ {
			if row[j] < 0 {
				panic(fmt.Errorf("negative initial depth %g at cell (%d,%d)", row[j], j, i))
			}
		}
	}
}

func (blk *Block) Time() float64 { return blk.time }

func (blk *Block) MaxWavespeed() float32 { return blk.maxWavespeed }

func (blk *Block) MaxTimestep() float32 { return blk.maxTimestep }

// CellCenter is the physical center of the cell at grid index (j, i).
func (blk *Block) CellCenter(j, i int) (x, y float32) {
	x = blk.OffsetX + (float32(j)-0.5)*blk.DX
	y = blk.OffsetY + (float32(i)-0.5)*blk.DY
	return
}

// Advance performs one full step with the largest stable time step and
// returns that step.
func (blk *Block) Advance() (dt float32) {
	dt = blk.ComputeNumericalFluxes()
	blk.UpdateUnknowns(dt)
	return
}

// ComputeNumericalFluxes runs the flux sweeps and returns the largest stable
// time step for the current state.
func (blk *Block) ComputeNumericalFluxes() (maxTimestep float32) {
	blk.sweep()
	blk.maxWavespeed = blk.reduceWavespeed()
	if blk.maxWavespeed > MinWavespeed {
		blk.maxTimestep = min(blk.DX, blk.DY) / blk.maxWavespeed * CFLNumber
	} else {
		blk.maxTimestep = UnconstrainedTimestep
	}
	return blk.maxTimestep
}

// UpdateUnknowns applies the updates of the last sweep with time step dt,
// which must not exceed the step returned by ComputeNumericalFluxes.
func (blk *Block) UpdateUnknowns(dt float32) {
	blk.interior.Run(func(_, rMin, rMax int) {
		blk.updateRows(dt, rMin, rMax)
	})
	blk.time += float64(dt)
	blk.SetGhostLayer()
}
