package ShallowWater2D

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/grid"
	"github.com/notargets/goswe/riemann"
	"github.com/notargets/goswe/types"
	"github.com/notargets/goswe/utils"
)

// Group tiles a domain of NX x NY cells with BlocksX x BlocksY blocks that
// advance with one shared time step. Edges between blocks are Connect edges
// whose ghosts are filled by message passing after every update, so no block
// ever writes another block's fields.
type Group struct {
	NX, NY           int
	DX, DY           float32
	BlocksX, BlocksY int
	Blocks           []*Block   // Block (bx, by) is at bx + by*BlocksX
	Origins          [][2]int   // Global interior index of each block's first cell
	neighbors        [][4]int   // Neighbor block on each edge, -1 at the domain boundary
	pm               *utils.PartitionMap
	mb               *utils.MailBox[*EdgeStrip]
	maxTimestep      float32
}

// NewGroup splits global fields sized (nx+2) x (ny+2), ghosts included, into
// blocks. The outer edges of the domain are classified by bcs, which must not
// hold Connect since nothing lies beyond them.
func NewGroup(nx, ny, blocksX, blocksY int, dx, dy float32, h, hu, hv, b *grid.Grid,
	bcs types.Boundaries, sc riemann.SolverConfig, ProcLimit int) (g *Group) {
	if blocksX < 1 || blocksY < 1 || blocksX > nx || blocksY > ny {
		panic(fmt.Errorf("cannot tile %d x %d cells with %d x %d blocks", nx, ny, blocksX, blocksY))
	}
	for _, edge := range types.BoundaryEdges {
		if bcs[edge] == types.Connect {
			panic(fmt.Errorf("%s edge of the domain has no neighbor to connect to", edge))
		}
	}
	var (
		N        = blocksX * blocksY
		pmX, pmY = utils.NewPartitionMap(blocksX, nx), utils.NewPartitionMap(blocksY, ny)
	)
	g = &Group{
		NX:        nx,
		NY:        ny,
		DX:        dx,
		DY:        dy,
		BlocksX:   blocksX,
		BlocksY:   blocksY,
		Blocks:    make([]*Block, N),
		Origins:   make([][2]int, N),
		neighbors: make([][4]int, N),
		pm:        utils.NewPartitionMap(N, N),
		mb:        utils.NewMailBox[*EdgeStrip](N),
	}
	globals := [4]*grid.Grid{
		fieldOrZero(h, nx, ny, "h"), fieldOrZero(hu, nx, ny, "hu"),
		fieldOrZero(hv, nx, ny, "hv"), fieldOrZero(b, nx, ny, "b"),
	}
	for by := 0; by < blocksY; by++ {
		i0, i1 := pmY.GetBucketRange(by)
		for bx := 0; bx < blocksX; bx++ {
			var (
				j0, j1   = pmX.GetBucketRange(bx)
				n        = bx + by*blocksX
				bnx, bny = j1 - j0, i1 - i0
				local    [4]*grid.Grid
				blkBCs   = bcs
			)
			for f, gf := range globals {
				local[f] = grid.NewGrid(bnx+2, bny+2)
				local[f].Apply(ProcLimit, func(x, y int, _ float32) float32 {
					return gf.Get(j0+x, i0+y)
				})
			}
			g.neighbors[n] = [4]int{-1, -1, -1, -1}
			if bx > 0 {
				g.neighbors[n][types.BndLeft] = n - 1
				blkBCs[types.BndLeft] = types.Connect
			}
			if bx < blocksX-1 {
				g.neighbors[n][types.BndRight] = n + 1
				blkBCs[types.BndRight] = types.Connect
			}
			if by > 0 {
				g.neighbors[n][types.BndBottom] = n - blocksX
				blkBCs[types.BndBottom] = types.Connect
			}
			if by < blocksY-1 {
				g.neighbors[n][types.BndTop] = n + blocksX
				blkBCs[types.BndTop] = types.Connect
			}
			blk := NewBlock(bnx, bny, dx, dy, local[0], local[1], local[2], local[3], blkBCs, sc, ProcLimit)
			blk.OffsetX, blk.OffsetY = float32(j0)*dx, float32(i0)*dy
			g.Blocks[n] = blk
			g.Origins[n] = [2]int{j0, i0}
		}
	}
	g.HaloExchange()
	return
}

func (g *Group) Time() float64 {
	return g.Blocks[0].Time()
}

func (g *Group) MaxWavespeed() (maxSpeed float32) {
	for _, blk := range g.Blocks {
		maxSpeed = max(maxSpeed, blk.MaxWavespeed())
	}
	return
}

func (g *Group) MaxTimestep() float32 {
	return g.maxTimestep
}

// forEachBlock runs f on every block concurrently and waits for all of them.
func (g *Group) forEachBlock(f func(n int, blk *Block)) {
	g.pm.Run(func(_, nMin, nMax int) {
		for n := nMin; n < nMax; n++ {
			f(n, g.Blocks[n])
		}
	})
}

// ComputeNumericalFluxes sweeps every block and returns the smallest of the
// blocks' stable steps.
func (g *Group) ComputeNumericalFluxes() (maxTimestep float32) {
	dts := make([]float32, len(g.Blocks))
	g.forEachBlock(func(n int, blk *Block) {
		dts[n] = blk.ComputeNumericalFluxes()
	})
	maxTimestep = UnconstrainedTimestep
	for _, dt := range dts {
		maxTimestep = min(maxTimestep, dt)
	}
	g.maxTimestep = maxTimestep
	return
}

func (g *Group) UpdateUnknowns(dt float32) {
	g.forEachBlock(func(_ int, blk *Block) {
		blk.UpdateUnknowns(dt)
	})
	g.HaloExchange()
}

func (g *Group) Advance() (dt float32) {
	dt = g.ComputeNumericalFluxes()
	g.UpdateUnknowns(dt)
	return
}

// HaloExchange sends each block's Connect edges to the neighbors and, after
// every block has posted, writes the received strips into the ghost cells.
func (g *Group) HaloExchange() {
	g.forEachBlock(func(n int, blk *Block) {
		for _, edge := range types.BoundaryEdges {
			nbr := g.neighbors[n][edge]
			if nbr < 0 || blk.Boundaries[edge] != types.Connect {
				continue
			}
			g.mb.PostMessage(n, nbr, blk.ReadEdge(edge))
		}
		g.mb.DeliverMyMessages(n)
	})
	g.forEachBlock(func(n int, blk *Block) {
		g.mb.ReceiveMyMessages(n)
		for _, es := range g.mb.Messages(n) {
			blk.WriteGhost(es.Edge.Opposite(), es)
		}
		g.mb.ClearMyMessages(n)
	})
}

// SetInflow feeds every block cell on the domain edge from f, with k counted
// along the whole domain edge.
func (g *Group) SetInflow(edge types.BoundaryEdge, f InflowFunc) {
	for n, blk := range g.Blocks {
		if g.neighbors[n][edge] >= 0 {
			continue
		}
		shift := g.Origins[n][1]
		if !edge.Vertical() {
			shift = g.Origins[n][0]
		}
		blk.SetInflow(edge, func(e types.BoundaryEdge, t float64, k int) (float32, float32, float32) {
			return f(e, t, k+shift)
		})
	}
}

// Snapshot stitches the interiors of all blocks into domain sized matrices.
func (g *Group) Snapshot() (s *Snapshot) {
	s = &Snapshot{
		Time: g.Time(),
		NX:   g.NX,
		NY:   g.NY,
		DX:   float64(g.DX),
		DY:   float64(g.DY),
		H:    mat.NewDense(g.NY, g.NX, nil),
		HU:   mat.NewDense(g.NY, g.NX, nil),
		HV:   mat.NewDense(g.NY, g.NX, nil),
		B:    mat.NewDense(g.NY, g.NX, nil),
	}
	for n, blk := range g.Blocks {
		var (
			bs     = blk.Snapshot()
			j0, i0 = g.Origins[n][0], g.Origins[n][1]
		)
		for _, pair := range [4][2]*mat.Dense{{s.H, bs.H}, {s.HU, bs.HU}, {s.HV, bs.HV}, {s.B, bs.B}} {
			dst := pair[0].Slice(i0, i0+blk.NY, j0, j0+blk.NX).(*mat.Dense)
			dst.Copy(pair[1])
		}
	}
	return
}
