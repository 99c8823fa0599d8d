package ShallowWater2D

import (
	"fmt"

	"github.com/notargets/goswe/grid"
	"github.com/notargets/goswe/types"
)

// InflowFunc supplies the ghost state of cell k along an Inflow edge at time t.
// k runs along the edge from the bottom or left end, starting at zero.
type InflowFunc func(edge types.BoundaryEdge, t float64, k int) (h, hu, hv float32)

// ConstantInflow holds the same state at every ghost cell and every time.
func ConstantInflow(h, hu, hv float32) InflowFunc {
	return func(types.BoundaryEdge, float64, int) (float32, float32, float32) {
		return h, hu, hv
	}
}

// EdgeStrip is a copy of the interior cells along one edge of a block, the
// data a neighbor needs to fill the ghost cells of a Connect edge.
type EdgeStrip struct {
	Edge         types.BoundaryEdge // Edge of the sending block
	H, HU, HV, B []float32
}

// SetGhostLayer refreshes the ghost cells of every edge from its boundary
// classification. Inflow edges are filled from their InflowFunc when one is
// set; Connect edges belong to the halo exchange and Passive edges are skipped.
func (blk *Block) SetGhostLayer() {
	for _, edge := range types.BoundaryEdges {
		switch blk.Boundaries[edge] {
		case types.Outflow:
			blk.copyEdge(edge, false)
		case types.Wall:
			blk.copyEdge(edge, true)
		case types.Inflow:
			blk.applyInflow(edge)
		case types.Connect, types.Passive:
		}
	}
}

// SetBathymetryGhosts copies the bed next to Outflow, Wall and Inflow edges
// into the ghost cells. The bed is static, so this runs when an edge is
// (re)classified rather than every step.
func (blk *Block) SetBathymetryGhosts() {
	for _, edge := range types.BoundaryEdges {
		switch blk.Boundaries[edge] {
		case types.Outflow, types.Wall, types.Inflow:
			blk.copyField(blk.B, edge, false)
		}
	}
}

func (blk *Block) SetBoundaryType(edge types.BoundaryEdge, bt types.BoundaryType) {
	blk.Boundaries[edge] = bt
	if bt != types.Inflow {
		blk.inflow[edge] = nil
	}
	blk.SetBathymetryGhosts()
	blk.SetGhostLayer()
}

// SetInflow classifies edge as Inflow fed by f and fills its ghosts at the
// current time.
func (blk *Block) SetInflow(edge types.BoundaryEdge, f InflowFunc) {
	blk.Boundaries[edge] = types.Inflow
	blk.inflow[edge] = f
	blk.SetBathymetryGhosts()
	blk.applyInflow(edge)
}

// EdgeLength is the number of interior cells along edge.
func (blk *Block) EdgeLength(edge types.BoundaryEdge) int {
	if edge.Vertical() {
		return blk.NY
	}
	return blk.NX
}

// ghostIndex returns the (j, i) grid index of ghost cell k along edge and of
// the interior cell next to it.
func (blk *Block) ghostIndex(edge types.BoundaryEdge, k int) (jg, ig, jn, in int) {
	switch edge {
	case types.BndLeft:
		return 0, k + 1, 1, k + 1
	case types.BndRight:
		return blk.NX + 1, k + 1, blk.NX, k + 1
	case types.BndBottom:
		return k + 1, 0, k + 1, 1
	default:
		return k + 1, blk.NY + 1, k + 1, blk.NY
	}
}

func (blk *Block) copyField(g *grid.Grid, edge types.BoundaryEdge, negate bool) {
	n := blk.EdgeLength(edge)
	for k := 0; k < n; k++ {
		jg, ig, jn, in := blk.ghostIndex(edge, k)
		v := g.Get(jn, in)
		if negate {
			v = -v
		}
		g.Set(jg, ig, v)
	}
}

// copyEdge is the zero gradient rule, with wall set the normal momentum
// is reflected.
func (blk *Block) copyEdge(edge types.BoundaryEdge, wall bool) {
	blk.copyField(blk.H, edge, false)
	blk.copyField(blk.HU, edge, wall && edge.Vertical())
	blk.copyField(blk.HV, edge, wall && !edge.Vertical())
	if wall {
		blk.copyField(blk.B, edge, false)
	}
}

func (blk *Block) applyInflow(edge types.BoundaryEdge) {
	f := blk.inflow[edge]
	if f == nil {
		return
	}
	n := blk.EdgeLength(edge)
	for k := 0; k < n; k++ {
		jg, ig, _, _ := blk.ghostIndex(edge, k)
		h, hu, hv := f(edge, blk.time, k)
		if h < 0 {
			panic(fmt.Errorf("inflow on %s edge supplied negative depth %g at cell %d", edge, h, k))
		}
		blk.H.Set(jg, ig, h)
		blk.HU.Set(jg, ig, hu)
		blk.HV.Set(jg, ig, hv)
	}
}

// ReadEdge copies the interior cells along edge for a neighbor's halo.
func (blk *Block) ReadEdge(edge types.BoundaryEdge) (es *EdgeStrip) {
	es = &EdgeStrip{
		Edge: edge,
		H:    blk.readLine(blk.H, edge),
		HU:   blk.readLine(blk.HU, edge),
		HV:   blk.readLine(blk.HV, edge),
		B:    blk.readLine(blk.B, edge),
	}
	return
}

// readLine copies the first interior line of g inside edge, ghost corners
// excluded.
func (blk *Block) readLine(g *grid.Grid, edge types.BoundaryEdge) []float32 {
	_, _, jn, in := blk.ghostIndex(edge, 0)
	if edge.Vertical() {
		return g.Column(jn, nil)[1 : blk.NY+1]
	}
	line := make([]float32, blk.NX)
	copy(line, g.Row(in)[1:blk.NX+1])
	return line
}

// writeLine stores vals in the ghost line of g along edge and leaves the
// ghost corners alone.
func (blk *Block) writeLine(g *grid.Grid, edge types.BoundaryEdge, vals []float32) {
	jg, ig, _, _ := blk.ghostIndex(edge, 0)
	if edge.Vertical() {
		col := g.Column(jg, nil)
		copy(col[1:blk.NY+1], vals)
		g.SetColumn(jg, col)
		return
	}
	copy(g.Row(ig)[1:blk.NX+1], vals)
}

// WriteGhost fills the ghost cells of a Connect edge with a strip read from
// the neighbor that touches it.
func (blk *Block) WriteGhost(edge types.BoundaryEdge, es *EdgeStrip) {
	if blk.Boundaries[edge] != types.Connect {
		panic(fmt.Errorf("halo written to %s edge classified %s", edge, blk.Boundaries[edge]))
	}
	if es.Edge != edge.Opposite() {
		panic(fmt.Errorf("strip from %s edge cannot fill %s ghosts", es.Edge, edge))
	}
	n := blk.EdgeLength(edge)
	if len(es.H) != n || len(es.HU) != n || len(es.HV) != n || len(es.B) != n {
		panic(fmt.Errorf("strip length %d does not match %s edge length %d", len(es.H), edge, n))
	}
	blk.writeLine(blk.H, edge, es.H)
	blk.writeLine(blk.HU, edge, es.HU)
	blk.writeLine(blk.HV, edge, es.HV)
	blk.writeLine(blk.B, edge, es.B)
}
