package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/utils"
)

// Grid is a dense float32 scalar field. Fields owned by a Block carry a ghost
// ring exactly one cell deep, so a block with nx by ny interior cells uses a
// (nx+2) by (ny+2) Grid.
type Grid struct {
	Layout
	data []float32
}

func NewGrid(width, height int) (g *Grid) {
	l := NewLayout(width, height)
	g = &Grid{
		Layout: l,
		data:   make([]float32, l.Len()),
	}
	return
}

func (g *Grid) Get(x, y int) float32 {
	g.mustContain(x, y)
	return g.data[g.Offset(x, y)]
}

func (g *Grid) Set(x, y int, val float32) {
	g.mustContain(x, y)
	g.data[g.Offset(x, y)] = val
}

// Row is a view of row y, not a copy.
func (g *Grid) Row(y int) []float32 {
	if y < 0 || y >= g.Height {
		panic(fmt.Errorf("row %d out of range for grid of height %d", y, g.Height))
	}
	off := g.Offset(0, y)
	return g.data[off : off+g.Width : off+g.Width]
}

// Column copies column x into col, which is allocated when nil.
func (g *Grid) Column(x int, col []float32) []float32 {
	if x < 0 || x >= g.Width {
		panic(fmt.Errorf("column %d out of range for grid of width %d", x, g.Width))
	}
	if col == nil {
		col = make([]float32, g.Height)
	}
	for y := 0; y < g.Height; y++ {
		col[y] = g.data[g.Offset(x, y)]
	}
	return col
}

func (g *Grid) SetColumn(x int, col []float32) {
	if len(col) != g.Height {
		panic(fmt.Errorf("column length %d does not match grid height %d", len(col), g.Height))
	}
	for y := 0; y < g.Height; y++ {
		g.Set(x, y, col[y])
	}
}

func (g *Grid) Data() []float32 {
	return g.data
}

func (g *Grid) Fill(val float32) {
	for i := range g.data {
		g.data[i] = val
	}
}

// Apply replaces every cell with f(x, y, value). Rows are split across
// parallelDegree goroutines, so f must not read cells of g other than the one
// it is handed and must not depend on visiting order.
func (g *Grid) Apply(parallelDegree int, f func(x, y int, val float32) float32) {
	pm := utils.NewPartitionMap(utils.ParallelDegreeFor(parallelDegree, g.Height), g.Height)
	pm.Run(func(_, yMin, yMax int) {
		for y := yMin; y < yMax; y++ {
			row := g.Row(y)
			for x := range row {
				row[x] = f(x, y, row[x])
			}
		}
	})
}

// ToDense exports the cells in [x0,x1) x [y0,y1) as a float64 matrix whose
// rows are grid rows.
func (g *Grid) ToDense(x0, x1, y0, y1 int) (m *mat.Dense) {
	var (
		nr, nc = y1 - y0, x1 - x0
	)
	if nr <= 0 || nc <= 0 || !g.Contains(x0, y0) || !g.Contains(x1-1, y1-1) {
		panic(fmt.Errorf("invalid export window [%d,%d) x [%d,%d) for %d x %d grid", x0, x1, y0, y1, g.Width, g.Height))
	}
	m = mat.NewDense(nr, nc, nil)
	for y := y0; y < y1; y++ {
		row := g.Row(y)
		for x := x0; x < x1; x++ {
			m.Set(y-y0, x-x0, float64(row[x]))
		}
	}
	return
}

// Interior exports everything but the one cell ghost ring.
func (g *Grid) Interior() *mat.Dense {
	return g.ToDense(1, g.Width-1, 1, g.Height-1)
}
