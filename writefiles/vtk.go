package writefiles

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/model_problems/ShallowWater2D"
)

// WriteVTK writes the snapshot as a legacy ASCII VTK structured points data
// set with one point per cell center.
func WriteVTK(w io.Writer, s *ShallowWater2D.Snapshot, title string) (err error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vtk DataFile Version 2.0\n")
	fmt.Fprintf(bw, "%s, step %d, time %16.9e\n", title, s.Step, s.Time)
	fmt.Fprintf(bw, "ASCII\n")
	fmt.Fprintf(bw, "DATASET STRUCTURED_POINTS\n")
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", s.NX, s.NY, 1)
	fmt.Fprintf(bw, "ORIGIN  %16.9e %16.9e %16.9e\n", s.OffsetX+0.5*s.DX, s.OffsetY+0.5*s.DY, 0.)
	fmt.Fprintf(bw, "SPACING %16.9e %16.9e %16.9e\n", s.DX, s.DY, 1.)
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "POINT_DATA %d\n", s.NX*s.NY)
	for _, field := range []struct {
		name string
		m    *mat.Dense
	}{
		{"h", s.H}, {"hu", s.HU}, {"hv", s.HV}, {"b", s.B}, {"eta", s.Surface()},
	} {
		fmt.Fprintf(bw, "SCALARS %s float\n", field.name)
		fmt.Fprintf(bw, "LOOKUP_TABLE default\n")
		for i := 0; i < s.NY; i++ {
			for j := 0; j < s.NX; j++ {
				fmt.Fprintf(bw, "%16.09e\n", field.m.At(i, j))
			}
		}
	}
	return bw.Flush()
}
