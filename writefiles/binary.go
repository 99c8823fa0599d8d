package writefiles

import (
	"encoding/binary"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goswe/model_problems/ShallowWater2D"
)

/*
	Binary snapshot layout, little endian:
		int64   NX, NY, Step
		float64 Time, DX, DY, OffsetX, OffsetY
		float64 H, HU, HV, B, each NX*NY values with x running fastest
*/

func WriteBinary(w io.Writer, s *ShallowWater2D.Snapshot) (err error) {
	header := []any{
		int64(s.NX), int64(s.NY), int64(s.Step),
		s.Time, s.DX, s.DY, s.OffsetX, s.OffsetY,
	}
	for _, v := range header {
		if err = binary.Write(w, binary.LittleEndian, v); err != nil {
			return
		}
	}
	row := make([]float64, s.NX)
	for _, m := range []*mat.Dense{s.H, s.HU, s.HV, s.B} {
		for i := 0; i < s.NY; i++ {
			mat.Row(row, i, m)
			if err = binary.Write(w, binary.LittleEndian, row); err != nil {
				return
			}
		}
	}
	return
}

// ReadBinary reads back one snapshot written by WriteBinary.
func ReadBinary(r io.Reader) (s *ShallowWater2D.Snapshot, err error) {
	var (
		nx, ny, step int64
	)
	s = &ShallowWater2D.Snapshot{}
	for _, v := range []any{&nx, &ny, &step, &s.Time, &s.DX, &s.DY, &s.OffsetX, &s.OffsetY} {
		if err = binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("corrupt snapshot header, dimensions %d x %d", nx, ny)
	}
	s.NX, s.NY, s.Step = int(nx), int(ny), int(step)
	fields := make([]*mat.Dense, 4)
	for n := range fields {
		data := make([]float64, nx*ny)
		if err = binary.Read(r, binary.LittleEndian, data); err != nil {
			return nil, err
		}
		fields[n] = mat.NewDense(s.NY, s.NX, data)
	}
	s.H, s.HU, s.HV, s.B = fields[0], fields[1], fields[2], fields[3]
	return
}
