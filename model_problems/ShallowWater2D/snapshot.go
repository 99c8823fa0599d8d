package ShallowWater2D

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Snapshot is a read-only copy of the interior state after a completed step.
// Matrix rows run along y, columns along x.
type Snapshot struct {
	Time             float64
	Step             int
	NX, NY           int
	DX, DY           float64
	OffsetX, OffsetY float64
	H, HU, HV, B     *mat.Dense
}

func (blk *Block) Snapshot() (s *Snapshot) {
	s = &Snapshot{
		Time:    blk.time,
		NX:      blk.NX,
		NY:      blk.NY,
		DX:      float64(blk.DX),
		DY:      float64(blk.DY),
		OffsetX: float64(blk.OffsetX),
		OffsetY: float64(blk.OffsetY),
		H:       blk.H.Interior(),
		HU:      blk.HU.Interior(),
		HV:      blk.HV.Interior(),
		B:       blk.B.Interior(),
	}
	return
}

func rawData(m *mat.Dense) []float64 {
	return m.RawMatrix().Data
}

// Mass is the integral of h over the interior.
func (s *Snapshot) Mass() float64 {
	return floats.Sum(rawData(s.H)) * s.DX * s.DY
}

func (s *Snapshot) DepthRange() (hMin, hMax float64) {
	hD := rawData(s.H)
	return floats.Min(hD), floats.Max(hD)
}

// Surface is the free surface elevation h+b.
func (s *Snapshot) Surface() (eta *mat.Dense) {
	eta = mat.NewDense(s.NY, s.NX, nil)
	eta.Add(s.H, s.B)
	return
}

// MaxSpeed is the largest |hu|/h and |hv|/h over wet cells deeper than dryTol.
func (s *Snapshot) MaxSpeed(dryTol float64) (vmax float64) {
	var (
		hD, huD, hvD = rawData(s.H), rawData(s.HU), rawData(s.HV)
	)
	for i, h := range hD {
		if h < dryTol {
			continue
		}
		vmax = max(vmax, max(math.Abs(huD[i]), math.Abs(hvD[i]))/h)
	}
	return
}

// Row returns the cell center x coordinates and the values of m along grid
// row i, counted from zero over the interior.
func (s *Snapshot) Row(m *mat.Dense, i int) (X, V []float64) {
	X = make([]float64, s.NX)
	V = mat.Row(nil, i, m)
	for j := range X {
		X[j] = s.OffsetX + (float64(j)+0.5)*s.DX
	}
	return
}
