package riemann

import (
	"fmt"
	"math"
)

// SolverConfig holds the constants shared by every interface computation of a
// Block. It is passed by value and never modified after construction.
type SolverConfig struct {
	DryTolerance  float32 // Depth below which a cell is dry
	Gravity       float32
	HalfGravity   float32
	SqrtGravity   float32
	ZeroTolerance float32 // Wave speeds with magnitude below this are stationary
}

const (
	DefaultDryTolerance  float32 = 0.1
	DefaultGravity       float32 = 9.81
	DefaultZeroTolerance float32 = 1.e-7
)

// NewSolverConfig panics unless the dry tolerance and gravity are positive. A
// zero dry tolerance would treat cells of zero depth as wet.
func NewSolverConfig(dryTolerance, gravity, zeroTolerance float32) (sc SolverConfig) {
	if dryTolerance <= 0 || zeroTolerance < 0 || gravity <= 0 {
		panic(fmt.Errorf("invalid solver config: dry tolerance %g, gravity %g, zero tolerance %g",
			dryTolerance, gravity, zeroTolerance))
	}
	sc = SolverConfig{
		DryTolerance:  dryTolerance,
		Gravity:       gravity,
		HalfGravity:   0.5 * gravity,
		SqrtGravity:   sqrt32(gravity),
		ZeroTolerance: zeroTolerance,
	}
	return
}

func DefaultSolverConfig() SolverConfig {
	return NewSolverConfig(DefaultDryTolerance, DefaultGravity, DefaultZeroTolerance)
}

func (sc SolverConfig) Print() {
	fmt.Printf("%8.5f\t\t= Dry Tolerance\n", sc.DryTolerance)
	fmt.Printf("%8.5f\t\t= Gravity\n", sc.Gravity)
	fmt.Printf("%8.2e\t\t= Zero Tolerance\n", sc.ZeroTolerance)
}

// Update carries the net updates of one interface to its two adjoining
// cells. A cell changes by -dt/dx times the update it receives, so a positive
// HUpdateLeft drains the left cell.
type Update struct {
	HUpdateLeft, HUpdateRight   float32
	HuUpdateLeft, HuUpdateRight float32 // Normal momentum of the sweep direction
	MaxWavespeed                float32
}

type WetDryState uint8

const (
	WetWet     WetDryState = iota
	WetDryWall             // Left wet, right dry: right is mirrored from left
	DryWetWall             // Left dry, right wet: left is mirrored from right
	DryDry
)

func (ws WetDryState) String() string {
	return [...]string{"WetWet", "WetDryWall", "DryWetWall", "DryDry"}[ws]
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
