package dam_break

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// DamBreak is the exact solution of the 1D dam break on a flat bed with still
// water on both sides: a rarefaction running left into the deep side and a
// bore running right into the shallow side, joined by a uniform middle state.
type DamBreak struct {
	HLeft, HRight float64
	Gravity       float64
	HMiddle       float64
	UMiddle       float64
	CLeft         float64 // Celerity sqrt(g*h) of the undisturbed deep side
	CMiddle       float64
	ShockSpeed    float64 // Zero when the right side is dry
}

func NewDamBreak(hL, hR, g float64) (db *DamBreak, err error) {
	if g <= 0 {
		err = fmt.Errorf("gravity must be positive, have %g", g)
		return
	}
	if hL <= hR || hR < 0 {
		err = fmt.Errorf("dam break needs hL > hR >= 0, have hL = %g, hR = %g", hL, hR)
		return
	}
	db = &DamBreak{
		HLeft:   hL,
		HRight:  hR,
		Gravity: g,
		CLeft:   math.Sqrt(g * hL),
	}
	if hR == 0 {
		// Dry bed, the rarefaction reaches the front at x0 + 2*cL*t
		db.UMiddle = 2 * db.CLeft
		return
	}
	if db.HMiddle, err = db.solveMiddleDepth(); err != nil {
		return
	}
	db.CMiddle = math.Sqrt(g * db.HMiddle)
	db.UMiddle = 2 * (db.CLeft - db.CMiddle)
	db.ShockSpeed = db.HMiddle * db.UMiddle / (db.HMiddle - hR)
	return
}

// Residual vanishes at the middle depth, where the velocity reached through
// the rarefaction equals the velocity behind the bore.
func (db *DamBreak) Residual(hm float64) float64 {
	var (
		g  = db.Gravity
		hR = db.HRight
	)
	return 2*(db.CLeft-math.Sqrt(g*hm)) - (hm-hR)*math.Sqrt(g*(hm+hR)/(2*hm*hR))
}

func (db *DamBreak) solveMiddleDepth() (hm float64, err error) {
	var (
		hL, hR = db.HLeft, db.HRight
		// Map the unconstrained search variable onto (hR, hL)
		depth = func(y float64) float64 {
			return hR + (hL-hR)/(1+math.Exp(-y))
		}
	)
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			r := db.Residual(depth(x[0]))
			return r * r
		},
	}
	settings := &optimize.Settings{
		MajorIterations: 2000,
		FuncEvaluations: 10000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-28,
			Iterations: 100,
		},
	}
	res, minErr := optimize.Minimize(problem, []float64{0}, settings, &optimize.NelderMead{})
	if res == nil {
		err = fmt.Errorf("unable to find the middle depth: %w", minErr)
		return
	}
	// An iteration limit is acceptable when the residual is small enough
	hm = depth(res.X[0])
	if math.Abs(db.Residual(hm)) > 1e-8*db.CLeft {
		err = fmt.Errorf("middle depth %g leaves residual %g", hm, db.Residual(hm))
	}
	return
}

// State returns depth and velocity at x and time t for a dam at x0.
func (db *DamBreak) State(x, x0, t float64) (h, u float64) {
	if t <= 0 {
		if x < x0 {
			return db.HLeft, 0
		}
		return db.HRight, 0
	}
	var (
		xi      = (x - x0) / t
		g       = db.Gravity
		cL      = db.CLeft
		fanTail = db.UMiddle - db.CMiddle
	)
	switch {
	case xi <= -cL:
		return db.HLeft, 0
	case xi <= fanTail:
		c := (2*cL - xi) / 3
		return c * c / g, 2 * (xi + cL) / 3
	case db.HRight > 0 && xi <= db.ShockSpeed:
		return db.HMiddle, db.UMiddle
	default:
		return db.HRight, 0
	}
}

// Profile samples the solution at the points X.
func (db *DamBreak) Profile(X []float64, x0, t float64) (H, U []float64) {
	H = make([]float64, len(X))
	U = make([]float64, len(X))
	for i, x := range X {
		H[i], U[i] = db.State(x, x0, t)
	}
	return
}

// Print reports the wave structure the way a run header does.
func (db *DamBreak) Print() (txt string) {
	txt = fmt.Sprintf("Dam Break: hL = %8.5f, hR = %8.5f, hM = %8.5f, uM = %8.5f, Shock Speed = %8.5f\n",
		db.HLeft, db.HRight, db.HMiddle, db.UMiddle, db.ShockSpeed)
	return
}
