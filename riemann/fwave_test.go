package riemann

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func checkFinite(t *testing.T, upd Update) {
	assert.True(t, isFinite(upd.HUpdateLeft))
	assert.True(t, isFinite(upd.HUpdateRight))
	assert.True(t, isFinite(upd.HuUpdateLeft))
	assert.True(t, isFinite(upd.HuUpdateRight))
	assert.True(t, isFinite(upd.MaxWavespeed))
}

func TestSolverConfig(t *testing.T) {
	sc := DefaultSolverConfig()
	assert.Equal(t, float32(0.1), sc.DryTolerance)
	assert.InDelta(t, 4.905, sc.HalfGravity, 1.e-6)
	assert.InDelta(t, math.Sqrt(9.81), sc.SqrtGravity, 1.e-6)
	assert.Panics(t, func() { NewSolverConfig(0.1, 0, 0) })
	assert.Panics(t, func() { NewSolverConfig(-1, 9.81, 0) })
	assert.Panics(t, func() { NewSolverConfig(0, 9.81, 1.e-7) })
	assert.Equal(t, "DryWetWall", DryWetWall.String())
}

func TestFWaveDamBreak(t *testing.T) {
	var (
		sc             = NewSolverConfig(0.01, 9.81, 1.e-7)
		hL, hR, g      = 2., 1., 9.81
		cL, cR         = math.Sqrt(g * hL), math.Sqrt(g * hR)
		cRoe           = math.Sqrt(g * 0.5 * (hL + hR))
		speed0, speed1 = math.Min(-cL, -cRoe), math.Max(cR, cRoe)
		fDif1          = 0.5 * g * (hR*hR - hL*hL)
		wave0          = -fDif1 / (speed1 - speed0)
		wave1          = fDif1 / (speed1 - speed0)
	)
	upd, state := FWaveState(sc, 2, 1, 0, 0, 0, 0)
	assert.Equal(t, WetWet, state)
	checkFinite(t, upd)
	// Outward moving waves of opposite sign
	require.Less(t, speed0, 0.)
	require.Greater(t, speed1, 0.)
	assert.InDelta(t, math.Max(math.Abs(speed0), math.Abs(speed1)), upd.MaxWavespeed, 1.e-5)
	assert.InDelta(t, cL, upd.MaxWavespeed, 1.e-5)
	// Net updates are subtracted from a cell, so the deeper left cell drains
	// and the shallow right cell fills
	assert.Greater(t, upd.HUpdateLeft, float32(0))
	assert.Less(t, upd.HUpdateRight, float32(0))
	assert.Less(t, -upd.HUpdateLeft, float32(0))
	assert.Greater(t, -upd.HUpdateRight, float32(0))
	assert.InDelta(t, wave0, upd.HUpdateLeft, 1.e-5)
	assert.InDelta(t, wave1, upd.HUpdateRight, 1.e-5)
	assert.InDelta(t, wave0*speed0, upd.HuUpdateLeft, 1.e-4)
	assert.InDelta(t, wave1*speed1, upd.HuUpdateRight, 1.e-4)
	// Mass part of the splitting sums to the mass flux jump, which is zero here
	assert.InDelta(t, 0, upd.HUpdateLeft+upd.HUpdateRight, 1.e-5)
	// Momentum part sums to the momentum flux jump
	assert.InDelta(t, fDif1, upd.HuUpdateLeft+upd.HuUpdateRight, 1.e-4)
}

func TestFWaveReflectionSymmetry(t *testing.T) {
	var (
		sc  = DefaultSolverConfig()
		rng = rand.New(rand.NewPCG(1, 2))
	)
	for i := 0; i < 1000; i++ {
		var (
			hL  = float32(rng.Float64() * 5)
			hR  = float32(rng.Float64() * 5)
			huL = float32(rng.NormFloat64() * 3)
			huR = float32(rng.NormFloat64() * 3)
			bL  = float32(rng.Float64() - 0.5)
			bR  = float32(rng.Float64() - 0.5)
		)
		if i%10 == 0 {
			hR = 0.5 * sc.DryTolerance // Exercise the wet/dry wall
		}
		u := FWave(sc, hL, hR, huL, huR, bL, bR)
		m := FWave(sc, hR, hL, -huR, -huL, bR, bL)
		checkFinite(t, u)
		checkFinite(t, m)
		scale := float64(1 + u.MaxWavespeed*u.MaxWavespeed)
		tol := 1.e-4 * scale
		assert.InDelta(t, u.HUpdateLeft, m.HUpdateRight, tol)
		assert.InDelta(t, u.HUpdateRight, m.HUpdateLeft, tol)
		assert.InDelta(t, u.HuUpdateLeft, -m.HuUpdateRight, tol*scale)
		assert.InDelta(t, u.HuUpdateRight, -m.HuUpdateLeft, tol*scale)
		assert.InDelta(t, u.MaxWavespeed, m.MaxWavespeed, 1.e-5*scale)
	}
}

func TestFWaveLakeAtRest(t *testing.T) {
	sc := DefaultSolverConfig()
	for _, bed := range [][2]float32{{0, 0}, {-2, -1}, {-1, -2}, {-0.3, 0.7}, {0.9, -4}} {
		var (
			eta    = float32(1)
			hL, hR = eta - bed[0], eta - bed[1]
		)
		upd := FWave(sc, hL, hR, 0, 0, bed[0], bed[1])
		assert.InDelta(t, 0, upd.HUpdateLeft, 1.e-5)
		assert.InDelta(t, 0, upd.HUpdateRight, 1.e-5)
		assert.InDelta(t, 0, upd.HuUpdateLeft, 1.e-4)
		assert.InDelta(t, 0, upd.HuUpdateRight, 1.e-4)
		assert.Greater(t, upd.MaxWavespeed, float32(0))
	}
	{ // Shoreline: a dry bank above the water line stays at rest
		upd, state := FWaveState(sc, 1, 0, 0, 0, 0, 2)
		assert.Equal(t, WetDryWall, state)
		assert.Equal(t, Update{MaxWavespeed: upd.MaxWavespeed}, upd)
	}
}

func TestFWaveDryStates(t *testing.T) {
	sc := DefaultSolverConfig()
	{ // Both sides dry
		for _, b := range []float32{0, 3, -7} {
			upd, state := FWaveState(sc, 0, 0, 0, 0, b, b)
			assert.Equal(t, DryDry, state)
			assert.Equal(t, Update{}, upd)
		}
		upd := FWave(sc, 0.5*sc.DryTolerance, 0.25*sc.DryTolerance, 1, -1, 0, 1)
		assert.Equal(t, Update{}, upd)
	}
	{ // Wet left moving into a dry right cell reflects, nothing enters the dry cell
		upd, state := FWaveState(sc, 1, 0, 0.5, 0, 0, 0)
		assert.Equal(t, WetDryWall, state)
		checkFinite(t, upd)
		assert.Equal(t, float32(0), upd.HUpdateRight)
		assert.Equal(t, float32(0), upd.HuUpdateRight)
		// Interface flux of the left cell, hu + update, vanishes at a wall
		assert.InDelta(t, 0, 0.5+upd.HUpdateLeft, 1.e-5)
		assert.InDelta(t, math.Sqrt(9.81), upd.MaxWavespeed, 1.e-5)
	}
	{ // Mirror image
		upd, state := FWaveState(sc, 0, 1, 0, -0.5, 0, 0)
		assert.Equal(t, DryWetWall, state)
		assert.Equal(t, float32(0), upd.HUpdateLeft)
		assert.Equal(t, float32(0), upd.HuUpdateLeft)
		assert.InDelta(t, 0, -0.5-upd.HUpdateRight, 1.e-5)
	}
	{ // Negative depth is a contract violation
		assert.Panics(t, func() { FWave(sc, -1, 1, 0, 0, 0, 0) })
		assert.Panics(t, func() { FWave(sc, 1, -0.001, 0, 0, 0, 0) })
	}
}

func TestFWaveStationaryWaves(t *testing.T) {
	{ // A wave with speed inside the zero tolerance is shared equally
		var (
			sc  = NewSolverConfig(0.1, 9.81, 1.e-7)
			upd Update
		)
		upd.distribute(sc, 2, 0)
		assert.Equal(t, Update{HUpdateLeft: 1, HUpdateRight: 1}, upd)
		upd = Update{}
		upd.distribute(sc, 2, -1)
		assert.Equal(t, Update{HUpdateLeft: 2, HuUpdateLeft: -2}, upd)
		upd = Update{}
		upd.distribute(sc, 2, 1)
		assert.Equal(t, Update{HUpdateRight: 2, HuUpdateRight: 2}, upd)
	}
	{ // Coincident speeds fall back to a zero decomposition
		sc := NewSolverConfig(0.1, 9.81, 1.e-3)
		w0, w1 := waveDecomposition(sc, 1, 1, 1, 2, 1, 2, 0, 0, 0.5, 0.5)
		assert.Equal(t, float32(0), w0)
		assert.Equal(t, float32(0), w1)
	}
	{ // Supercritical flow: both speeds positive, everything goes right
		sc := DefaultSolverConfig()
		upd := FWave(sc, 1, 1.1, 10, 11, 0, 0)
		assert.Equal(t, float32(0), upd.HUpdateLeft)
		assert.Equal(t, float32(0), upd.HuUpdateLeft)
		assert.InDelta(t, 1, upd.HUpdateRight, 1.e-4)
	}
}
