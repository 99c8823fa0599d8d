package riemann

import (
	"fmt"
)

/*
	F-Wave solver for the 1D shallow water equations with bathymetry

		q = [h, hu], f(q) = [hu, hu*u + g*h^2/2]

	The flux jump across an interface, including the bed source term, is split
	into two waves travelling at the Einfeldt speeds. Each wave is handed to the
	cell it moves into, stationary waves are shared.
*/

// FWave computes the net updates across one interface. It has no state, so
// every interface of a sweep may be computed concurrently.
func FWave(sc SolverConfig, hLeft, hRight, huLeft, huRight, bLeft, bRight float32) (upd Update) {
	upd, _ = FWaveState(sc, hLeft, hRight, huLeft, huRight, bLeft, bRight)
	return
}

// FWaveState is FWave that also reports how the wet/dry front was treated.
func FWaveState(sc SolverConfig, hLeft, hRight, huLeft, huRight, bLeft, bRight float32) (upd Update, state WetDryState) {
	if hLeft < 0 || hRight < 0 {
		panic(fmt.Errorf("negative depth at interface: hLeft = %g, hRight = %g", hLeft, hRight))
	}
	switch {
	case hLeft >= sc.DryTolerance && hRight >= sc.DryTolerance:
		state = WetWet
	case hLeft >= sc.DryTolerance:
		// Reflect the wet state across the interface, the dry cell acts as a wall
		state = WetDryWall
		hRight, huRight, bRight = hLeft, -huLeft, bLeft
	case hRight >= sc.DryTolerance:
		state = DryWetWall
		hLeft, huLeft, bLeft = hRight, -huRight, bRight
	default:
		state = DryDry
		return
	}

	var (
		uLeft  = huLeft / hLeft
		uRight = huRight / hRight
	)
	speed0, speed1 := waveSpeeds(sc, hLeft, hRight, uLeft, uRight)
	wave0, wave1 := waveDecomposition(sc, hLeft, hRight, huLeft, huRight, uLeft, uRight, bLeft, bRight, speed0, speed1)

	upd.distribute(sc, wave0, speed0)
	upd.distribute(sc, wave1, speed1)
	upd.MaxWavespeed = max(abs32(speed0), abs32(speed1))

	// Nothing may flow into the dry side of a wall
	switch state {
	case WetDryWall:
		upd.HUpdateRight, upd.HuUpdateRight = 0, 0
	case DryWetWall:
		upd.HUpdateLeft, upd.HuUpdateLeft = 0, 0
	}
	return
}

// waveSpeeds returns the Einfeldt bounds: the slower of the left
// characteristic and Roe speeds, and the faster of the right ones.
func waveSpeeds(sc SolverConfig, hLeft, hRight, uLeft, uRight float32) (speed0, speed1 float32) {
	var (
		sqrtHLeft  = sqrt32(hLeft)
		sqrtHRight = sqrt32(hRight)
	)
	charSpeed0 := uLeft - sc.SqrtGravity*sqrtHLeft
	charSpeed1 := uRight + sc.SqrtGravity*sqrtHRight

	hRoe := 0.5 * (hLeft + hRight)
	sqrtHRoe := sqrt32(hRoe)
	uRoe := (uLeft*sqrtHLeft + uRight*sqrtHRight) / (sqrtHLeft + sqrtHRight)

	roeSpeed0 := uRoe - sc.SqrtGravity*sqrtHRoe
	roeSpeed1 := uRoe + sc.SqrtGravity*sqrtHRoe

	speed0 = min(charSpeed0, roeSpeed0)
	speed1 = max(charSpeed1, roeSpeed1)
	return
}

// waveDecomposition solves
//
//	| 1      1      | |wave0|   | fDif0 |
//	| speed0 speed1 | |wave1| = | fDif1 |
//
// The bed term makes a lake at rest produce a zero flux jump.
func waveDecomposition(sc SolverConfig, hLeft, hRight, huLeft, huRight, uLeft, uRight, bLeft, bRight,
	speed0, speed1 float32) (wave0, wave1 float32) {
	fDif0 := huRight - huLeft
	fDif1 := huRight*uRight + sc.HalfGravity*hRight*hRight -
		(huLeft*uLeft + sc.HalfGravity*hLeft*hLeft) +
		sc.HalfGravity*(hRight+hLeft)*(bRight-bLeft)

	speedDif := speed1 - speed0
	if abs32(speedDif) < sc.ZeroTolerance {
		return 0, 0
	}
	invSpeedDif := 1. / speedDif
	wave0 = (speed1*fDif0 - fDif1) * invSpeedDif
	wave1 = (-speed0*fDif0 + fDif1) * invSpeedDif
	return
}

func (upd *Update) distribute(sc SolverConfig, wave, speed float32) {
	switch {
	case speed < -sc.ZeroTolerance:
		upd.HUpdateLeft += wave
		upd.HuUpdateLeft += wave * speed
	case speed > sc.ZeroTolerance:
		upd.HUpdateRight += wave
		upd.HuUpdateRight += wave * speed
	default:
		upd.HUpdateLeft += 0.5 * wave
		upd.HuUpdateLeft += 0.5 * wave * speed
		upd.HUpdateRight += 0.5 * wave
		upd.HuUpdateRight += 0.5 * wave * speed
	}
}
