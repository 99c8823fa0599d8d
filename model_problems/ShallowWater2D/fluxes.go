package ShallowWater2D

import (
	"sync"

	"github.com/notargets/goswe/riemann"
)

// sweep computes the net updates of every interface. Both directions read
// only the state left by the previous step and write disjoint buffers, so all
// buckets of both sweeps run at once.
func (blk *Block) sweep() {
	var (
		wg = sync.WaitGroup{}
	)
	for np := 0; np < blk.sweepX.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			rMin, rMax := blk.sweepX.GetBucketRange(np)
			blk.maxSpeedX[np] = blk.sweepHorizontal(rMin, rMax)
		}(np)
	}
	for np := 0; np < blk.sweepY.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			rMin, rMax := blk.sweepY.GetBucketRange(np)
			blk.maxSpeedY[np] = blk.sweepVertical(rMin, rMax)
		}(np)
	}
	wg.Wait()
}

// sweepHorizontal fills x interface rows [rMin, rMax), row r lies between
// cells of grid row r+1.
func (blk *Block) sweepHorizontal(rMin, rMax int) (maxSpeed float32) {
	var (
		sc = blk.Config
		nx = blk.NX
	)
	for r := rMin; r < rMax; r++ {
		i := r + 1
		h, hu, b := blk.H.Row(i), blk.HU.Row(i), blk.B.Row(i)
		for j := 1; j <= nx+1; j++ {
			upd := riemann.FWave(sc, h[j-1], h[j], hu[j-1], hu[j], b[j-1], b[j])
			blk.updatesX[blk.layoutX.Offset(j-1, r)] = upd
			maxSpeed = max(maxSpeed, upd.MaxWavespeed)
		}
	}
	return
}

// sweepVertical fills y interface rows [rMin, rMax), row r lies between grid
// rows r and r+1. The normal momentum is hv.
func (blk *Block) sweepVertical(rMin, rMax int) (maxSpeed float32) {
	var (
		sc = blk.Config
		nx = blk.NX
	)
	for r := rMin; r < rMax; r++ {
		hB, hvB, bB := blk.H.Row(r), blk.HV.Row(r), blk.B.Row(r)
		hT, hvT, bT := blk.H.Row(r+1), blk.HV.Row(r+1), blk.B.Row(r+1)
		for j := 1; j <= nx; j++ {
			upd := riemann.FWave(sc, hB[j], hT[j], hvB[j], hvT[j], bB[j], bT[j])
			blk.updatesY[blk.layoutY.Offset(j-1, r)] = upd
			maxSpeed = max(maxSpeed, upd.MaxWavespeed)
		}
	}
	return
}

// reduceWavespeed folds the per bucket maxima, it must follow the sweep barrier.
func (blk *Block) reduceWavespeed() (maxSpeed float32) {
	for _, s := range blk.maxSpeedX {
		maxSpeed = max(maxSpeed, s)
	}
	for _, s := range blk.maxSpeedY {
		maxSpeed = max(maxSpeed, s)
	}
	return
}

// updateRows applies the net updates to interior rows [rMin, rMax), rows
// counted from zero. Every cell is written by exactly one bucket.
func (blk *Block) updateRows(dt float32, rMin, rMax int) {
	var (
		nx      = blk.NX
		dtDx    = dt / blk.DX
		dtDy    = dt / blk.DY
		dryTol  = blk.Config.DryTolerance
		lx, ly  = blk.layoutX, blk.layoutY
		updX    = blk.updatesX
		updY    = blk.updatesY
		hG, huG = blk.H, blk.HU
		hvG     = blk.HV
	)
	for r := rMin; r < rMax; r++ {
		var (
			i          = r + 1
			h, hu, hv  = hG.Row(i), huG.Row(i), hvG.Row(i)
			rowX       = updX[lx.Offset(0, r) : lx.Offset(0, r)+lx.Width]
			rowBelow   = updY[ly.Offset(0, r) : ly.Offset(0, r)+ly.Width]
			rowAbove   = updY[ly.Offset(0, r+1) : ly.Offset(0, r+1)+ly.Width]
			west, east riemann.Update
		)
		for j := 1; j <= nx; j++ {
			west, east = rowX[j-1], rowX[j]
			south, north := rowBelow[j-1], rowAbove[j-1]
			h[j] -= dtDx*(west.HUpdateRight+east.HUpdateLeft) + dtDy*(south.HUpdateRight+north.HUpdateLeft)
			hu[j] -= dtDx * (west.HuUpdateRight + east.HuUpdateLeft)
			hv[j] -= dtDy * (south.HuUpdateRight + north.HuUpdateLeft)
			if h[j] < dryTol {
				hu[j], hv[j] = 0, 0
			}
			if h[j] < 0 {
				h[j] = 0
			}
		}
	}
}
