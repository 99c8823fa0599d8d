package ShallowWater2D

import (
	"github.com/notargets/goswe/utils"
)

// SetParallelDegree partitions the x sweep, the y sweep and the interior
// update by rows. A ProcLimit of zero uses one goroutine per CPU.
func (blk *Block) SetParallelDegree(ProcLimit int) {
	blk.ParallelDegree = utils.ParallelDegreeFor(ProcLimit, blk.NY)
	blk.sweepX = utils.NewPartitionMap(blk.ParallelDegree, blk.layoutX.Height)
	blk.sweepY = utils.NewPartitionMap(blk.ParallelDegree, blk.layoutY.Height)
	blk.interior = utils.NewPartitionMap(blk.ParallelDegree, blk.NY)
	blk.maxSpeedX = make([]float32, blk.ParallelDegree)
	blk.maxSpeedY = make([]float32, blk.ParallelDegree)
}
