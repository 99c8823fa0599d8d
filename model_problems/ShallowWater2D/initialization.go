package ShallowWater2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/goswe/grid"
)

type InitType uint8

const (
	DAMBREAK InitType = iota
	RADIALDAMBREAK
	LAKEATREST
	STILL
)

var (
	InitNames = map[string]InitType{
		"dambreak":       DAMBREAK,
		"radialdambreak": RADIALDAMBREAK,
		"lakeatrest":     LAKEATREST,
		"still":          STILL,
	}
	InitPrintNames = []string{"Dam Break", "Radial Dam Break", "Lake at Rest", "Still Water"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

// InitParams parametrize the initial conditions. Lengths are physical units
// measured from the lower left corner of the domain.
type InitParams struct {
	HLeft, HRight  float32 // Depth behind and in front of the dam
	DamPosition    float32 // x of a straight dam, radius of a circular one
	CenterX        float32 // Center of the circular dam and of the bed hump
	CenterY        float32
	Surface        float32 // Still water level for LAKEATREST
	HumpHeight     float32
	HumpRadius     float32
	ParallelDegree int
}

// InitialState returns global fields sized (nx+2) x (ny+2), ghosts included.
func (it InitType) InitialState(nx, ny int, dx, dy float32, ip InitParams) (h, hu, hv, b *grid.Grid) {
	h, hu, hv, b = grid.NewGrid(nx+2, ny+2), grid.NewGrid(nx+2, ny+2), grid.NewGrid(nx+2, ny+2), grid.NewGrid(nx+2, ny+2)
	center := func(x, y int) (xc, yc float32) {
		return (float32(x) - 0.5) * dx, (float32(y) - 0.5) * dy
	}
	switch it {
	case DAMBREAK:
		h.Apply(ip.ParallelDegree, func(x, y int, _ float32) float32 {
			if xc, _ := center(x, y); xc < ip.DamPosition {
				return ip.HLeft
			}
			return ip.HRight
		})
	case RADIALDAMBREAK:
		h.Apply(ip.ParallelDegree, func(x, y int, _ float32) float32 {
			xc, yc := center(x, y)
			if hypot(xc-ip.CenterX, yc-ip.CenterY) < ip.DamPosition {
				return ip.HLeft
			}
			return ip.HRight
		})
	case LAKEATREST:
		b.Apply(ip.ParallelDegree, func(x, y int, _ float32) float32 {
			xc, yc := center(x, y)
			r := hypot(xc-ip.CenterX, yc-ip.CenterY) / ip.HumpRadius
			return ip.HumpHeight * float32(math.Exp(-float64(r*r)))
		})
		h.Apply(ip.ParallelDegree, func(x, y int, _ float32) float32 {
			return max(0, ip.Surface-b.Get(x, y))
		})
	case STILL:
		h.Fill(ip.HLeft)
	default:
		panic(fmt.Errorf("unknown init type %d", it))
	}
	return
}

func hypot(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}
