package types

import (
	"fmt"
	"strings"
)

// BoundaryType classifies how the ghost cells along one block edge are filled.
type BoundaryType uint8

const (
	Outflow BoundaryType = iota // Zero gradient copy of the interior
	Wall                        // Mirror, normal momentum negated
	Inflow                      // Externally supplied state
	Connect                     // Halo exchange with a neighboring block
	Passive                     // Left untouched
)

var (
	BoundaryTypeNames = []string{"Outflow", "Wall", "Inflow", "Connect", "Passive"}
	BoundaryTypeMap   = map[string]BoundaryType{
		"outflow": Outflow,
		"out":     Outflow,
		"wall":    Wall,
		"inflow":  Inflow,
		"in":      Inflow,
		"connect": Connect,
		"passive": Passive,
		"none":    Passive,
	}
)

func (bt BoundaryType) String() string {
	if int(bt) < len(BoundaryTypeNames) {
		return BoundaryTypeNames[bt]
	}
	return "Unknown"
}

func ParseBoundaryType(name string) (bt BoundaryType, err error) {
	var ok bool
	if bt, ok = BoundaryTypeMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown boundary type %q", name)
	}
	return
}

// BoundaryEdge names one side of a block.
type BoundaryEdge uint8

const (
	BndLeft BoundaryEdge = iota
	BndRight
	BndBottom
	BndTop
)

var (
	BoundaryEdges     = [4]BoundaryEdge{BndLeft, BndRight, BndBottom, BndTop}
	BoundaryEdgeNames = []string{"Left", "Right", "Bottom", "Top"}
	BoundaryEdgeMap   = map[string]BoundaryEdge{
		"left":   BndLeft,
		"west":   BndLeft,
		"right":  BndRight,
		"east":   BndRight,
		"bottom": BndBottom,
		"south":  BndBottom,
		"top":    BndTop,
		"north":  BndTop,
	}
)

func (be BoundaryEdge) String() string {
	if int(be) < len(BoundaryEdgeNames) {
		return BoundaryEdgeNames[be]
	}
	return "Unknown"
}

// Opposite is the edge of a neighbor that touches this one.
func (be BoundaryEdge) Opposite() BoundaryEdge {
	switch be {
	case BndLeft:
		return BndRight
	case BndRight:
		return BndLeft
	case BndBottom:
		return BndTop
	default:
		return BndBottom
	}
}

// Vertical is true for the left and right edges, whose normal is x.
func (be BoundaryEdge) Vertical() bool {
	return be == BndLeft || be == BndRight
}

func ParseBoundaryEdge(name string) (be BoundaryEdge, err error) {
	var ok bool
	if be, ok = BoundaryEdgeMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown boundary edge %q", name)
	}
	return
}

// Boundaries holds the classification of the four edges, indexed by BoundaryEdge.
type Boundaries [4]BoundaryType

func AllBoundaries(bt BoundaryType) Boundaries {
	return Boundaries{bt, bt, bt, bt}
}

// ParseBoundaries reads an edge name to type name map; edges not named keep def.
func ParseBoundaries(names map[string]string, def BoundaryType) (bs Boundaries, err error) {
	bs = AllBoundaries(def)
	for edgeName, typeName := range names {
		var (
			be BoundaryEdge
			bt BoundaryType
		)
		if be, err = ParseBoundaryEdge(edgeName); err != nil {
			return
		}
		if bt, err = ParseBoundaryType(typeName); err != nil {
			return
		}
		bs[be] = bt
	}
	return
}
