// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lightsout.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrCellIndex indicates a cell index out of range.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrCellCount indicates a cell set whose length differs from Width×Height.
	ErrCellCount = errors.New("gridgraph: cell count does not match grid size")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W. Its structuring element is the plus sign.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW (3×3 box).
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity accepts 4, 8 (as text) or the String forms.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	}

	return Conn4, fmt.Errorf("%q: %w", s, ErrConnectivity)
}

// GridGraph is an immutable Width×Height grid with a fixed connectivity.
// neighborOffsets is precomputed for adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	neighborOffsets [][2]int
}
