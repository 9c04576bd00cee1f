// Package gridgraph provides the neighbourhood geometry of a 2D grid of cells:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Row-major cell indexing
//   - Closed neighbourhoods and binary dilation of cell sets
package gridgraph

import "fmt"

// NewGridGraph constructs a width×height GridGraph.
// Returns ErrEmptyGrid for non-positive dimensions, ErrConnectivity for an unknown conn.
// Complexity: O(1).
func NewGridGraph(width, height int, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	var offsets [][2]int
	switch conn {
	case Conn4:
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	case Conn8:
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	default:
		return nil, fmt.Errorf("NewGridGraph: %w", ErrConnectivity)
	}

	return &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            conn,
		neighborOffsets: offsets,
	}, nil
}

// NewSquare constructs an n×n GridGraph.
func NewSquare(n int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(n, n, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns a copy of the neighbour offsets (dx, dy).
// Complexity: O(d).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	out := make([][2]int, len(gg.neighborOffsets))
	copy(out, gg.neighborOffsets)

	return out
}

// StructuringElement returns the dilation footprint: the center followed by the neighbour offsets.
func (gg *GridGraph) StructuringElement() [][2]int {
	return append([][2]int{{0, 0}}, gg.neighborOffsets...)
}

// Cells returns Width×Height.
func (gg *GridGraph) Cells() int { return gg.Width * gg.Height }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ClosedNeighborhood returns idx and every in-bounds neighbour of idx, ascending.
// Complexity: O(d).
func (gg *GridGraph) ClosedNeighborhood(idx int) ([]int, error) {
	if idx < 0 || idx >= gg.Cells() {
		return nil, fmt.Errorf("ClosedNeighborhood(%d): %w", idx, ErrCellIndex)
	}
	x, y := gg.Coordinate(idx)
	// Scan the bounding box row-major so the result comes out sorted.
	out := make([]int, 0, len(gg.neighborOffsets)+1)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if gg.InBounds(nx, ny) && gg.reaches(dx, dy) {
				out = append(out, gg.Index(nx, ny))
			}
		}
	}

	return out, nil
}

// reaches reports whether offset (dx,dy) belongs to the structuring element.
func (gg *GridGraph) reaches(dx, dy int) bool {
	if dx == 0 && dy == 0 {
		return true
	}
	for _, d := range gg.neighborOffsets {
		if d[0] == dx && d[1] == dy {
			return true
		}
	}

	return false
}

// Dilate returns the binary dilation of cells (row-major, length Width×Height)
// by the structuring element: a cell is set in the output iff some set input cell
// lies in its closed neighbourhood. Cells beyond the edges are dropped.
// Complexity: O(W×H×d).
func (gg *GridGraph) Dilate(cells []bool) ([]bool, error) {
	if len(cells) != gg.Cells() {
		return nil, fmt.Errorf("Dilate: got %d cells, want %d: %w", len(cells), gg.Cells(), ErrCellCount)
	}
	out := make([]bool, len(cells))
	elem := gg.StructuringElement()
	for idx, on := range cells {
		if !on {
			continue
		}
		x, y := gg.Coordinate(idx)
		for _, d := range elem {
			nx, ny := x+d[0], y+d[1]
			if gg.InBounds(nx, ny) {
				out[gg.Index(nx, ny)] = true
			}
		}
	}

	return out, nil
}
