// Package gridgraph treats a rectangular grid of cells as a graph whose edges join
// neighbouring cells, and exposes the neighbourhood geometry the toggle operator needs.
//
// What:
//
//   - GridGraph fixes Width, Height and a Connectivity (Conn4 or Conn8).
//   - Cells are addressed row-major: Index(x,y) = y*Width + x, Coordinate inverts it.
//   - ClosedNeighborhood(i) lists cell i together with its in-bounds neighbours.
//   - Dilate performs a binary dilation of a cell set with the structuring element
//     {center} ∪ neighbour offsets, clipped at the grid edges.
//
// Why:
//
//   - Pressing a Lights Out cell toggles exactly its closed neighbourhood, so
//     dilating a single-cell set yields one row of the toggle operator.
//   - Neighbour offsets come in ± pairs, so the relation "j ∈ N[i]" is symmetric.
//
// Complexity:
//
//   - ClosedNeighborhood: O(d), Dilate: O(W×H×d)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrConnectivity: unknown Connectivity value.
//   - ErrCellIndex: index outside [0, W×H).
//   - ErrCellCount: a cell set whose length is not W×H.
package gridgraph
