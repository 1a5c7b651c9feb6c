// Package coordlist owns the sparse coordinate list used to record grid
// positions.
//
// Responsibilities: allocation of sentinel-marked slots, bounds-checked
// reads and writes, append-with-growth, and per-axis summaries.
// Key types: CoordinateList, Coord, Error, Summary.
//
// A slot is Invalid until it is written through Set or Append. Invalid
// slots hold the axis bounds themselves, which no valid coordinate can
// reach, so Get can refuse them without extra bookkeeping.
//
// The list is not safe for concurrent use; callers own it exclusively.
package coordlist
