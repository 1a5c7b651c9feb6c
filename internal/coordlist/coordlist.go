package coordlist

import "github.com/banshee-data/gridcoord/internal/monitoring"

// CoordinateList is an ordered, growable list of grid coordinates bounded by
// fixed per-axis dimensions. Newly created slots are Invalid until written.
type CoordinateList struct {
	dims     Coord
	elements []Coord
	released bool
}

// New allocates a list of n Invalid slots bounded by dims. Every bound must
// be positive and n must lie in [0, MaxElements).
func New(dims Coord, n int) (*CoordinateList, error) {
	for axis, bound := range dims {
		if bound == 0 {
			return nil, &Error{Op: "create", Kind: KindInvalidDims, Index: -1, Axis: axis, Bound: bound}
		}
	}
	if n < 0 || uint64(n) >= MaxElements {
		return nil, &Error{Op: "create", Kind: KindCapacity, Index: n, Axis: -1}
	}

	l := &CoordinateList{dims: dims}
	if n > 0 {
		l.elements = make([]Coord, n)
		for i := range l.elements {
			l.elements[i] = dims
		}
	}
	monitoring.Logf("[coordlist] created list dims=%s elements=%d", dims, n)
	return l, nil
}

// Release drops the list's storage. Any later operation on l fails with
// ErrReleased, as does releasing twice.
func (l *CoordinateList) Release() error {
	if l == nil || l.released {
		return &Error{Op: "destroy", Kind: KindReleased, Index: -1, Axis: -1}
	}
	l.elements = nil
	l.released = true
	return nil
}

// Len returns the number of slots. Nil and released lists report zero.
func (l *CoordinateList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elements)
}

// Cap returns the number of slots storage is currently reserved for.
func (l *CoordinateList) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.elements)
}

// Dims returns the per-axis bounds fixed at construction.
func (l *CoordinateList) Dims() Coord {
	if l == nil {
		return Coord{}
	}
	return l.dims
}

// Get returns the coordinate stored at index. A slot that was never written
// (or holds any component at or past its bound) yields ErrInvalidElement
// rather than stale data.
func (l *CoordinateList) Get(index int) (Coord, error) {
	var c Coord
	err := l.GetInto(&c, index)
	return c, err
}

// GetInto copies the coordinate at index into out. out is left untouched on
// error.
func (l *CoordinateList) GetInto(out *Coord, index int) error {
	if err := l.checkIndex("get", index); err != nil {
		return err
	}
	c := l.elements[index]
	if axis := c.firstOutside(l.dims); axis >= 0 {
		return &Error{Op: "get", Kind: KindInvalidElement, Index: index, Axis: axis, Value: c[axis], Bound: l.dims[axis]}
	}
	*out = c
	return nil
}

// Raw returns the slot contents at index without the validity check, so an
// Invalid slot reads as the sentinel pattern (the bounds themselves).
func (l *CoordinateList) Raw(index int) (Coord, error) {
	if err := l.checkIndex("raw", index); err != nil {
		return Coord{}, err
	}
	return l.elements[index], nil
}

// Valid reports whether the slot at index holds a coordinate inside the
// bounds. Out-of-range indices are not valid.
func (l *CoordinateList) Valid(index int) bool {
	if l.checkIndex("valid", index) != nil {
		return false
	}
	return l.elements[index].Within(l.dims)
}

// Set overwrites the slot at index with element. Every component must be
// below its axis bound; otherwise ErrOutOfBounds is returned and nothing is
// stored.
func (l *CoordinateList) Set(element Coord, index int) error {
	if err := l.checkIndex("set", index); err != nil {
		return err
	}
	if err := l.checkBounds("set", element, index); err != nil {
		return err
	}
	l.elements[index] = element
	return nil
}

// Append adds element as a new final slot. Validation matches Set; a
// rejected append leaves the list unchanged.
func (l *CoordinateList) Append(element Coord) error {
	if l == nil || l.released {
		return &Error{Op: "append", Kind: KindReleased, Index: -1, Axis: -1}
	}
	n := len(l.elements)
	if uint64(n)+1 >= MaxElements {
		return &Error{Op: "append", Kind: KindCapacity, Index: n, Axis: -1}
	}
	if err := l.checkBounds("append", element, n); err != nil {
		return err
	}

	// The new slot starts Invalid and only becomes Valid through Set.
	l.elements = append(l.elements, l.dims)
	return l.Set(element, n)
}

func (l *CoordinateList) checkIndex(op string, index int) error {
	if l == nil || l.released {
		return &Error{Op: op, Kind: KindReleased, Index: index, Axis: -1}
	}
	if index < 0 || index >= len(l.elements) {
		return &Error{Op: op, Kind: KindIndexOutOfRange, Index: index, Axis: -1}
	}
	return nil
}

func (l *CoordinateList) checkBounds(op string, c Coord, index int) error {
	if axis := c.firstOutside(l.dims); axis >= 0 {
		return &Error{Op: op, Kind: KindOutOfBounds, Index: index, Axis: axis, Value: c[axis], Bound: l.dims[axis]}
	}
	return nil
}
