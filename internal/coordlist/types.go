package coordlist

import (
	"math"
	"strconv"
	"strings"
)

// Dims is the number of grid axes carried by every coordinate.
const Dims = 3

// MaxElements is the reserved element count. A list always holds strictly
// fewer elements than this.
const MaxElements = math.MaxUint32

// Coord is a point's index along every grid axis. The same shape describes
// per-axis exclusive bounds.
type Coord [Dims]uint32

// String formats c as "[x,y,z]".
func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for axis, v := range c {
		if axis > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}

// Within reports whether every component of c is below the matching bound.
func (c Coord) Within(bounds Coord) bool {
	return c.firstOutside(bounds) < 0
}

// firstOutside returns the first axis whose component is >= its bound, or -1.
func (c Coord) firstOutside(bounds Coord) int {
	for axis := 0; axis < Dims; axis++ {
		if c[axis] >= bounds[axis] {
			return axis
		}
	}
	return -1
}
