package coordlist

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *Error) by CoordinateList operations.
var (
	ErrInvalidElement  = errors.New("coordlist: invalid element")
	ErrOutOfBounds     = errors.New("coordlist: coordinate exceeds dimension bound")
	ErrIndexOutOfRange = errors.New("coordlist: index out of range")
	ErrReleased        = errors.New("coordlist: list released")
	ErrInvalidDims     = errors.New("coordlist: invalid dimensions")
	ErrCapacity        = errors.New("coordlist: element count limit reached")
)

// Kind classifies an *Error.
type Kind int

const (
	// KindInvalidElement marks a read of a slot that holds no valid coordinate.
	KindInvalidElement Kind = iota + 1
	// KindOutOfBounds marks a write whose coordinate reaches an axis bound.
	KindOutOfBounds
	KindIndexOutOfRange
	KindReleased
	KindInvalidDims
	KindCapacity
)

func (k Kind) String() string {
	switch k {
	case KindInvalidElement:
		return "invalid_element"
	case KindOutOfBounds:
		return "out_of_bounds"
	case KindIndexOutOfRange:
		return "index_out_of_range"
	case KindReleased:
		return "released"
	case KindInvalidDims:
		return "invalid_dims"
	case KindCapacity:
		return "capacity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidElement:
		return ErrInvalidElement
	case KindOutOfBounds:
		return ErrOutOfBounds
	case KindIndexOutOfRange:
		return ErrIndexOutOfRange
	case KindReleased:
		return ErrReleased
	case KindInvalidDims:
		return ErrInvalidDims
	case KindCapacity:
		return ErrCapacity
	default:
		return nil
	}
}

// Error describes a rejected CoordinateList operation. Axis, Value and Bound
// are only meaningful when Axis >= 0.
type Error struct {
	Op    string
	Kind  Kind
	Index int
	Axis  int
	Value uint32
	Bound uint32
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidElement:
		return fmt.Sprintf("%s: element %d is invalid (axis %d holds %d, bound %d)", e.Op, e.Index, e.Axis, e.Value, e.Bound)
	case KindOutOfBounds:
		return fmt.Sprintf("%s: coordinate out of bounds at index %d (axis %d value %d >= %d)", e.Op, e.Index, e.Axis, e.Value, e.Bound)
	case KindIndexOutOfRange:
		return fmt.Sprintf("%s: index %d out of range", e.Op, e.Index)
	case KindInvalidDims:
		return fmt.Sprintf("%s: axis %d has bound %d", e.Op, e.Axis, e.Bound)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Unwrap())
	}
}

// Unwrap returns the sentinel matching e.Kind, so errors.Is works on *Error.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Process exit status codes used by command-line callers that choose to
// abort on a rejected operation.
const (
	ExitFailure        = 1
	ExitInvalidElement = 2
	ExitOutOfBounds    = 3
	ExitPrecondition   = 4
)

// ExitCode maps err to a process exit status. Invalid reads and
// out-of-bounds writes keep distinct codes; nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *Error
	if !errors.As(err, &ce) {
		return ExitFailure
	}
	switch ce.Kind {
	case KindInvalidElement:
		return ExitInvalidElement
	case KindOutOfBounds:
		return ExitOutOfBounds
	default:
		return ExitPrecondition
	}
}
