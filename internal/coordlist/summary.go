package coordlist

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AxisSummary holds descriptive statistics of one axis over the valid slots.
type AxisSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary describes a list's occupancy and the spread of its valid slots.
type Summary struct {
	Dims         Coord             `json:"dims"`
	Len          int               `json:"len"`
	ValidCount   int               `json:"valid_count"`
	InvalidCount int               `json:"invalid_count"`
	Axes         [Dims]AxisSummary `json:"axes"`
}

// Summarize walks every slot of l by index. Invalid slots are counted but
// excluded from the axis statistics; with no valid slots the axes stay zero.
// StdDev is the unbiased sample standard deviation (zero for one slot).
func Summarize(l *CoordinateList) Summary {
	s := Summary{Dims: l.Dims(), Len: l.Len()}

	var columns [Dims][]float64
	for axis := range columns {
		columns[axis] = make([]float64, 0, s.Len)
	}
	for i := 0; i < s.Len; i++ {
		c, err := l.Get(i)
		if err != nil {
			s.InvalidCount++
			continue
		}
		s.ValidCount++
		for axis, v := range c {
			columns[axis] = append(columns[axis], float64(v))
		}
	}
	if s.ValidCount == 0 {
		return s
	}

	for axis, col := range columns {
		a := AxisSummary{
			Mean: stat.Mean(col, nil),
			Min:  floats.Min(col),
			Max:  floats.Max(col),
		}
		if len(col) > 1 {
			a.StdDev = stat.StdDev(col, nil)
		}
		s.Axes[axis] = a
	}
	return s
}
