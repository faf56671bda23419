package montecarlo

import (
	"fmt"
	"math"
)

// Linspace returns count evenly spaced values from start to stop, both
// inclusive. count == 1 returns [start].
func Linspace(start, stop float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("Linspace: count=%d < 1: %w", count, ErrInvalidRange)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("Linspace: bounds [%g,%g]: %w", start, stop, ErrInvalidRange)
	}

	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(count-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the last point so rounding never pushes it past stop.
	out[count-1] = stop
	return out, nil
}
