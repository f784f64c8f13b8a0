package polynomial

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/polyalg/polyalg/utils/sampling"
)

// PrecisionStats is a struct storing statistics about the pointwise
// deviation |p(x) - q(x)| between two polynomials, sampled at pseudo-random
// points of an interval.
type PrecisionStats struct {
	MinDelta    float64
	MaxDelta    float64
	MeanDelta   float64
	MedianDelta float64
	StdDelta    float64
}

// NewPrecisionStats samples n points of [a, b] drawn from prng and collects
// statistics about |p(x) - q(x)|. The polynomials may have different
// degrees. An inverted interval or a non-positive sample count is a
// degenerate-input error.
func NewPrecisionStats(p, q Polynomial, a, b float64, n int, prng sampling.PRNG) (prec PrecisionStats, err error) {

	if b < a {
		return PrecisionStats{}, fmt.Errorf("cannot NewPrecisionStats: %w: inverted interval [%v, %v]", ErrDegenerateInput, a, b)
	}

	if n < 1 {
		return PrecisionStats{}, fmt.Errorf("cannot NewPrecisionStats: %w: sample count must be >= 1 but is %d", ErrDegenerateInput, n)
	}

	deltas := make([]float64, n)
	for i := range deltas {
		x := sampling.RandFloat64(prng, a, b)
		deltas[i] = math.Abs(p.Evaluate(x) - q.Evaluate(x))
	}

	if prec.MinDelta, err = stats.Min(deltas); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MaxDelta, err = stats.Max(deltas); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MeanDelta, err = stats.Mean(deltas); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MedianDelta, err = stats.Median(deltas); err != nil {
		return PrecisionStats{}, err
	}
	if prec.StdDelta, err = stats.StandardDeviation(deltas); err != nil {
		return PrecisionStats{}, err
	}

	return prec, nil
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌──────────┬───────────┐
│ MIN Delta│ %.3e │
│ MAX Delta│ %.3e │
│ AVG Delta│ %.3e │
│ MED Delta│ %.3e │
│ STD Delta│ %.3e │
└──────────┴───────────┘
`,
		prec.MinDelta,
		prec.MaxDelta,
		prec.MeanDelta,
		prec.MedianDelta,
		prec.StdDelta)
}
