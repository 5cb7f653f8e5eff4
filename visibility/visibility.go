// Package visibility measures fringe contrast of an intensity curve.
package visibility

import (
	"math"

	"github.com/AnkushinDaniil/newton-rings/entity"
)

// MinMax returns the smallest and the largest intensity of samples.
func MinMax(samples []entity.Sample) (minimum, maximum float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	minimum, maximum = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if s.Intensity < minimum {
			minimum = s.Intensity
		}
		if s.Intensity > maximum {
			maximum = s.Intensity
		}
	}
	return minimum, maximum
}

// Of returns (Imax-Imin)/(Imax+Imin) over all samples, or 0 when the curve
// is empty or completely dark.
func Of(samples []entity.Sample) float64 {
	minimum, maximum := MinMax(samples)
	if maximum+minimum == 0 {
		return 0
	}
	return (maximum - minimum) / (maximum + minimum)
}
