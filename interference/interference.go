package interference

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/visibility"
)

const (
	MaxRadius   = 0.0001     // meters
	Step        = 0.00000001 // meters
	SampleCount = 10001
)

// Reflectance at the boundary between the lens (n1) and the medium (n2).
func Reflectance(n1, n2 float64) float64 {
	r := (n2 - n1) / (n2 + n1)
	return r * r
}

// Transmittance at the boundary between the lens (n1) and the medium (n2).
func Transmittance(n1, n2 float64) float64 {
	return 4 * n1 * n2 / ((n2 + n1) * (n2 + n1))
}

type model struct {
	i0, r, t   float64
	lambda     float64
	lensRadius float64
	n2         float64
}

func newModel(p parameters.Parameters) model {
	n1, n2 := p.LensIndex, p.MediumIndex
	return model{
		i0:         p.SourceIntensity,
		r:          Reflectance(n1, n2),
		t:          Transmittance(n1, n2),
		lambda:     p.Wavelength(),
		lensRadius: p.LensRadius,
		n2:         n2,
	}
}

func (m model) intensity(r float64) float64 {
	phase := 2 * math.Pi / m.lambda * (r*r/m.lensRadius*m.n2 + m.lambda/2)
	return m.i0 * m.r * (1 + m.t*m.t + 2*m.t*math.Cos(phase))
}

// Intensity evaluates the reflected light intensity at radius r (meters).
// p must be valid.
func Intensity(p parameters.Parameters, r float64) float64 {
	return newModel(p).intensity(r)
}

// Generate samples the intensity over [0, MaxRadius] with a fixed Step.
// p must be valid; callers check it with Validate first.
func Generate(p parameters.Parameters) []entity.Sample {
	m := newModel(p)
	samples := make([]entity.Sample, SampleCount)
	for i := range samples {
		r := float64(i) * Step
		samples[i] = entity.Sample{Radius: r, Intensity: m.intensity(r)}
	}
	return samples
}

// DarkRingRadii returns the radii of the intensity minima up to limit:
// sqrt(m*lambda*R/n2) for m = 0, 1, ... and at most SampleCount of them.
func DarkRingRadii(p parameters.Parameters, limit float64) []float64 {
	k := p.Wavelength() * p.LensRadius / p.MediumIndex
	radii := make([]float64, 0)
	for m := 0; m < SampleCount; m++ {
		r := math.Sqrt(float64(m) * k)
		if r > limit {
			break
		}
		radii = append(radii, r)
	}
	return radii
}

// NewCurve validates p, generates the samples and fills in the summary.
func NewCurve(name string, p parameters.Parameters) (*entity.Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	samples := Generate(p)
	curve, err := entity.NewCurve(name, p, samples)
	if err != nil {
		return nil, fmt.Errorf("failed to create curve: %w", err)
	}
	curve.SetSummary(entity.Summary{
		Visibility:    visibility.Of(samples),
		DarkRingRadii: DarkRingRadii(p, MaxRadius),
	})
	log.WithFields(log.Fields{
		"time":    time.Since(startTime),
		"samples": len(samples),
	}).Debug("Curve generated")
	return curve, nil
}
