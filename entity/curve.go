package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
)

// Sample is the light intensity at one ring radius.
type Sample struct {
	Radius    float64 `json:"radius"`    // meters
	Intensity float64 `json:"intensity"` // unit of the source intensity
}

// Summary holds values derived from a curve.
type Summary struct {
	Visibility    float64   `json:"visibility"`
	DarkRingRadii []float64 `json:"darkRingRadii"`
}

// Curve is a generated intensity curve, ordered by radius.
type Curve struct {
	name    string
	params  parameters.Parameters
	samples []Sample
	summary Summary
}

func NewCurve(name string, params parameters.Parameters, samples []Sample) (*Curve, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(samples) == 0 {
		return nil, errors.New("curve has no samples")
	}
	return &Curve{name: name, params: params, samples: samples}, nil
}

func (c *Curve) Name() string {
	return c.name
}

func (c *Curve) Params() parameters.Parameters {
	return c.params
}

func (c *Curve) Samples() []Sample {
	return c.samples
}

func (c *Curve) Summary() Summary {
	return c.summary
}

func (c *Curve) SetSummary(s Summary) {
	c.summary = s
}

func (c *Curve) Radii() []float64 {
	radii := make([]float64, len(c.samples))
	for i, s := range c.samples {
		radii[i] = s.Radius
	}
	return radii
}

func (c *Curve) Intensities() []float64 {
	values := make([]float64, len(c.samples))
	for i, s := range c.samples {
		values[i] = s.Intensity
	}
	return values
}

// Data returns the intensities as echarts line data.
func (c *Curve) Data() []opts.LineData {
	data := make([]opts.LineData, len(c.samples))
	for i, s := range c.samples {
		data[i] = opts.LineData{Value: s.Intensity}
	}
	return data
}

// Series is the hand-off object for renderers: the samples plus display labels.
type Series struct {
	Title      string                `json:"title"`
	XAxis      string                `json:"xAxis"`
	YAxis      string                `json:"yAxis"`
	Parameters parameters.Parameters `json:"parameters"`
	Samples    []Sample              `json:"samples"`
	Summary    Summary               `json:"summary"`
}

func (c *Curve) Series(l locale.Locale) Series {
	lb := l.Labels()
	return Series{
		Title:      lb.Title,
		XAxis:      lb.XAxis,
		YAxis:      lb.YAxis,
		Parameters: c.params,
		Samples:    c.samples,
		Summary:    c.summary,
	}
}
