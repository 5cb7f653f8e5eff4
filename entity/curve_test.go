package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
)

func TestNewCurve(t *testing.T) {
	_, err := NewCurve("", parameters.Default(), []Sample{{0, 1}})
	assert.Error(t, err)

	_, err = NewCurve("rings", parameters.Default(), nil)
	assert.Error(t, err)

	c, err := NewCurve("rings", parameters.Default(), []Sample{{0, 1}, {1e-8, 2}})
	require.NoError(t, err)
	assert.Equal(t, "rings", c.Name())
	assert.Equal(t, []float64{0, 1e-8}, c.Radii())
	assert.Equal(t, []float64{1, 2}, c.Intensities())
	require.Len(t, c.Data(), 2)
	assert.Equal(t, 2.0, c.Data()[1].Value)
}

func TestCurve_Series(t *testing.T) {
	c, err := NewCurve("rings", parameters.Default(), []Sample{{0, 1}})
	require.NoError(t, err)
	c.SetSummary(Summary{Visibility: 0.5})

	s := c.Series(locale.English)
	assert.Equal(t, "Radius of ring, m", s.XAxis)
	assert.Equal(t, "Light intensity, W/m²", s.YAxis)
	assert.Equal(t, c.Samples(), s.Samples)
	assert.Equal(t, 0.5, s.Summary.Visibility)
}
