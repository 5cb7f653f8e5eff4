package parameters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	require.NoError(t, p.Validate())
	assert.Equal(t, 0.001, p.LensRadius)
	assert.Equal(t, 1.5, p.LensIndex)
	assert.Equal(t, 1.3, p.PlateIndex)
	assert.Equal(t, 1.0, p.MediumIndex)
	assert.Equal(t, 578.4, p.WavelengthNm)
	assert.Equal(t, 1.0, p.SourceIntensity)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Parameters)
	}{
		{"zero lens radius", func(p *Parameters) { p.LensRadius = 0 }},
		{"negative lens index", func(p *Parameters) { p.LensIndex = -1.5 }},
		{"zero plate index", func(p *Parameters) { p.PlateIndex = 0 }},
		{"negative medium index", func(p *Parameters) { p.MediumIndex = -0.1 }},
		{"negative wavelength", func(p *Parameters) { p.WavelengthNm = -5 }},
		{"zero intensity", func(p *Parameters) { p.SourceIntensity = 0 }},
		{"NaN wavelength", func(p *Parameters) { p.WavelengthNm = math.NaN() }},
		{"infinite lens radius", func(p *Parameters) { p.LensRadius = math.Inf(1) }},
		{"all invalid", func(p *Parameters) { *p = Parameters{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.modify(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParameters)
		})
	}
}

func TestValidate_SingleMessage(t *testing.T) {
	a := Parameters{LensRadius: 0, LensIndex: 1, PlateIndex: 1, MediumIndex: 1, WavelengthNm: 1, SourceIntensity: 1}
	b := Parameters{LensRadius: 1, LensIndex: 1, PlateIndex: 1, MediumIndex: 1, WavelengthNm: -1, SourceIntensity: 1}

	assert.Equal(t, a.Validate().Error(), b.Validate().Error())
	assert.Equal(t, "none of the values may be non-positive", a.Validate().Error())
}

func TestWavelength(t *testing.T) {
	p := Default()
	assert.InDelta(t, 5.784e-7, p.Wavelength(), 1e-20)
}
