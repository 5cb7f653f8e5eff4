package parameters

import (
	"errors"
	"math"
)

// ErrInvalidParameters is returned for any parameter set with a field that is
// not a finite positive number. It carries no field-level detail.
var ErrInvalidParameters = errors.New("none of the values may be non-positive")

const (
	DefaultLensRadius      = 0.001 // meters
	DefaultLensIndex       = 1.5
	DefaultPlateIndex      = 1.3
	DefaultMediumIndex     = 1.0
	DefaultWavelengthNm    = 578.4 // nanometers
	DefaultSourceIntensity = 1.0   // W/m²
)

// Parameters describes one Newton's rings setup.
// PlateIndex is collected but does not take part in the intensity formula.
type Parameters struct {
	LensRadius      float64 `yaml:"lens_radius" json:"lensRadius"`
	LensIndex       float64 `yaml:"lens_index" json:"lensIndex"`
	PlateIndex      float64 `yaml:"plate_index" json:"plateIndex"`
	MediumIndex     float64 `yaml:"medium_index" json:"mediumIndex"`
	WavelengthNm    float64 `yaml:"wavelength_nm" json:"wavelengthNm"`
	SourceIntensity float64 `yaml:"source_intensity" json:"sourceIntensity"`
}

func Default() Parameters {
	return Parameters{
		LensRadius:      DefaultLensRadius,
		LensIndex:       DefaultLensIndex,
		PlateIndex:      DefaultPlateIndex,
		MediumIndex:     DefaultMediumIndex,
		WavelengthNm:    DefaultWavelengthNm,
		SourceIntensity: DefaultSourceIntensity,
	}
}

func (p Parameters) Validate() error {
	for _, v := range p.values() {
		if !(v > 0) || math.IsInf(v, 1) {
			return ErrInvalidParameters
		}
	}
	return nil
}

// Wavelength returns the wavelength in meters.
func (p Parameters) Wavelength() float64 {
	return p.WavelengthNm * 1e-9
}

func (p Parameters) values() [6]float64 {
	return [6]float64{
		p.LensRadius,
		p.LensIndex,
		p.PlateIndex,
		p.MediumIndex,
		p.WavelengthNm,
		p.SourceIntensity,
	}
}
