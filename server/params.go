package server

import (
	"math"
	"net/url"
	"strconv"

	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
)

// Form field names.
const (
	fieldRadius     = "radius"
	fieldLensIndex  = "nLens"
	fieldPlateIndex = "nPlate"
	fieldMedium     = "nMedium"
	fieldWavelength = "wavelength"
	fieldIntensity  = "intensity"

	lastPrefix = "last_"
)

type field struct {
	Name  string
	Label string
	Step  string
	Value string
}

func fieldNames() []string {
	return []string{fieldRadius, fieldLensIndex, fieldPlateIndex, fieldMedium, fieldWavelength, fieldIntensity}
}

func bind(p *parameters.Parameters) map[string]*float64 {
	return map[string]*float64{
		fieldRadius:     &p.LensRadius,
		fieldLensIndex:  &p.LensIndex,
		fieldPlateIndex: &p.PlateIndex,
		fieldMedium:     &p.MediumIndex,
		fieldWavelength: &p.WavelengthNm,
		fieldIntensity:  &p.SourceIntensity,
	}
}

// parseParams reads the six fields under prefix. Missing fields keep their
// defaults, unparsable ones become NaN and fail validation. ok reports
// whether any field was present.
func parseParams(values url.Values, prefix string) (p parameters.Parameters, ok bool) {
	p = parameters.Default()
	for name, dst := range bind(&p) {
		if !values.Has(prefix + name) {
			continue
		}
		ok = true
		v, err := strconv.ParseFloat(values.Get(prefix+name), 64)
		if err != nil {
			v = math.NaN()
		}
		*dst = v
	}
	return p, ok
}

func encodeParams(values url.Values, prefix string, p parameters.Parameters) {
	for name, src := range bind(&p) {
		values.Set(prefix+name, formatFloat(*src))
	}
}

func formFields(p parameters.Parameters, l locale.Locale) []field {
	lb := l.Labels()
	labels := map[string]string{
		fieldRadius:     lb.LensRadius,
		fieldLensIndex:  lb.LensIndex,
		fieldPlateIndex: lb.PlateIndex,
		fieldMedium:     lb.MediumIndex,
		fieldWavelength: lb.WavelengthNm,
		fieldIntensity:  lb.Intensity,
	}
	steps := map[string]string{
		fieldRadius:     "0.001",
		fieldLensIndex:  "0.1",
		fieldPlateIndex: "0.1",
		fieldMedium:     "0.1",
	}
	values := bind(&p)

	fields := make([]field, 0, len(values))
	for _, name := range fieldNames() {
		step, ok := steps[name]
		if !ok {
			step = "any"
		}
		fields = append(fields, field{
			Name:  name,
			Label: labels[name],
			Step:  step,
			Value: formatFloat(*values[name]),
		})
	}
	return fields
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
