package locale

import "fmt"

// Locale is the working language of labels and warnings.
type Locale uint8

const (
	Russian Locale = iota
	English
)

type Labels struct {
	Title   string `json:"title"`
	XAxis   string `json:"xAxis"`
	YAxis   string `json:"yAxis"`
	Warning string `json:"-"`

	// Form texts.
	Heading      string `json:"-"`
	Caution      string `json:"-"`
	Plot         string `json:"-"`
	LensRadius   string `json:"-"`
	LensIndex    string `json:"-"`
	PlateIndex   string `json:"-"`
	MediumIndex  string `json:"-"`
	WavelengthNm string `json:"-"`
	Intensity    string `json:"-"`
}

var labels = map[Locale]Labels{
	Russian: {
		Title:   "Зависимость интенсивности света от радиуса кольца",
		XAxis:   "Радиус кольца, м",
		YAxis:   "Интенсивность света, Вт/м²",
		Warning: "Ни одно из значений не может быть неположительным",

		Heading:      "Кольца Ньютона",
		Caution:      "Предупреждение",
		Plot:         "Построить график",
		LensRadius:   "Радиус линзы, м",
		LensIndex:    "Показатель преломления линзы",
		PlateIndex:   "Показатель преломления пластины",
		MediumIndex:  "Показатель преломления среды между ними",
		WavelengthNm: "Длина волны, нм",
		Intensity:    "Интенсивность, Вт/м²",
	},
	English: {
		Title:   "Light intensity versus ring radius",
		XAxis:   "Radius of ring, m",
		YAxis:   "Light intensity, W/m²",
		Warning: "None of the values may be non-positive",

		Heading:      "Newton's rings",
		Caution:      "Warning",
		Plot:         "Plot",
		LensRadius:   "Lens radius, m",
		LensIndex:    "Lens refractive index",
		PlateIndex:   "Plate refractive index",
		MediumIndex:  "Refractive index of the medium between them",
		WavelengthNm: "Wavelength, nm",
		Intensity:    "Intensity, W/m²",
	},
}

func UnmarshalText(text string) (Locale, error) {
	switch text {
	case "ru":
		return Russian, nil
	case "en":
		return English, nil
	default:
		return 0, fmt.Errorf("invalid locale: %q", text)
	}
}

func (l Locale) String() string {
	if l == English {
		return "en"
	}
	return "ru"
}

func (l Locale) Labels() Labels {
	if lb, ok := labels[l]; ok {
		return lb
	}
	return labels[Russian]
}
