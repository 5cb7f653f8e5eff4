package format

import "fmt"

type Format int8

const (
	HTML Format = iota
	Png
	Csv
	JSON
	ASCII
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "html":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	case "json":
		return JSON, nil
	case "ascii":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	case JSON:
		return "json"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Extension is the file extension used for output files, with the dot.
func (f Format) Extension() string {
	if f == ASCII {
		return ".txt"
	}
	return "." + f.String()
}
