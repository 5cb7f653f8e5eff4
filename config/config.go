package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
)

const (
	DefaultOutput = "NewtonRings.html"
	DefaultFormat = "html"
	DefaultLocale = "ru"
	DefaultAddr   = ":8080"
)

type Config struct {
	Parameters parameters.Parameters `yaml:"parameters"`
	Output     string                `yaml:"output"`
	Format     string                `yaml:"format"`
	Locale     string                `yaml:"locale"`
	Addr       string                `yaml:"addr"`
}

func Default() *Config {
	return &Config{
		Parameters: parameters.Default(),
		Output:     DefaultOutput,
		Format:     DefaultFormat,
		Locale:     DefaultLocale,
		Addr:       DefaultAddr,
	}
}

// Load reads a YAML config. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Presets are common light sources and gap media.
var Presets = map[string]parameters.Parameters{
	"mercury-yellow": parameters.Default(),
	"sodium": {
		LensRadius: 0.001, LensIndex: 1.5, PlateIndex: 1.3, MediumIndex: 1.0,
		WavelengthNm: 589.3, SourceIntensity: 1,
	},
	"helium-neon": {
		LensRadius: 0.001, LensIndex: 1.5, PlateIndex: 1.3, MediumIndex: 1.0,
		WavelengthNm: 632.8, SourceIntensity: 1,
	},
	"mercury-green": {
		LensRadius: 0.001, LensIndex: 1.5, PlateIndex: 1.3, MediumIndex: 1.0,
		WavelengthNm: 546.1, SourceIntensity: 1,
	},
	"water-gap": {
		LensRadius: 0.001, LensIndex: 1.5, PlateIndex: 1.3, MediumIndex: 1.33,
		WavelengthNm: 578.4, SourceIntensity: 1,
	},
}

func Preset(name string) (parameters.Parameters, bool) {
	p, ok := Presets[name]
	return p, ok
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
