package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/newton-rings/config"
	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/format"
	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/form"
)

// Stdout as an output name writes to standard output instead of a file.
const Stdout = "-"

type App struct {
	Output string
	Format format.Format
	Locale locale.Locale
	Params parameters.Parameters
	Out    io.Writer

	form *form.Form
}

func New(output string, f format.Format, l locale.Locale, params parameters.Parameters) *App {
	return &App{
		Output: output,
		Format: f,
		Locale: l,
		Params: params,
		Out:    os.Stdout,
		form:   form.New(curveName(output)),
	}
}

// FromConfig builds an App from a loaded config.
func FromConfig(cfg *config.Config) (*App, error) {
	f, err := format.UnmarshalText(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse format: %w", err)
	}
	l, err := locale.UnmarshalText(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale: %w", err)
	}
	return New(cfg.Output, f, l, cfg.Parameters), nil
}

// Run validates the parameters, generates the curve and writes it out.
// Invalid parameters leave any previous output untouched.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":          a.Output,
		"format":          a.Format,
		"locale":          a.Locale,
		"lensRadius":      a.Params.LensRadius,
		"lensIndex":       a.Params.LensIndex,
		"plateIndex":      a.Params.PlateIndex,
		"mediumIndex":     a.Params.MediumIndex,
		"wavelengthNm":    a.Params.WavelengthNm,
		"sourceIntensity": a.Params.SourceIntensity,
	}).Debug("App started")

	if err := ctx.Err(); err != nil {
		return err
	}

	curve, err := a.form.Submit(a.Params)
	if err != nil {
		return err
	}
	log.WithField("samples", len(curve.Samples())).Info("Curve created")

	return a.write(curve)
}

// Curve returns the last curve written by Run.
func (a *App) Curve() *entity.Curve {
	return a.form.Curve()
}

func (a *App) write(curve *entity.Curve) error {
	renderTime := time.Now()
	if a.Output == Stdout {
		if err := Render(a.Out, curve, a.Format, a.Locale); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		return nil
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := Render(f, curve, a.Format, a.Locale); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithFields(log.Fields{
		"time":   time.Since(renderTime),
		"output": a.Output,
	}).Info("Chart rendered and saved")
	return nil
}

func curveName(output string) string {
	if output == Stdout || output == "" {
		return "newton-rings"
	}
	return strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
}
