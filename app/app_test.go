package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/newton-rings/config"
	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/format"
	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/interference"
)

func TestRun_Formats(t *testing.T) {
	tests := []struct {
		format format.Format
		check  func(t *testing.T, data []byte)
	}{
		{format.HTML, func(t *testing.T, data []byte) {
			assert.Contains(t, string(data), "echarts")
			assert.Contains(t, string(data), "Radius of ring, m")
		}},
		{format.Png, func(t *testing.T, data []byte) {
			assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
		}},
		{format.Csv, func(t *testing.T, data []byte) {
			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			require.NoError(t, err)
			assert.Len(t, records, interference.SampleCount+1)
			assert.Equal(t, []string{"radius", "intensity"}, records[0])
			assert.Equal(t, "0", records[1][0])
		}},
		{format.JSON, func(t *testing.T, data []byte) {
			var series entity.Series
			require.NoError(t, json.Unmarshal(data, &series))
			assert.Len(t, series.Samples, interference.SampleCount)
			assert.Equal(t, "Light intensity, W/m²", series.YAxis)
			assert.NotEmpty(t, series.Summary.DarkRingRadii)
		}},
		{format.ASCII, func(t *testing.T, data []byte) {
			assert.Contains(t, string(data), "Light intensity versus ring radius")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "rings"+tt.format.Extension())
			a := New(output, tt.format, locale.English, parameters.Default())

			require.NoError(t, a.Run(context.Background()))

			data, err := os.ReadFile(output)
			require.NoError(t, err)
			tt.check(t, data)
		})
	}
}

func TestRun_Stdout(t *testing.T) {
	var buf bytes.Buffer
	a := New(Stdout, format.Csv, locale.Russian, parameters.Default())
	a.Out = &buf

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, strings.HasPrefix(buf.String(), "radius,intensity\n"))
	assert.Equal(t, "newton-rings", a.Curve().Name())
}

func TestRun_InvalidKeepsOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rings.csv")
	a := New(output, format.Csv, locale.English, parameters.Default())
	require.NoError(t, a.Run(context.Background()))
	before, err := os.ReadFile(output)
	require.NoError(t, err)
	previous := a.Curve()

	a.Params.LensRadius = 0
	err = a.Run(context.Background())

	assert.ErrorIs(t, err, parameters.ErrInvalidParameters)
	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Same(t, previous, a.Curve())
}

func TestRun_InvalidCreatesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "rings.html")
	p := parameters.Default()
	p.WavelengthNm = -5
	a := New(output, format.HTML, locale.English, p)

	assert.ErrorIs(t, a.Run(context.Background()), parameters.ErrInvalidParameters)
	assert.NoFileExists(t, output)
	assert.Nil(t, a.Curve())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(filepath.Join(t.TempDir(), "rings.html"), format.HTML, locale.English, parameters.Default())
	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "json"
	cfg.Locale = "en"

	a, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, format.JSON, a.Format)
	assert.Equal(t, locale.English, a.Locale)
	assert.Equal(t, cfg.Parameters, a.Params)
	assert.Equal(t, "NewtonRings", curveName(a.Output))

	cfg.Format = "svg"
	_, err = FromConfig(cfg)
	assert.Error(t, err)

	cfg.Format = "html"
	cfg.Locale = "de"
	_, err = FromConfig(cfg)
	assert.Error(t, err)
}
