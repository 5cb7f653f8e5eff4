package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/format"
	"github.com/AnkushinDaniil/newton-rings/entity/locale"
)

const (
	pngWidth    = 10 * vg.Inch
	pngHeight   = 5 * vg.Inch
	asciiHeight = 15
	asciiWidth  = 80
)

// Render writes curve to w in format f with labels in l.
func Render(w io.Writer, curve *entity.Curve, f format.Format, l locale.Locale) error {
	switch f {
	case format.HTML:
		return NewChart(curve, l).Render(w)
	case format.Png:
		return renderPNG(w, curve, l)
	case format.Csv:
		return renderCSV(w, curve)
	case format.JSON:
		return renderJSON(w, curve, l)
	case format.ASCII:
		return renderASCII(w, curve, l)
	default:
		return fmt.Errorf("unsupported format: %v", f)
	}
}

func renderPNG(w io.Writer, curve *entity.Curve, l locale.Locale) error {
	labels := l.Labels()
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.XAxis
	p.Y.Label.Text = labels.YAxis
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(curve.Samples()))
	for i, s := range curve.Samples() {
		xys[i].X = s.Radius
		xys[i].Y = s.Intensity
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to create plot line: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(pngWidth, pngHeight, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

func renderCSV(w io.Writer, curve *entity.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"radius", "intensity"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range curve.Samples() {
		record := []string{
			strconv.FormatFloat(s.Radius, 'g', -1, 64),
			strconv.FormatFloat(s.Intensity, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, curve *entity.Curve, l locale.Locale) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(curve.Series(l))
}

func renderASCII(w io.Writer, curve *entity.Curve, l locale.Locale) error {
	labels := l.Labels()
	graph := asciigraph.Plot(curve.Intensities(),
		asciigraph.Height(asciiHeight),
		asciigraph.Width(asciiWidth),
		asciigraph.Caption(labels.Title),
	)
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s: 0 .. %g\n", labels.YAxis, graph, labels.XAxis,
		curve.Samples()[len(curve.Samples())-1].Radius)
	return err
}
