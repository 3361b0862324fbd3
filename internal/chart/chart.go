// Package chart renders flow profiles to PNG using gonum/plot.
package chart

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/reactor"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls the rendered chart. Zero values fall back to the
// standard reactor profile labels.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64 // inches
	Height float64 // inches
}

func (o *Options) fill() {
	if o.Title == "" {
		o.Title = "LTS Molar Flow as Function of Cat. Mass"
	}
	if o.XLabel == "" {
		o.XLabel = "Catalyst mass, kg"
	}
	if o.YLabel == "" {
		o.YLabel = "Molar Flowrates (mol/s)"
	}
	if o.Width <= 0 {
		o.Width = 8.0
	}
	if o.Height <= 0 {
		o.Height = 6.0
	}
}

// Flows renders the four species profiles on one chart with a legend
// and writes it as a PNG.
func Flows(masses []float64, states []dynamo.State, opts Options, path string) error {
	if len(masses) == 0 || len(masses) != len(states) {
		return fmt.Errorf("chart: profile is empty or misaligned")
	}
	opts.fill()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true

	for i := 0; i < reactor.NumSpecies; i++ {
		pts := make(plotter.XYs, len(masses))
		for j := range masses {
			pts[j].X = masses[j]
			pts[j].Y = states[j][i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(reactor.SpeciesNames[i], line)
	}

	return savePNG(p, opts.Width, opts.Height, path)
}

func savePNG(p *plot.Plot, widthIn, heightIn float64, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("chart: cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(144),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("chart: cannot write png: %w", err)
	}
	return nil
}
