// Package monitor renders diagnostic views of coordinate lists.
package monitor

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"github.com/banshee-data/gridcoord/internal/coordlist"
	"github.com/banshee-data/gridcoord/internal/fsutil"
	"github.com/banshee-data/gridcoord/internal/monitoring"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var axisNames = [coordlist.Dims]string{"X", "Y", "Z"}

// Projection is the set of valid slots of a list flattened onto two axes.
type Projection struct {
	AxisX, AxisY int
	BoundX       uint32
	BoundY       uint32
	Points       plotter.XYs
	// Skipped counts Invalid slots left out of Points.
	Skipped int
}

// Project flattens every valid slot of l onto axes (axisX, axisY).
func Project(l *coordlist.CoordinateList, axisX, axisY int) (Projection, error) {
	if axisX < 0 || axisX >= coordlist.Dims || axisY < 0 || axisY >= coordlist.Dims || axisX == axisY {
		return Projection{}, fmt.Errorf("invalid projection axes (%d, %d)", axisX, axisY)
	}
	dims := l.Dims()
	p := Projection{
		AxisX:  axisX,
		AxisY:  axisY,
		BoundX: dims[axisX],
		BoundY: dims[axisY],
		Points: make(plotter.XYs, 0, l.Len()),
	}
	for i := 0; i < l.Len(); i++ {
		c, err := l.Get(i)
		if err != nil {
			p.Skipped++
			continue
		}
		p.Points = append(p.Points, plotter.XY{X: float64(c[axisX]), Y: float64(c[axisY])})
	}
	return p, nil
}

// WriteProjectionPNG renders p as a scatter plot PNG.
func WriteProjectionPNG(w io.Writer, p Projection, title string) error {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = axisNames[p.AxisX]
	pl.Y.Label.Text = axisNames[p.AxisY]
	pl.Add(plotter.NewGrid())

	if len(p.Points) > 0 {
		sc, err := plotter.NewScatter(p.Points)
		if err != nil {
			return fmt.Errorf("failed to build scatter: %w", err)
		}
		sc.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		pl.Add(sc)
	}

	// Axes span the whole grid so sparse lists keep their position.
	pl.X.Min, pl.X.Max = 0, float64(p.BoundX)
	pl.Y.Min, pl.Y.Max = 0, float64(p.BoundY)

	wt, err := pl.WriterTo(8*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

// WriteProjectionHTML renders p as an interactive go-echarts scatter page.
func WriteProjectionHTML(w io.Writer, p Projection, title string) error {
	data := make([]opts.ScatterData, 0, len(p.Points))
	for _, pt := range p.Points {
		data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d skipped=%d", len(p.Points), p.Skipped)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: p.BoundX, Name: axisNames[p.AxisX], NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: p.BoundY, Name: axisNames[p.AxisY], NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("elements", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// SaveProjection writes projection.png and projection.html under dir and
// returns the two paths.
func SaveProjection(fsys fsutil.FileSystem, dir string, p Projection, title string) (pngPath, htmlPath string, err error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output dir: %w", err)
	}

	pngPath = filepath.Join(dir, "projection.png")
	if err := writeFile(fsys, pngPath, func(w io.Writer) error { return WriteProjectionPNG(w, p, title) }); err != nil {
		return "", "", err
	}
	htmlPath = filepath.Join(dir, "projection.html")
	if err := writeFile(fsys, htmlPath, func(w io.Writer) error { return WriteProjectionHTML(w, p, title) }); err != nil {
		return "", "", err
	}

	monitoring.Logf("[monitor] wrote projection %s/%s (%d points, %d skipped) to %s",
		axisNames[p.AxisX], axisNames[p.AxisY], len(p.Points), p.Skipped, dir)
	return pngPath, htmlPath, nil
}

func writeFile(fsys fsutil.FileSystem, path string, render func(io.Writer) error) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
