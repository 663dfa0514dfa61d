package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	girderColor   = color.Black
	supportColor  = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	endColor      = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	interiorColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	momentColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportReactionChart exports a bar chart of the support reactions
func ExportReactionChart(data BridgeDiagramData, filename string) error {
	if len(data.Reactions) == 0 {
		return fmt.Errorf("no reactions to plot")
	}

	p := plot.New()
	p.Title.Text = titled(data.Title, "Support Reactions")
	p.Y.Label.Text = "Reaction (kN)"

	values := make(plotter.Values, len(data.Reactions))
	labels := make([]string, len(data.Reactions))
	for i, r := range data.Reactions {
		values[i] = r / 1000
		labels[i] = fmt.Sprintf("S%d", i+1)
	}

	// End and interior supports are drawn as separate series so they get
	// distinct colours.
	n := len(values)
	endValues := make(plotter.Values, n)
	interiorValues := make(plotter.Values, n)
	for i, v := range values {
		if i == 0 || i == n-1 {
			endValues[i] = v
		} else {
			interiorValues[i] = v
		}
	}

	width := vg.Points(30)
	endBars, err := plotter.NewBarChart(endValues, width)
	if err != nil {
		return err
	}
	endBars.Color = endColor
	endBars.LineStyle.Width = vg.Points(1)
	p.Add(endBars)

	if n > 2 {
		interiorBars, err := plotter.NewBarChart(interiorValues, width)
		if err != nil {
			return err
		}
		interiorBars.Color = interiorColor
		interiorBars.LineStyle.Width = vg.Points(1)
		p.Add(interiorBars)
		p.Legend.Add("interior", interiorBars)
	}
	p.Legend.Add("end", endBars)
	p.Legend.Top = true

	xys := make(plotter.XYs, n)
	text := make([]string, n)
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		text[i] = fmt.Sprintf("%.1f", v)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return err
	}
	p.Add(l)

	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportDeflectedShape exports the deflected shape with support markers
func ExportDeflectedShape(data BridgeDiagramData, filename string) error {
	if len(data.Deflections) < 2 {
		return fmt.Errorf("not enough deflection samples to plot")
	}

	p := plot.New()
	p.Title.Text = titled(data.Title, "Deflected Shape")
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Deflection (mm)"

	pts := make(plotter.XYs, len(data.Deflections))
	for i, d := range data.Deflections {
		pts[i] = plotter.XY{X: d.X, Y: d.Y * 1000}
	}
	shape, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	shape.LineStyle.Width = vg.Points(2)
	shape.LineStyle.Color = girderColor
	p.Add(shape)

	if err := addBaseline(p, data); err != nil {
		return err
	}

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

// ExportMomentDiagram exports the bending moment diagram
func ExportMomentDiagram(data BridgeDiagramData, filename string) error {
	if len(data.Moments) < 2 {
		return fmt.Errorf("not enough moment samples to plot")
	}

	p := plot.New()
	p.Title.Text = titled(data.Title, "Bending Moment")
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Moment (kN-m)"

	pts := make(plotter.XYs, len(data.Moments))
	for i, m := range data.Moments {
		pts[i] = plotter.XY{X: m.X, Y: m.Y / 1000}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = momentColor
	p.Add(line)

	if err := addBaseline(p, data); err != nil {
		return err
	}

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

// ExportCombinedDiagram writes the reaction, deflection and moment charts
// next to filename, using its extension (default .png), and returns the
// paths written.
func ExportCombinedDiagram(data BridgeDiagramData, filename string) ([]string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if ext == "" {
		ext = ".png"
	}

	exports := []struct {
		suffix string
		fn     func(BridgeDiagramData, string) error
	}{
		{"-reactions", ExportReactionChart},
		{"-deflection", ExportDeflectedShape},
		{"-moment", ExportMomentDiagram},
	}

	var written []string
	for _, e := range exports {
		path := base + e.suffix + ext
		if err := e.fn(data, path); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// addBaseline draws the undeformed girder axis and support glyphs
func addBaseline(p *plot.Plot, data BridgeDiagramData) error {
	total := data.totalLength()
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: total, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	if len(data.SupportX) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(data.SupportX))
	for i, x := range data.SupportX {
		pts[i] = plotter.XY{X: x, Y: 0}
	}
	supports, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	supports.GlyphStyle.Color = supportColor
	supports.GlyphStyle.Radius = vg.Points(6)
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(supports)
	return nil
}

func titled(title, kind string) string {
	if title == "" {
		return kind
	}
	return title + ": " + kind
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
