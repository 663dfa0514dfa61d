package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point represents a value sampled along the bridge
type Point struct {
	X float64
	Y float64
}

// BridgeDiagramData holds data for drawing bridge diagrams
type BridgeDiagramData struct {
	Title string

	// Geometry (m)
	Spans    []float64
	SupportX []float64

	// Loading
	PointLoadX []float64 // m
	LineLoad   float64   // N/m

	// Results
	Reactions   []float64 // Vertical reactions (N), one per support
	Deflections []Point   // X (m), deflection (m, positive upward)
	Moments     []Point   // X (m), bending moment (N-m, sagging positive)
}

func (d BridgeDiagramData) totalLength() float64 {
	var total float64
	for _, s := range d.Spans {
		total += s
	}
	return total
}

// DrawBridgeLayout creates an ASCII elevation of the girder with supports,
// point loads and span lengths
func DrawBridgeLayout(data BridgeDiagramData) string {
	var sb strings.Builder

	widthChars := 60
	total := data.totalLength()
	if total <= 0 {
		return ""
	}
	col := func(x float64) int {
		c := int(math.Round(x / total * float64(widthChars)))
		return min(max(c, 0), widthChars)
	}

	loads := []rune(strings.Repeat(" ", widthChars+1))
	for _, x := range data.PointLoadX {
		loads[col(x)] = '↓'
	}

	girder := []rune(strings.Repeat("═", widthChars+1))
	supports := []rune(strings.Repeat(" ", widthChars+1))
	for _, x := range data.SupportX {
		supports[col(x)] = '▲'
		girder[col(x)] = '╤'
	}

	labels := []rune(strings.Repeat(" ", widthChars+12))
	start := 0.0
	for _, span := range data.Spans {
		text := []rune(fmt.Sprintf("%gm", span))
		c := col(start+span/2) - len(text)/2
		for i, r := range text {
			if c+i >= 0 && c+i < len(labels) {
				labels[c+i] = r
			}
		}
		start += span
	}

	sb.WriteString("\n")
	if data.LineLoad != 0 {
		sb.WriteString(fmt.Sprintf("  w = %.2f kN/m\n", data.LineLoad/1000))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("┬", widthChars+1)))
	}
	if len(data.PointLoadX) > 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(loads), " ")))
	}
	sb.WriteString(fmt.Sprintf("  %s\n", string(girder)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(supports), " ")))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(labels), " ")))

	return sb.String()
}

// DrawReactionBars creates a horizontal bar chart of the support reactions
func DrawReactionBars(data BridgeDiagramData) string {
	var sb strings.Builder

	maxBar := 40
	var maxR float64
	for _, r := range data.Reactions {
		maxR = math.Max(maxR, math.Abs(r))
	}
	if maxR == 0 {
		maxR = 1
	}

	sb.WriteString("\n")
	sb.WriteString("  SUPPORT REACTIONS\n")
	sb.WriteString("  ─────────────────\n\n")

	for i, r := range data.Reactions {
		n := int(math.Round(math.Abs(r) / maxR * float64(maxBar)))
		x := 0.0
		if i < len(data.SupportX) {
			x = data.SupportX[i]
		}
		sb.WriteString(fmt.Sprintf("  S%-2d x=%6.1f m │%-*s %.1f kN\n", i+1, x, maxBar, strings.Repeat("█", n), r/1000))
	}

	return sb.String()
}

// DrawDeflectionGraph plots the deflected shape (mm) using asciigraph
func DrawDeflectionGraph(data BridgeDiagramData) string {
	return drawSeries(data.Deflections, 1000, "deflection (mm) along the girder")
}

// DrawMomentGraph plots the bending moment diagram (kN-m) using asciigraph
func DrawMomentGraph(data BridgeDiagramData) string {
	return drawSeries(data.Moments, 1e-3, "bending moment (kN-m), sagging positive")
}

func drawSeries(points []Point, scale float64, caption string) string {
	if len(points) < 2 {
		return ""
	}
	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Y * scale
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
