// Package preview renders a maze.Result as a standalone SVG document for
// eyeballing generated content: background card, maze strokes, a red start
// disc with a white arrow and a gold end star. The solution is not drawn.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

const (
	DefaultBackground = "#4A90E2"

	startColor  = "#E74C3C"
	endColor    = "#F1C40F"
	startRadius = 14
	starRadius  = 12.0
	starInner   = 0.45
	wallStroke  = 3
)

// SVG returns the preview document for r. An empty bg uses DefaultBackground.
func SVG(r *maze.Result, bg string) string {
	if bg == "" {
		bg = DefaultBackground
	}
	w, h := r.CanvasWidth, r.CanvasHeight

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="%s" rx="12"/>`+"\n", w, h, bg)

	if r.MazeType == maze.OrganicType {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="white" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			r.SVGPath, r.PathWidth)
	} else {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="white" stroke-width="%d" stroke-linecap="round"/>`+"\n",
			r.SVGPath, wallStroke)
	}

	sp := r.StartPoint
	fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%d" fill="%s"/>`+"\n", num(sp.X), num(sp.Y), startRadius, startColor)
	fmt.Fprintf(&b, `  <polygon points="%s,%s %s,%s %s,%s" fill="white"/>`+"\n",
		num(sp.X-5), num(sp.Y-6), num(sp.X+7), num(sp.Y), num(sp.X-5), num(sp.Y+6))

	fmt.Fprintf(&b, `  <polygon points="%s" fill="%s"/>`+"\n", strings.Join(Star(r.EndPoint), " "), endColor)
	b.WriteString("</svg>")

	return b.String()
}

// Star returns the ten "x,y" vertices of the end marker centred on c,
// starting at the top and alternating outer and inner radius.
func Star(c render.Point) []string {
	pts := make([]string, 0, 10)
	for k := 0; k < 10; k++ {
		angle := math.Pi/2 + float64(k)*math.Pi/5
		rad := starRadius
		if k%2 == 1 {
			rad *= starInner
		}
		x := c.X + rad*math.Cos(angle)
		y := c.Y - rad*math.Sin(angle)
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	return pts
}

func num(v float64) string { return render.FormatNumber(v) }
