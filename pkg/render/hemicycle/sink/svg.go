package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// Canvas size in pixels. The layout space (3.5 × 1.75) is scaled by 100
// and surrounded by a 5 px border.
const (
	Width  = 360
	Height = 185

	scale  = 100.0
	border = 5.0
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg xmlns:svg="http://www.w3.org/2000/svg"
xmlns="http://www.w3.org/2000/svg" version="1.0"
width="360" height="185">
<g>
`

const labelFormat = `<text x="175" y="175" style="font-size:36px;font-weight:bold;text-align:center;text-anchor:middle;font-family:Sans">%d</text>` + "\n"

// PixelX maps a layout x coordinate onto the canvas.
func PixelX(x float64) float64 { return x*scale + border }

// PixelY maps a layout y coordinate onto the canvas, flipping the axis so
// the arc opens downwards.
func PixelY(y float64) float64 { return scale*(layout.CenterX-y) + border }

// PixelRadius maps a layout radius onto the canvas.
func PixelRadius(r float64) float64 { return r * scale }

// RenderSVG writes the layout as an SVG document.
//
// The total seat count is printed in the middle of the base line. Each
// party becomes a group filled with its color and identified by its name,
// in input order; parties without seats produce an empty group. The output
// depends only on l, so identical layouts give identical bytes.
func RenderSVG(l layout.Layout) []byte {
	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	fmt.Fprintf(&buf, labelFormat, l.TotalSeats)

	r := PixelRadius(l.Radius)
	for _, b := range l.Blocks {
		fmt.Fprintf(&buf, `  <g style="fill:%s" id="%s">`+"\n", b.Party.Color, escapeAttr(b.Party.Name))
		for _, s := range b.Seats {
			fmt.Fprintf(&buf, `    <circle cx="%5.2f" cy="%5.2f" r="%5.2f"/>`+"\n", PixelX(s.X), PixelY(s.Y), r)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
