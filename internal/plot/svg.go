package plot

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const svgTitleBand = 24

// WriteSVG draws the series as stacked line panels, each width x height
// pixels plus a title band.
func WriteSVG(w io.Writer, series []Series, width, height int) error {
	if len(series) == 0 {
		return ErrNoData
	}
	for i, s := range series {
		if err := s.validate(); err != nil {
			return fmt.Errorf("series %d (%q): %w", i, s.Title, err)
		}
	}

	panel := height + svgTitleBand
	total := panel * len(series)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, total, width, total))

	for i, s := range series {
		top := i * panel
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="13" text-anchor="middle">%s</text>
`, width/2, top+svgTitleBand-7, html.EscapeString(s.Title)))
		sb.WriteString(polyline(s, width, height, float64(top+svgTitleBand)))
	}

	sb.WriteString("</svg>")
	_, err := io.WriteString(w, sb.String())
	return err
}

func polyline(s Series, width, height int, offsetY float64) string {
	xs, ys := Decimate(s.X, s.Y, width*2)

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	stroke := s.Color
	if stroke == "" {
		stroke = "#333333"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M`, stroke))
	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := offsetY + float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
	return sb.String()
}
