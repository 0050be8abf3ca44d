package plot

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Terminal renders each series as an asciigraph chart, one below the other,
// captioned with the series title.
func Terminal(series []Series, width, height int) string {
	var sb strings.Builder
	for i, s := range series {
		if len(s.Y) == 0 {
			continue
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		_, y := Decimate(s.X, s.Y, width*4)
		sb.WriteString(asciigraph.Plot(y,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(s.Title),
		))
	}
	return sb.String()
}

// Spectrum renders a single magnitude curve without an x-axis series.
func Spectrum(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
