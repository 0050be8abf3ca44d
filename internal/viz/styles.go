package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Rounded panel around a summary block
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Metric is one labelled line of a summary.
type Metric struct {
	Label string
	Value string
}

// M formats a metric value with fmt verbs.
func M(label, format string, args ...any) Metric {
	return Metric{Label: label, Value: fmt.Sprintf(format, args...)}
}

// Summary renders a titled panel of aligned label/value lines.
func Summary(title string, metrics []Metric) string {
	width := 0
	for _, m := range metrics {
		if len(m.Label) > width {
			width = len(m.Label)
		}
	}

	lines := make([]string, 0, len(metrics)+1)
	lines = append(lines, Title.Render(title))
	for _, m := range metrics {
		label := fmt.Sprintf("%-*s", width+1, m.Label+":")
		lines = append(lines, MetricLabel.Render(label)+" "+MetricValue.Render(m.Value))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// Warn renders a warning line.
func Warn(msg string) string {
	return Warning.Render("! " + msg)
}

// Artifact renders the "wrote <path>" line printed after each output file.
func Artifact(path string) string {
	return Subtle.Render("wrote ") + path
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// EnvelopeSparkline draws values as width block characters on the fixed
// scale [0, peak]. Each character shows the largest value in its bucket, so
// narrow crests survive the downsampling. A non-positive peak falls back to
// the largest value present.
func EnvelopeSparkline(values []float64, peak float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if !(peak > 0) {
		peak = 0
		for _, v := range values {
			if v > peak {
				peak = v
			}
		}
		if peak == 0 {
			peak = 1
		}
	}

	var sb strings.Builder
	for b := 0; b < width; b++ {
		lo := b * len(values) / width
		hi := (b + 1) * len(values) / width
		if hi <= lo {
			hi = lo + 1
		}
		m := values[lo]
		for _, v := range values[lo+1 : hi] {
			if v > m {
				m = v
			}
		}

		level := m / peak
		if level < 0 || math.IsNaN(level) {
			level = 0
		}
		if level > 1 {
			level = 1
		}
		c := string(sparkBlocks[int(math.Round(level*float64(len(sparkBlocks)-1)))])
		switch {
		case level > 0.7:
			sb.WriteString(SparkHigh.Render(c))
		case level > 0.3:
			sb.WriteString(SparkMid.Render(c))
		default:
			sb.WriteString(SparkLow.Render(c))
		}
	}
	return sb.String()
}
