// Package viz holds the lipgloss styles used for terminal summaries.
//
//	fmt.Println(viz.Summary("beats", []viz.Metric{
//	    viz.M("beat frequency", "%g Hz", bf),
//	}))
//
// Colours degrade to plain text when stdout is not a terminal.
package viz
