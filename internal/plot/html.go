package plot

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PanelHeight is the height of each stacked line chart.
const PanelHeight = "280px"

// WriteStackedHTML renders one line chart per series, top to bottom, on a
// single page.
func WriteStackedHTML(w io.Writer, pageTitle string, series []Series) error {
	if len(series) == 0 {
		return ErrNoData
	}
	page := components.NewPage()
	page.PageTitle = pageTitle
	page.SetLayout(components.PageFlexLayout)

	for i, s := range series {
		if err := s.validate(); err != nil {
			return fmt.Errorf("series %d (%q): %w", i, s.Title, err)
		}
		page.AddCharts(lineChart(s, pageTitle))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func lineChart(s Series, pageTitle string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          PanelHeight,
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: s.Title,
			Left:  "center",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: s.XLabel,
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  s.YLabel,
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	data := make([]opts.LineData, len(s.X))
	for i := range s.X {
		data[i] = opts.LineData{Value: []interface{}{jsonValue(s.X[i]), jsonValue(s.Y[i])}}
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	}
	if s.Color != "" {
		seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 1}))
	}
	line.AddSeries(s.Title, data, seriesOpts...)
	return line
}

// WriteHeatmapHTML renders img as a grayscale heatmap with a fixed colour
// scale. Each side is reduced to at most maxCells cells.
func WriteHeatmapHTML(w io.Writer, img Image, maxCells int) error {
	if err := img.validate(); err != nil {
		return err
	}

	cells, rows, cols := Downsample2D(img.Data, maxCells)
	xLabels := axisLabels(cols, len(img.Data[0]), img.Extent.XMin, img.Extent.XMax)
	yLabels := axisLabels(rows, len(img.Data), img.Extent.YMin, img.Extent.YMax)

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "820px",
			Height:          "760px",
			PageTitle:       img.Title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: img.Title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: img.XLabel,
			Type: "category",
			Data: xLabels,
			Show: opts.Bool(!img.HideAxes),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: img.YLabel,
			Type: "category",
			Data: yLabels,
			Show: opts.Bool(!img.HideAxes),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(img.VMin),
			Max:        float32(img.VMax),
			Text:       []string{img.Label},
			InRange: &opts.VisualMapInRange{
				Color: []string{"#000000", "#ffffff"},
			},
		}),
	)

	data := make([]opts.HeatMapData, 0, len(rows)*len(cols))
	for i := range cells {
		for j, v := range cells[i] {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, jsonValue(v)}})
		}
	}
	hm.AddSeries(img.Label, data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("failed to render heatmap: %w", err)
	}
	return nil
}

// jsonValue passes finite values through and turns NaN and ±Inf into nil.
// The options are JSON encoded, which has no non-finite numbers, and echarts
// draws null as a missing point.
func jsonValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// axisLabels formats the data-space coordinate of each kept index.
func axisLabels(idx []int, n int, lo, hi float64) []string {
	labels := make([]string, len(idx))
	for k, i := range idx {
		v := lo
		if n > 1 {
			v = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		labels[k] = strconv.FormatFloat(v, 'g', 4, 64)
	}
	return labels
}
