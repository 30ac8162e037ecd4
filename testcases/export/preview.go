package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"seehuhn.de/go/chartgeom/testcases"
)

// writePreview renders one scatter chart per test case into an HTML page.
func writePreview(fname string, all map[string][]testcases.TestCase) (err error) {
	page, err := previewPage(all)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return page.Render(f)
}

func previewPage(all map[string][]testcases.TestCase) (*components.Page, error) {
	page := components.NewPage()
	page.SetPageTitle("chartgeom test cases")
	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, tc := range all[category] {
			c, err := previewChart(category, tc)
			if err != nil {
				return nil, err
			}
			page.AddCharts(c)
		}
	}
	return page, nil
}

// previewChart shows the points of a test case in pixel coordinates,
// with y pointing down.
func previewChart(category string, tc testcases.TestCase) (*charts.Scatter, error) {
	pts, err := tc.Points()
	if err != nil {
		return nil, err
	}

	data := make([]opts.ScatterData, 0, len(pts))
	for _, p := range pts {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "480px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: category + "_" + tc.Name, Subtitle: fmt.Sprintf("%dx%d points=%d", tc.Width, tc.Height, len(pts))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: tc.Width, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: tc.Height, Name: "y", Inverse: opts.Bool(true)}),
	)
	scatter.AddSeries(tc.Name, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter, nil
}
