package main

import (
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart writes an HTML page with two bar charts — accepts per
// degree and wall-clock per degree — grounded on the teacher's
// Additionnals/plot_pacs_sweep.go go-echarts usage.
func renderChart(path string, degrees []int, accepts map[int]int, elapsed map[int]time.Duration) error {
	sorted := append([]int(nil), degrees...)
	sort.Ints(sorted)

	labels := make([]string, len(sorted))
	acceptVals := make([]opts.BarData, len(sorted))
	timeVals := make([]opts.BarData, len(sorted))
	for i, d := range sorted {
		labels[i] = strconv.Itoa(d)
		acceptVals[i] = opts.BarData{Value: accepts[d]}
		timeVals[i] = opts.BarData{Value: elapsed[d].Seconds()}
	}

	acceptsChart := charts.NewBar()
	acceptsChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Accepted polynomials per degree"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "degree"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "accepts"}),
	)
	acceptsChart.SetXAxis(labels).AddSeries("accepts", acceptVals)

	timeChart := charts.NewBar()
	timeChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Wall-clock per degree"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "degree"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)
	timeChart.SetXAxis(labels).AddSeries("seconds", timeVals)

	page := components.NewPage().SetPageTitle("gfsearch sweep report")
	page.AddCharts(acceptsChart, timeChart)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
