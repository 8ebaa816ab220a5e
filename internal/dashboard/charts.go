package dashboard

import (
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vizdeck/vizdeck/internal/dataset"
)

const monthFormat = "Jan 2006"

// salesSeries reshapes the product-major sales table into month labels
// plus one value series per product, in fixed product order.
func salesSeries(sales dataset.SalesData) (labels []string, series map[string][]int) {
	series = make(map[string][]int, len(dataset.Products))
	if len(sales) == 0 {
		return nil, series
	}
	for _, rec := range sales {
		if rec.Product == sales[0].Product {
			labels = append(labels, rec.Date.Format(monthFormat))
		}
		series[rec.Product] = append(series[rec.Product], rec.Sales)
	}
	return labels, series
}

// salesTrendChart is the multi-line monthly sales figure, one toggleable
// series per product category.
func salesTrendChart(sales dataset.SalesData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(
		withCommonLineOpts("Monthly Sales Trends by Product Category", chartWidth, chartHeight),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Sales Revenue",
			AxisLabel: &opts.AxisLabel{Formatter: "${value}"},
		}),
	)...)

	labels, series := salesSeries(sales)
	line.SetXAxis(labels)
	for _, product := range dataset.Products {
		points := make([]opts.LineData, len(series[product]))
		for i, v := range series[product] {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(product, points)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
	)

	return line
}

// regionalBarChart is the horizontal revenue-by-region figure, sorted
// ascending so the largest region ends up on top.
func regionalBarChart(regional dataset.RegionalData) *charts.Bar {
	sorted := make(dataset.RegionalData, len(regional))
	copy(sorted, regional)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Revenue < sorted[j].Revenue })

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(baseInit(chartWidth, chartHeight)),
		charts.WithTitleOpts(titleOpts("Revenue by Region")),
		charts.WithColorsOpts(opts.Colors(palette)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithToolboxOpts(toolboxOpts()),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Revenue ($)",
			AxisLabel: &opts.AxisLabel{Formatter: "${value}"},
		}),
	)

	regions := make([]string, len(sorted))
	values := make([]opts.BarData, len(sorted))
	for i, rec := range sorted {
		regions[i] = rec.Region
		values[i] = opts.BarData{Value: rec.Revenue}
	}

	bar.SetXAxis(regions).AddSeries("Revenue", values)
	bar.XYReversal()
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "${c}"}),
	)

	return bar
}

// clusterScatterChart plots the three Gaussian clusters on value axes,
// with the per-point size field mapped to symbol size.
func clusterScatterChart(points dataset.ScatterData) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(baseInit(chartWidth, chartHeight)),
		charts.WithTitleOpts(titleOpts("Multi-dimensional Data Analysis")),
		charts.WithColorsOpts(opts.Colors(palette)),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "28"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithToolboxOpts(toolboxOpts()),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Feature X"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Feature Y"}),
	)

	byCategory := make(map[string][]opts.ScatterData)
	for _, rec := range points {
		byCategory[rec.Category] = append(byCategory[rec.Category], opts.ScatterData{
			Value:      []interface{}{rec.X, rec.Y},
			SymbolSize: int(rec.Size),
		})
	}
	for _, category := range dataset.ScatterCategories() {
		scatter.AddSeries(category, byCategory[category])
	}

	return scatter
}

// stackedAreaChart is the cumulative sales distribution: the same sales
// series as the trend chart, stacked with an area fill.
func stackedAreaChart(sales dataset.SalesData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(
		withCommonLineOpts("Cumulative Sales Distribution", chartWidth, chartHeight),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Cumulative Sales",
			AxisLabel: &opts.AxisLabel{Formatter: "${value}"},
		}),
	)...)

	labels, series := salesSeries(sales)
	line.SetXAxis(labels)
	for _, product := range dataset.Products {
		points := make([]opts.LineData, len(series[product]))
		for i, v := range series[product] {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(product, points)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Stack: "total"}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.7}),
	)

	return line
}

// shareDonutChart is the device-traffic donut. Wedge colors come from
// the dataset so the legend, chart and CSV dump agree.
func shareDonutChart(share dataset.ShareData) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(baseInit(donutWidth, chartHeight)),
		charts.WithTitleOpts(titleOpts("Traffic by Device Type")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "28"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}: {d}%"}),
		charts.WithToolboxOpts(toolboxOpts()),
	)

	wedges := make([]opts.PieData, len(share))
	for i, rec := range share {
		wedges[i] = opts.PieData{
			Name:      rec.Category,
			Value:     rec.Value,
			ItemStyle: &opts.ItemStyle{Color: rec.Color},
		}
	}

	pie.AddSeries("Traffic", wedges)
	pie.SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)

	return pie
}

// priceChart is the wide stock-style figure: price line, dashed 7-day
// moving average with a leading gap, and faint high/low bracket lines.
func priceChart(ts dataset.TimeSeriesData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(baseInit(wideWidth, chartHeight)),
		charts.WithTitleOpts(titleOpts("Stock Price Analysis with Moving Average")),
		charts.WithColorsOpts(opts.Colors(palette)),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "28"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithToolboxOpts(toolboxOpts()),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Price ($)",
			AxisLabel: &opts.AxisLabel{Formatter: "${value}"},
		}),
	)

	labels := make([]string, len(ts))
	price := make([]opts.LineData, len(ts))
	avg := make([]opts.LineData, len(ts))
	high := make([]opts.LineData, len(ts))
	low := make([]opts.LineData, len(ts))
	for i, rec := range ts {
		labels[i] = rec.Date.Format("2006-01-02")
		price[i] = opts.LineData{Value: rec.Price}
		high[i] = opts.LineData{Value: rec.High}
		low[i] = opts.LineData{Value: rec.Low}

		// "-" is the ECharts placeholder for a missing point; it keeps
		// the series aligned while leaving a gap in the drawn line.
		if rec.MovingAvg != nil {
			avg[i] = opts.LineData{Value: *rec.MovingAvg}
		} else {
			avg[i] = opts.LineData{Value: "-"}
		}
	}

	line.SetXAxis(labels)
	line.AddSeries("Price", price)
	line.AddSeries("7-Day MA", avg,
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 2}),
	)
	line.AddSeries("High", high,
		charts.WithLineStyleOpts(opts.LineStyle{Width: 1, Opacity: 0.4}),
	)
	line.AddSeries("Low", low,
		charts.WithLineStyleOpts(opts.LineStyle{Width: 1, Opacity: 0.4}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	return line
}

// teamBarChart is the grouped team-performance figure with a dashed
// mark line at the 85-point target.
func teamBarChart(perf dataset.PerformanceData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(baseInit(wideWidth, chartHeight)),
		charts.WithTitleOpts(titleOpts("Team Performance Metrics")),
		charts.WithColorsOpts(opts.Colors(palette)),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "28"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithToolboxOpts(toolboxOpts()),
		charts.WithYAxisOpts(opts.YAxis{Name: "Score (%)", Max: 110}),
	)

	teams := make([]string, len(perf))
	productivity := make([]opts.BarData, len(perf))
	quality := make([]opts.BarData, len(perf))
	efficiency := make([]opts.BarData, len(perf))
	for i, rec := range perf {
		teams[i] = rec.Team
		productivity[i] = opts.BarData{Value: rec.Productivity}
		quality[i] = opts.BarData{Value: rec.Quality}
		efficiency[i] = opts.BarData{Value: rec.Efficiency}
	}

	bar.SetXAxis(teams)
	bar.AddSeries("Productivity", productivity)
	bar.AddSeries("Quality", quality)
	bar.AddSeries("Efficiency", efficiency,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Target", YAxis: performanceTarget}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Type: "dashed", Color: targetColor},
			Label:     &opts.Label{Show: opts.Bool(true), Formatter: "Target: 85%"},
		}),
	)

	return bar
}
