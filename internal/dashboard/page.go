// Package dashboard builds the interactive analytics page from the
// synthetic datasets. All rendering and interactivity is delegated to
// go-echarts and the ECharts client runtime it embeds; this package only
// declares figures and composes the layout.
package dashboard

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/vizdeck/vizdeck/internal/dataset"
)

// Figure dimensions, loosely matching the reference layout: two regular
// charts per row, wide charts spanning a full row.
const (
	chartWidth  = "620px"
	donutWidth  = "520px"
	wideWidth   = "1260px"
	chartHeight = "420px"

	// performanceTarget is the score the team chart draws its mark line at.
	performanceTarget = 85
)

// ChartCount is the number of figures Build assembles, exported so the
// CLI can size its progress bar.
const ChartCount = 7

// Config carries the generator parameters the dashboard is built from.
type Config struct {
	Title  string
	Seed   uint64
	Months int
	Days   int
	Points int
	Anchor time.Time
}

// Build generates every dataset, declares the seven figures and lays
// them out on a flexbox page. step, if non-nil, is called once per
// finished figure with its name.
func Build(cfg Config, step func(name string)) *components.Page {
	done := func(name string) {
		if step != nil {
			step(name)
		}
	}

	sales := dataset.Sales(cfg.Seed, cfg.Months, cfg.Anchor)
	regional := dataset.Regional(cfg.Seed)
	perf := dataset.Performance(cfg.Seed)
	ts := dataset.TimeSeries(cfg.Seed, cfg.Days, cfg.Anchor)
	points := dataset.Scatter(cfg.Seed, cfg.Points)
	share := dataset.Share()

	trend := salesTrendChart(sales)
	done("sales trend")
	regions := regionalBarChart(regional)
	done("regional revenue")
	clusters := clusterScatterChart(points)
	done("scatter clusters")
	donut := shareDonutChart(share)
	done("device share")
	prices := priceChart(ts)
	done("price history")
	area := stackedAreaChart(sales)
	done("cumulative sales")
	teams := teamBarChart(perf)
	done("team performance")

	page := components.NewPage()
	page.PageTitle = cfg.Title
	page.BackgroundColor = pageBackground
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(trend, regions, clusters, donut, prices, area, teams)

	return page
}

// Render writes the dashboard for cfg as a single HTML document.
func Render(w io.Writer, cfg Config, step func(name string)) error {
	return Build(cfg, step).Render(w)
}
