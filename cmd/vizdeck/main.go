// Command vizdeck renders the synthetic analytics dashboard to a static
// HTML file, or dumps any single dataset as CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/vizdeck/vizdeck/internal/dashboard"
	"github.com/vizdeck/vizdeck/internal/dataset"
	"github.com/vizdeck/vizdeck/internal/export"
	"github.com/vizdeck/vizdeck/internal/report"
)

var (
	out    = flag.String("out", "dashboard.html", "Output file path ('-' for stdout in dump mode)")
	seed   = flag.Uint64("seed", dataset.DefaultSeed, "Seed shared by all dataset generators")
	months = flag.Int("months", 12, "Months of sales history")
	days   = flag.Int("days", 90, "Days of price history")
	points = flag.Int("points", 150, "Scatter point count, split across 3 clusters")
	title  = flag.String("title", "Data Visualization Dashboard", "Dashboard page title")
	dump   = flag.String("dump", "", "Dump one dataset as CSV instead of rendering ("+strings.Join(dataset.List(), ", ")+")")
)

func main() {
	flag.Parse()

	params := dataset.Params{
		Seed:   *seed,
		Months: *months,
		Days:   *days,
		Points: *points,
		Anchor: time.Now(),
	}

	if *dump != "" {
		dumpDataset(*dump, params)
		return
	}
	renderDashboard(params)
}

func dumpDataset(name string, params dataset.Params) {
	factory, err := dataset.Get(name)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(dataset.List(), ", "))
	}

	w := os.Stdout
	if *out != "-" && *out != "dashboard.html" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteCSV(w, factory(params)); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}
}

func renderDashboard(params dataset.Params) {
	runID := uuid.New().String()
	cfg := dashboard.Config{
		Title:  *title,
		Seed:   params.Seed,
		Months: params.Months,
		Days:   params.Days,
		Points: params.Points,
		Anchor: params.Anchor,
	}

	bar := progressbar.Default(dashboard.ChartCount, "building charts")
	page := dashboard.Build(cfg, func(string) { _ = bar.Add(1) })

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatalf("Failed to render dashboard: %v", err)
	}

	size := "unknown size"
	if info, err := f.Stat(); err == nil {
		size = humanize.Bytes(uint64(info.Size()))
	}

	kpi := report.Summarize(
		dataset.Sales(params.Seed, params.Months, params.Anchor),
		dataset.Regional(params.Seed),
	)

	fmt.Printf("\nDashboard written to %s (%s), run %s\n", *out, size, runID)
	fmt.Printf("  Total revenue:     $%s\n", humanize.Comma(int64(kpi.TotalSales)))
	fmt.Printf("  Total customers:   %s\n", humanize.Comma(int64(kpi.TotalCustomers)))
	fmt.Printf("  Avg satisfaction:  %.1f/5.0\n", kpi.AvgSatisfaction)
	fmt.Printf("  Avg growth:        %.1f%%\n", kpi.AvgGrowth)
}
