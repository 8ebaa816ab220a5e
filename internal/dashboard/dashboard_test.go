package dashboard

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vizdeck/vizdeck/internal/dataset"
)

var testConfig = Config{
	Title:  "Test Dashboard",
	Seed:   dataset.DefaultSeed,
	Months: 6,
	Days:   30,
	Points: 30,
	Anchor: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
}

func TestBuild_ReportsEveryChart(t *testing.T) {
	var steps []string
	Build(testConfig, func(name string) { steps = append(steps, name) })

	if len(steps) != ChartCount {
		t.Errorf("Got %d progress steps, want %d: %v", len(steps), ChartCount, steps)
	}
}

func TestBuild_NilStepCallback(t *testing.T) {
	// Must not panic without a progress callback.
	if page := Build(testConfig, nil); page == nil {
		t.Fatal("Build returned nil page")
	}
}

func TestRender_EmitsHTMLDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testConfig, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "<html") {
		t.Error("Output is not an HTML document")
	}
	if !strings.Contains(html, "echarts") {
		t.Error("Output does not embed the echarts runtime")
	}
	if !strings.Contains(html, testConfig.Title) {
		t.Error("Output does not carry the page title")
	}

	// Spot-check that figure data made it into the document.
	for _, want := range []string{"Desktop", "Engineering", "North America", "7-Day MA"} {
		if !strings.Contains(html, want) {
			t.Errorf("Output missing expected series/category %q", want)
		}
	}
}

func TestSalesSeries_Reshape(t *testing.T) {
	sales := dataset.Sales(dataset.DefaultSeed, 4, testConfig.Anchor)
	labels, series := salesSeries(sales)

	if len(labels) != 4 {
		t.Errorf("Got %d month labels, want 4", len(labels))
	}
	if len(series) != len(dataset.Products) {
		t.Errorf("Got %d series, want %d", len(series), len(dataset.Products))
	}
	for product, values := range series {
		if len(values) != 4 {
			t.Errorf("Series %q has %d values, want 4", product, len(values))
		}
	}
}
