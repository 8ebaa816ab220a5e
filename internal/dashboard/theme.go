package dashboard

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Dark theme carried across every figure.
const (
	pageBackground = "#0a0a0f"
	plotBackground = "#12121a"
	textColor      = "#e0e0e0"
	targetColor    = "#ec4899"
)

// palette is the series color cycle shared by all charts.
var palette = []string{
	"#00d4aa", // primary
	"#7c3aed", // secondary
	"#f59e0b", // tertiary
	"#ec4899", // quaternary
	"#3b82f6", // fifth
}

// baseInit sizes a figure and applies the dark background.
func baseInit(width, height string) opts.Initialization {
	return opts.Initialization{
		Width:           width,
		Height:          height,
		BackgroundColor: plotBackground,
	}
}

// titleOpts styles a figure title consistently with the page theme.
func titleOpts(title string) opts.Title {
	return opts.Title{
		Title:      title,
		TitleStyle: &opts.TextStyle{Color: textColor, FontSize: 16},
	}
}

// toolboxOpts enables the save/restore/zoom buttons every figure carries.
func toolboxOpts() opts.Toolbox {
	return opts.Toolbox{
		Show: opts.Bool(true),
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
		},
	}
}

// withCommonLineOpts bundles the global options shared by the category
// line and bar charts: palette, legend toggling, axis tooltips and
// inside pan/zoom.
func withCommonLineOpts(title string, width, height string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(baseInit(width, height)),
		charts.WithTitleOpts(titleOpts(title)),
		charts.WithColorsOpts(opts.Colors(palette)),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "28"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithToolboxOpts(toolboxOpts()),
	}
}
