// Package report computes the headline figures shown alongside the
// dashboard charts.
package report

import "github.com/vizdeck/vizdeck/internal/dataset"

// KPI holds the dashboard's headline numbers.
type KPI struct {
	TotalSales      int
	TotalCustomers  int
	AvgSatisfaction float64
	AvgGrowth       float64
}

// Summarize folds the sales and regional tables into the four headline
// KPIs. Empty inputs yield zero values rather than NaN averages.
func Summarize(sales dataset.SalesData, regional dataset.RegionalData) KPI {
	var kpi KPI

	for _, rec := range sales {
		kpi.TotalSales += rec.Sales
	}

	if len(regional) == 0 {
		return kpi
	}

	var satisfaction, growth float64
	for _, rec := range regional {
		kpi.TotalCustomers += rec.Customers
		satisfaction += rec.Satisfaction
		growth += rec.Growth
	}
	kpi.AvgSatisfaction = satisfaction / float64(len(regional))
	kpi.AvgGrowth = growth / float64(len(regional))

	return kpi
}
