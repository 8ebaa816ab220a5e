package report

import (
	"math"
	"testing"

	"github.com/vizdeck/vizdeck/internal/dataset"
)

func TestSummarize(t *testing.T) {
	sales := dataset.SalesData{
		{Product: "Electronics", Sales: 1000},
		{Product: "Clothing", Sales: 2500},
	}
	regional := dataset.RegionalData{
		{Region: "Europe", Customers: 4000, Satisfaction: 4.0, Growth: 10},
		{Region: "Asia Pacific", Customers: 6000, Satisfaction: 5.0, Growth: -4},
	}

	kpi := Summarize(sales, regional)

	if kpi.TotalSales != 3500 {
		t.Errorf("TotalSales = %d, want 3500", kpi.TotalSales)
	}
	if kpi.TotalCustomers != 10000 {
		t.Errorf("TotalCustomers = %d, want 10000", kpi.TotalCustomers)
	}
	if math.Abs(kpi.AvgSatisfaction-4.5) > 1e-9 {
		t.Errorf("AvgSatisfaction = %f, want 4.5", kpi.AvgSatisfaction)
	}
	if math.Abs(kpi.AvgGrowth-3) > 1e-9 {
		t.Errorf("AvgGrowth = %f, want 3", kpi.AvgGrowth)
	}
}

func TestSummarize_Empty(t *testing.T) {
	kpi := Summarize(nil, nil)

	if kpi != (KPI{}) {
		t.Errorf("Empty inputs produced %+v, want zero KPI", kpi)
	}
}
