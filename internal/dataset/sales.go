package dataset

import (
	"math"
	"strconv"
	"time"
)

// Products are the fixed product categories sales data is generated for.
var Products = []string{
	"Electronics",
	"Clothing",
	"Food & Beverages",
	"Home & Garden",
	"Sports",
}

// salesFloor is the minimum monthly sales figure after noise.
const salesFloor = 1000

// SalesRecord is one (product, month) cell of the sales table.
type SalesRecord struct {
	Date    time.Time
	Product string
	Sales   int
	Units   int
}

// SalesData is ordered product-major, date-minor.
type SalesData []SalesRecord

// Sales generates monthly sales for every product category over the
// trailing months ending at anchor. Each product gets a random base
// level, a linear trend toward a random endpoint, one full sinusoidal
// seasonal cycle and Gaussian noise; monthly totals are floored at
// salesFloor and unit counts derived from a per-record random divisor.
func Sales(seed uint64, months int, anchor time.Time) SalesData {
	if months <= 0 {
		return nil
	}

	r := newRand(seed)
	dates := monthEnds(anchor, months)
	data := make(SalesData, 0, len(Products)*months)

	for _, product := range Products {
		base := float64(10000 + r.IntN(40000))
		trendEnd := float64(-5000 + r.IntN(15000))

		// With a single month both ramps collapse to their start value.
		var trendStep, seasonStep float64
		if months > 1 {
			trendStep = trendEnd / float64(months-1)
			seasonStep = 2 * math.Pi / float64(months-1)
		}

		for i, date := range dates {
			sales := base +
				trendStep*float64(i) +
				5000*math.Sin(seasonStep*float64(i)) +
				r.NormFloat64()*2000
			if sales < salesFloor {
				sales = salesFloor
			}

			divisor := 20 + r.IntN(80)
			data = append(data, SalesRecord{
				Date:    date,
				Product: product,
				Sales:   int(sales),
				Units:   int(sales) / divisor,
			})
		}
	}

	return data
}

func (d SalesData) Table() Table {
	t := Table{
		Name:    "sales",
		Columns: []string{"date", "product", "sales", "units"},
	}
	for _, rec := range d {
		t.Rows = append(t.Rows, []string{
			rec.Date.Format(dateFormat),
			rec.Product,
			strconv.Itoa(rec.Sales),
			strconv.Itoa(rec.Units),
		})
	}
	return t
}
