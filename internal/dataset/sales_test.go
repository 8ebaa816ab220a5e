package dataset

import (
	"reflect"
	"testing"
	"time"
)

var testAnchor = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestSales_Deterministic(t *testing.T) {
	a := Sales(DefaultSeed, 12, testAnchor)
	b := Sales(DefaultSeed, 12, testAnchor)

	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed and parameters produced different tables")
	}

	c := Sales(DefaultSeed+1, 12, testAnchor)
	if reflect.DeepEqual(a, c) {
		t.Error("Different seeds produced identical tables")
	}
}

func TestSales_RecordCount(t *testing.T) {
	months := 12
	data := Sales(DefaultSeed, months, testAnchor)

	want := len(Products) * months
	if len(data) != want {
		t.Errorf("Got %d records, want %d", len(data), want)
	}
}

func TestSales_Floor(t *testing.T) {
	// Many seeds so the noise term actually hits the floor sometimes.
	for seed := uint64(0); seed < 20; seed++ {
		for _, rec := range Sales(seed, 24, testAnchor) {
			if rec.Sales < salesFloor {
				t.Fatalf("Sales %d below floor %d (seed %d, %s %s)",
					rec.Sales, salesFloor, seed, rec.Product, rec.Date.Format(dateFormat))
			}
			if rec.Units < 0 {
				t.Fatalf("Negative unit count %d (seed %d)", rec.Units, seed)
			}
		}
	}
}

func TestSales_ProductMajorOrder(t *testing.T) {
	months := 6
	data := Sales(DefaultSeed, months, testAnchor)

	for i, rec := range data {
		wantProduct := Products[i/months]
		if rec.Product != wantProduct {
			t.Fatalf("Record %d has product %q, want %q", i, rec.Product, wantProduct)
		}
		if i%months > 0 && !data[i-1].Date.Before(rec.Date) {
			t.Fatalf("Dates not increasing within product at record %d", i)
		}
	}
}

func TestSales_MonthEndDates(t *testing.T) {
	data := Sales(DefaultSeed, 3, testAnchor)

	for _, rec := range data {
		next := rec.Date.AddDate(0, 0, 1)
		if next.Day() != 1 {
			t.Errorf("Date %s is not a month end", rec.Date.Format(dateFormat))
		}
	}

	last := data[2].Date
	if last.Month() != testAnchor.Month() || last.Year() != testAnchor.Year() {
		t.Errorf("Last month is %s, want the anchor month", last.Format(dateFormat))
	}
}

func TestSales_DegenerateInputs(t *testing.T) {
	if got := Sales(DefaultSeed, 0, testAnchor); len(got) != 0 {
		t.Errorf("Zero months produced %d records, want 0", len(got))
	}
	if got := Sales(DefaultSeed, -3, testAnchor); len(got) != 0 {
		t.Errorf("Negative months produced %d records, want 0", len(got))
	}

	// A single month must not divide by zero in the trend/seasonality steps.
	if got := Sales(DefaultSeed, 1, testAnchor); len(got) != len(Products) {
		t.Errorf("One month produced %d records, want %d", len(got), len(Products))
	}
}
