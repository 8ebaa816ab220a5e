package dataset

import (
	"math"
	"reflect"
	"testing"
)

func TestScatter_Deterministic(t *testing.T) {
	a := Scatter(DefaultSeed, 150)
	b := Scatter(DefaultSeed, 150)

	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed and parameters produced different tables")
	}
}

func TestScatter_RecordCount(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{150, 150},
		{100, 99}, // 3 * (100 / 3)
		{3, 3},
		{2, 0},
		{0, 0},
		{-9, 0},
	}

	for _, tt := range tests {
		got := Scatter(DefaultSeed, tt.points)
		if len(got) != tt.want {
			t.Errorf("Scatter(%d) returned %d records, want %d", tt.points, len(got), tt.want)
		}
	}
}

func TestScatter_ClusterSplit(t *testing.T) {
	data := Scatter(DefaultSeed, 99)

	counts := make(map[string]int)
	for _, rec := range data {
		counts[rec.Category]++
	}

	for _, category := range ScatterCategories() {
		if counts[category] != 33 {
			t.Errorf("Category %q has %d points, want 33", category, counts[category])
		}
	}
}

func TestScatter_DerivedValue(t *testing.T) {
	for _, rec := range Scatter(DefaultSeed, 60) {
		want := rec.X * rec.Y / 100
		if math.Abs(rec.Value-want) > 1e-9 {
			t.Errorf("Value = %.6f, want x*y/100 = %.6f", rec.Value, want)
		}
		if rec.Size < 5 || rec.Size >= 20 {
			t.Errorf("Size %.2f outside [5, 20)", rec.Size)
		}
	}
}
