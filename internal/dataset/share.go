package dataset

import (
	"math"
	"strconv"
)

// shareWeights are the fixed device categories with their relative
// traffic weights and wedge colors.
var shareWeights = []struct {
	Category string
	Weight   float64
	Color    string
}{
	{"Desktop", 45, "#3498db"},
	{"Mobile", 35, "#e74c3c"},
	{"Tablet", 12, "#2ecc71"},
	{"Smart TV", 5, "#f39c12"},
	{"Other", 3, "#9b59b6"},
}

// ShareRecord is one wedge of the device-share donut. Start/end angles
// are cumulative radians over [0, 2π]; the last record's EndAngle is 2π.
type ShareRecord struct {
	Category   string
	Value      float64
	Percentage float64
	StartAngle float64
	EndAngle   float64
	Color      string
}

type ShareData []ShareRecord

// Share computes percentage shares and cumulative wedge angles from the
// fixed device weights. There is no random component; the table is the
// same on every call.
func Share() ShareData {
	total := 0.0
	for _, w := range shareWeights {
		total += w.Weight
	}

	data := make(ShareData, len(shareWeights))
	cumulative := 0.0
	for i, w := range shareWeights {
		angle := w.Weight / total * 2 * math.Pi
		data[i] = ShareRecord{
			Category:   w.Category,
			Value:      w.Weight,
			Percentage: w.Weight / total * 100,
			StartAngle: cumulative,
			EndAngle:   cumulative + angle,
			Color:      w.Color,
		}
		cumulative += angle
	}
	return data
}

func (d ShareData) Table() Table {
	t := Table{
		Name:    "share",
		Columns: []string{"category", "value", "percentage", "start_angle", "end_angle", "color"},
	}
	for _, rec := range d {
		t.Rows = append(t.Rows, []string{
			rec.Category,
			strconv.FormatFloat(rec.Value, 'f', 0, 64),
			strconv.FormatFloat(rec.Percentage, 'f', 2, 64),
			strconv.FormatFloat(rec.StartAngle, 'f', 4, 64),
			strconv.FormatFloat(rec.EndAngle, 'f', 4, 64),
			rec.Color,
		})
	}
	return t
}
