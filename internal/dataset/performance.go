package dataset

import "strconv"

// Teams are the fixed teams performance metrics are generated for.
var Teams = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Operations",
	"Support",
	"HR",
}

// PerformanceRecord holds three 0–100-scaled metrics plus headcount for
// one team.
type PerformanceRecord struct {
	Team         string
	Productivity float64
	Quality      float64
	Efficiency   float64
	Headcount    int
}

type PerformanceData []PerformanceRecord

// Performance generates per-team metrics. Always returns exactly one
// record per team.
func Performance(seed uint64) PerformanceData {
	r := newRand(seed)
	data := make(PerformanceData, len(Teams))
	for i, team := range Teams {
		data[i] = PerformanceRecord{
			Team:         team,
			Productivity: 70 + r.Float64()*30,
			Quality:      80 + r.Float64()*19,
			Efficiency:   65 + r.Float64()*30,
			Headcount:    10 + r.IntN(90),
		}
	}
	return data
}

func (d PerformanceData) Table() Table {
	t := Table{
		Name:    "performance",
		Columns: []string{"team", "productivity", "quality", "efficiency", "headcount"},
	}
	for _, rec := range d {
		t.Rows = append(t.Rows, []string{
			rec.Team,
			strconv.FormatFloat(rec.Productivity, 'f', 2, 64),
			strconv.FormatFloat(rec.Quality, 'f', 2, 64),
			strconv.FormatFloat(rec.Efficiency, 'f', 2, 64),
			strconv.Itoa(rec.Headcount),
		})
	}
	return t
}
