package dataset

import "strconv"

// Regions are the fixed sales regions. Regional always returns exactly
// one record per region.
var Regions = []string{
	"North America",
	"Europe",
	"Asia Pacific",
	"Latin America",
	"Middle East",
}

// RegionalRecord summarizes one region. Growth is a percentage and may
// be negative; satisfaction is on a 3.5–5.0 scale.
type RegionalRecord struct {
	Region       string
	Revenue      int
	Growth       float64
	Customers    int
	Satisfaction float64
}

type RegionalData []RegionalRecord

// Regional generates per-region revenue, growth, customer and
// satisfaction figures. Regions are independent of each other.
func Regional(seed uint64) RegionalData {
	r := newRand(seed)
	data := make(RegionalData, len(Regions))
	for i, region := range Regions {
		data[i] = RegionalRecord{
			Region:       region,
			Revenue:      100000 + r.IntN(400000),
			Growth:       -5 + r.Float64()*30,
			Customers:    1000 + r.IntN(9000),
			Satisfaction: 3.5 + r.Float64()*1.5,
		}
	}
	return data
}

func (d RegionalData) Table() Table {
	t := Table{
		Name:    "regional",
		Columns: []string{"region", "revenue", "growth", "customers", "satisfaction"},
	}
	for _, rec := range d {
		t.Rows = append(t.Rows, []string{
			rec.Region,
			strconv.Itoa(rec.Revenue),
			strconv.FormatFloat(rec.Growth, 'f', 2, 64),
			strconv.Itoa(rec.Customers),
			strconv.FormatFloat(rec.Satisfaction, 'f', 2, 64),
		})
	}
	return t
}
