package dataset

import "strconv"

// scatterClusters are the fixed Gaussian cluster centers points are
// drawn around, one category per cluster.
var scatterClusters = []struct {
	Category string
	X, Y     float64
}{
	{"Category A", 30, 40},
	{"Category B", 60, 70},
	{"Category C", 80, 30},
}

// clusterStdDev is the per-axis standard deviation of every cluster.
const clusterStdDev = 10

// ScatterRecord is one clustered point. Value is derived as x*y/100.
type ScatterRecord struct {
	X        float64
	Y        float64
	Size     float64
	Category string
	Value    float64
}

type ScatterData []ScatterRecord

// Scatter generates points/len(clusters) records per cluster, so the
// total is always a multiple of the cluster count. Fewer points than
// clusters yields an empty result.
func Scatter(seed uint64, points int) ScatterData {
	perCluster := points / len(scatterClusters)
	if perCluster <= 0 {
		return nil
	}

	r := newRand(seed)
	data := make(ScatterData, 0, perCluster*len(scatterClusters))
	for _, cluster := range scatterClusters {
		for i := 0; i < perCluster; i++ {
			x := cluster.X + r.NormFloat64()*clusterStdDev
			y := cluster.Y + r.NormFloat64()*clusterStdDev
			data = append(data, ScatterRecord{
				X:        x,
				Y:        y,
				Size:     5 + r.Float64()*15,
				Category: cluster.Category,
				Value:    x * y / 100,
			})
		}
	}
	return data
}

// ScatterCategories returns the cluster category names in draw order.
func ScatterCategories() []string {
	names := make([]string, len(scatterClusters))
	for i, c := range scatterClusters {
		names[i] = c.Category
	}
	return names
}

func (d ScatterData) Table() Table {
	t := Table{
		Name:    "scatter",
		Columns: []string{"x", "y", "size", "category", "value"},
	}
	for _, rec := range d {
		t.Rows = append(t.Rows, []string{
			strconv.FormatFloat(rec.X, 'f', 2, 64),
			strconv.FormatFloat(rec.Y, 'f', 2, 64),
			strconv.FormatFloat(rec.Size, 'f', 2, 64),
			rec.Category,
			strconv.FormatFloat(rec.Value, 'f', 2, 64),
		})
	}
	return t
}
