package dataset

import (
	"math"
	"strconv"
	"time"
)

const (
	// priceFloor bounds the random walk from below.
	priceFloor = 10
	// movingAvgWindow is the trailing simple-moving-average period.
	movingAvgWindow = 7
)

// TimeSeriesRecord is one day of stock-like price data. MovingAvg is nil
// for the first movingAvgWindow-1 days, where no full trailing window
// exists yet.
type TimeSeriesRecord struct {
	Date      time.Time
	Price     float64
	Volume    int
	High      float64
	Low       float64
	MovingAvg *float64
}

type TimeSeriesData []TimeSeriesRecord

// TimeSeries generates a bounded random walk over the trailing days
// ending at anchor: each day adds Gaussian noise to the previous price,
// floored at priceFloor. High/low are the price plus/minus a uniform
// offset and volume is drawn independently per day.
func TimeSeries(seed uint64, days int, anchor time.Time) TimeSeriesData {
	if days <= 0 {
		return nil
	}

	r := newRand(seed)
	start := anchor.AddDate(0, 0, -days)

	prices := make([]float64, days)
	price := 100.0
	prices[0] = price
	for i := 1; i < days; i++ {
		price = math.Max(price+r.NormFloat64()*2, priceFloor)
		prices[i] = price
	}

	data := make(TimeSeriesData, days)
	for i := range data {
		data[i] = TimeSeriesRecord{
			Date:   start.AddDate(0, 0, i+1),
			Price:  prices[i],
			Volume: 100000 + r.IntN(900000),
			High:   prices[i] + r.Float64()*5,
			Low:    prices[i] - r.Float64()*5,
		}
		if i >= movingAvgWindow-1 {
			sum := 0.0
			for j := i - movingAvgWindow + 1; j <= i; j++ {
				sum += prices[j]
			}
			avg := sum / movingAvgWindow
			data[i].MovingAvg = &avg
		}
	}

	return data
}

func (d TimeSeriesData) Table() Table {
	t := Table{
		Name:    "timeseries",
		Columns: []string{"date", "price", "volume", "high", "low", "moving_avg"},
	}
	for _, rec := range d {
		avg := ""
		if rec.MovingAvg != nil {
			avg = strconv.FormatFloat(*rec.MovingAvg, 'f', 2, 64)
		}
		t.Rows = append(t.Rows, []string{
			rec.Date.Format(dateFormat),
			strconv.FormatFloat(rec.Price, 'f', 2, 64),
			strconv.Itoa(rec.Volume),
			strconv.FormatFloat(rec.High, 'f', 2, 64),
			strconv.FormatFloat(rec.Low, 'f', 2, 64),
			avg,
		})
	}
	return t
}
