package stats

import (
	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

// ScatterTitle is the title of the payload vs outcome chart
const ScatterTitle = "Correlation between Payload and Success"

// Filter returns the records inside the view's payload range, restricted to the
// selected site unless the view spans every site. Dataset order is kept.
func Filter(records []models.LaunchRecord, view types.ViewState) []models.LaunchRecord {
	out := []models.LaunchRecord{}
	for _, r := range records {
		if !view.Payload.Contains(r.PayloadMassKg) {
			continue
		}
		if !view.AllSites() && r.LaunchSite != view.Site {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Series is the set of scatter points sharing one booster category color
type Series struct {
	Category string
	Records  []models.LaunchRecord
}

// GroupByCategory splits rows into one series per booster version category,
// ordered by first appearance.
func GroupByCategory(rows []models.LaunchRecord) []Series {
	var series []Series
	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.BoosterVersionCategory]
		if !ok {
			i = len(series)
			index[r.BoosterVersionCategory] = i
			series = append(series, Series{Category: r.BoosterVersionCategory})
		}
		series[i].Records = append(series[i].Records, r)
	}
	return series
}

// Scatter builds the scatter chart table for a view
func Scatter(records []models.LaunchRecord, view types.ViewState) types.ScatterChart {
	rows := Filter(records, view)
	chart := types.ScatterChart{
		Title:  ScatterTitle,
		View:   view,
		Series: []string{},
		Points: make([]types.ScatterPoint, 0, len(rows)),
	}
	for _, s := range GroupByCategory(rows) {
		chart.Series = append(chart.Series, s.Category)
	}
	for _, r := range rows {
		chart.Points = append(chart.Points, types.ScatterPoint{
			PayloadMassKg:          r.PayloadMassKg,
			Class:                  r.Class,
			BoosterVersionCategory: r.BoosterVersionCategory,
			LaunchSite:             r.LaunchSite,
			BoosterVersion:         r.BoosterVersion,
			FlightNumber:           r.FlightNumber,
		})
	}
	return chart
}
