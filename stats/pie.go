// Package stats derives the chart tables shown on the dashboard from the launch records.
package stats

import (
	"fmt"
	"strconv"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

// AllSitesPieTitle is the pie chart title when every site is selected
const AllSitesPieTitle = "Total Successful Launches by Site"

// SitePieTitle returns the pie chart title for a single site
func SitePieTitle(site string) string {
	return fmt.Sprintf("Successful vs Unsuccessful Launches for site %s", site)
}

// Aggregate counts launch outcomes for the pie chart.
// With ALL it counts successful launches per site; with a single site it
// counts that site's launches per outcome. Slices keep first appearance order.
func Aggregate(records []models.LaunchRecord, site string) types.PieChart {
	if site == models.AllSites {
		slices := countBy(records, models.LaunchRecord.Succeeded, func(r models.LaunchRecord) string {
			return r.LaunchSite
		})
		return types.PieChart{Title: AllSitesPieTitle, Slices: slices}
	}

	atSite := func(r models.LaunchRecord) bool { return r.LaunchSite == site }
	slices := countBy(records, atSite, func(r models.LaunchRecord) string {
		return strconv.Itoa(r.Class)
	})
	return types.PieChart{Title: SitePieTitle(site), Slices: slices}
}

func countBy(records []models.LaunchRecord, keep func(models.LaunchRecord) bool, key func(models.LaunchRecord) string) []types.PieSlice {
	slices := []types.PieSlice{}
	index := make(map[string]int)
	for _, r := range records {
		if !keep(r) {
			continue
		}
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(slices)
			index[k] = i
			slices = append(slices, types.PieSlice{Label: k})
		}
		slices[i].Value++
	}
	return slices
}
