package collector

import (
	"time"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

// Dataset is the launch records table loaded at startup.
// It is never modified after construction and is safe for concurrent readers.
type Dataset struct {
	records []models.LaunchRecord
	stats   types.DatasetStats
}

func NewDataset(source string, records []models.LaunchRecord) *Dataset {
	if records == nil {
		records = []models.LaunchRecord{}
	}
	return &Dataset{
		records: records,
		stats:   summarize(source, records),
	}
}

// Records returns the shared record slice. Callers must not modify it.
func (d *Dataset) Records() []models.LaunchRecord {
	return d.records
}

func (d *Dataset) GetStats() types.DatasetStats {
	return d.stats
}

// DefaultView returns the initial dashboard view: every site over the observed payload range
func (d *Dataset) DefaultView() types.ViewState {
	return types.ViewState{Site: models.AllSites, Payload: d.stats.FullRange()}
}

func summarize(source string, records []models.LaunchRecord) types.DatasetStats {
	stats := types.DatasetStats{
		Source:   source,
		LoadedAt: time.Now(),
		Records:  len(records),
		Sites:    []string{},
	}

	seen := make(map[string]bool)
	for i, r := range records {
		if r.Succeeded() {
			stats.Successes++
		}
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			stats.Sites = append(stats.Sites, r.LaunchSite)
		}
		if i == 0 || r.PayloadMassKg < stats.MinPayload {
			stats.MinPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > stats.MaxPayload {
			stats.MaxPayload = r.PayloadMassKg
		}
	}

	return stats
}
