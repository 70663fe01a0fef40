package stats

import (
	"reflect"
	"testing"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

func TestFilterFullRangeReturnsEverything(t *testing.T) {
	records := fixtureRecords()
	got := Filter(records, types.NewViewState(models.AllSites, 0, 10000))
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("expected full dataset, got %d rows", len(got))
	}
}

func TestFilterSiteAndExactPayload(t *testing.T) {
	got := Filter(fixtureRecords(), types.NewViewState(models.SiteCCAFSLC40, 5000, 5000))
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, r := range got {
		if r.LaunchSite != models.SiteCCAFSLC40 || r.PayloadMassKg != 5000 {
			t.Fatalf("unexpected row %+v", r)
		}
	}
}

func TestFilterPayloadBoundsInclusive(t *testing.T) {
	records := fixtureRecords()
	tests := []struct {
		name     string
		low      float64
		high     float64
		expected int
	}{
		{name: "lower bound", low: 0, high: 0, expected: 1},
		{name: "upper bound", low: 9600, high: 10000, expected: 1},
		{name: "middle", low: 2205, high: 5000, expected: 5},
		{name: "empty gap", low: 6100, high: 9500, expected: 0},
		{name: "reversed handles", low: 5000, high: 2205, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := types.NewViewState(models.AllSites, tt.low, tt.high)
			got := Filter(records, view)
			if len(got) != tt.expected {
				t.Fatalf("expected %d rows, got %d", tt.expected, len(got))
			}
			for _, r := range got {
				if !view.Payload.Contains(r.PayloadMassKg) {
					t.Fatalf("row outside range: %+v", r)
				}
			}
		})
	}
}

func TestFilterIsExactSubset(t *testing.T) {
	records := fixtureRecords()
	view := types.NewViewState(models.AllSites, 2500, 7500)
	got := Filter(records, view)

	var want []models.LaunchRecord
	for _, r := range records {
		if r.PayloadMassKg >= 2500 && r.PayloadMassKg <= 7500 {
			want = append(want, r)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFilterEmptyResult(t *testing.T) {
	got := Filter(fixtureRecords(), types.NewViewState("Boca Chica", 0, 10000))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	rows := Filter(fixtureRecords(), types.NewViewState(models.SiteKSCLC39A, 0, 10000))
	series := GroupByCategory(rows)
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].Category != "FT" || len(series[0].Records) != 2 {
		t.Fatalf("unexpected first series %+v", series[0])
	}
	if series[1].Category != "B4" || len(series[1].Records) != 1 {
		t.Fatalf("unexpected second series %+v", series[1])
	}
}

func TestScatterPoints(t *testing.T) {
	view := types.NewViewState(models.SiteVAFBSLC4E, 0, 10000)
	chart := Scatter(fixtureRecords(), view)
	if chart.View != view {
		t.Fatalf("unexpected view %+v", chart.View)
	}
	if !reflect.DeepEqual(chart.Series, []string{"v1.1", "FT"}) {
		t.Fatalf("unexpected series %v", chart.Series)
	}
	if len(chart.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(chart.Points))
	}
	if chart.Points[1].PayloadMassKg != 9600 || chart.Points[1].Class != 1 {
		t.Fatalf("unexpected point %+v", chart.Points[1])
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := fixtureRecords()
	ranges := []types.PayloadRange{
		types.NewPayloadRange(0, 10000),
		types.NewPayloadRange(5000, 5000),
		types.NewPayloadRange(2500, 7500),
		types.NewPayloadRange(9999, 10000),
	}
	for _, site := range append([]string{models.AllSites}, knownSites...) {
		for _, p := range ranges {
			view := types.NewViewState(site, p.Low, p.High)
			if first, second := Filter(records, view), Filter(records, view); !reflect.DeepEqual(first, second) {
				t.Fatalf("filter not idempotent for %s %v", site, p)
			}
			if first, second := Scatter(records, view), Scatter(records, view); !reflect.DeepEqual(first, second) {
				t.Fatalf("scatter not idempotent for %s %v", site, p)
			}
		}
	}
	if !reflect.DeepEqual(records, fixtureRecords()) {
		t.Fatal("filter mutated records")
	}
}
