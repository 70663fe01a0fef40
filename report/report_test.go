package report

import (
	"strings"
	"testing"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/stats"
	"github.com/vainnor/spacex-dash/types"
)

func records() []models.LaunchRecord {
	return []models.LaunchRecord{
		{LaunchSite: models.SiteCCAFSLC40, PayloadMassKg: 525, Class: 0, BoosterVersionCategory: "v1.0"},
		{LaunchSite: models.SiteKSCLC39A, PayloadMassKg: 5300, Class: 1, BoosterVersionCategory: "FT"},
		{LaunchSite: models.SiteKSCLC39A, PayloadMassKg: 9600, Class: 1, BoosterVersionCategory: "FT"},
	}
}

func TestWriteAllSites(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, records(), types.NewViewState(models.AllSites, 0, 10000)); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := b.String()
	for _, want := range []string{
		stats.AllSitesPieTitle,
		models.SiteKSCLC39A,
		"100.0%",
		"0-10,000 kg",
		"FT (2)",
		"9,600 kg",
		"class 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, records(), types.NewViewState("Boca Chica", 0, 100)); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "no launches\n") || !strings.Contains(out, "no launches in range") {
		t.Fatalf("expected empty markers in report:\n%s", out)
	}
}
