package stats

import "github.com/vainnor/spacex-dash/models"

var knownSites = []string{
	models.SiteCCAFSLC40,
	models.SiteVAFBSLC4E,
	models.SiteKSCLC39A,
	models.SiteCCAFSSLC40,
}

func launch(site string, payload float64, class int, category string) models.LaunchRecord {
	return models.LaunchRecord{
		LaunchSite:             site,
		PayloadMassKg:          payload,
		Class:                  class,
		BoosterVersionCategory: category,
	}
}

func fixtureRecords() []models.LaunchRecord {
	return []models.LaunchRecord{
		launch(models.SiteCCAFSLC40, 0, 0, "v1.0"),
		launch(models.SiteCCAFSLC40, 525, 0, "v1.0"),
		launch(models.SiteCCAFSLC40, 5000, 1, "v1.1"),
		launch(models.SiteCCAFSLC40, 5000, 0, "FT"),
		launch(models.SiteVAFBSLC4E, 500, 0, "v1.1"),
		launch(models.SiteVAFBSLC4E, 9600, 1, "FT"),
		launch(models.SiteKSCLC39A, 2490, 1, "FT"),
		launch(models.SiteKSCLC39A, 5300, 1, "FT"),
		launch(models.SiteKSCLC39A, 6070, 0, "B4"),
		launch(models.SiteCCAFSSLC40, 2205, 1, "FT"),
		launch(models.SiteCCAFSSLC40, 4990, 0, "B4"),
	}
}
