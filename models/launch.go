package models

// LaunchRecord represents one row of the launch records table
type LaunchRecord struct {
	FlightNumber           int     `json:"flight_number,omitempty"`
	LaunchSite             string  `json:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg"`
	Class                  int     `json:"class"`
	BoosterVersion         string  `json:"booster_version,omitempty"`
	BoosterVersionCategory string  `json:"booster_version_category"`
}

// Outcome values stored in the class column
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// Succeeded reports whether the launch outcome was a success
func (r LaunchRecord) Succeeded() bool {
	return r.Class == ClassSuccess
}
