package types

// PieSlice is one labeled wedge of a pie chart
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieChart is the derived table drawn as a proportion chart
type PieChart struct {
	Title  string     `json:"title"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is a single plotted launch
type ScatterPoint struct {
	PayloadMassKg          float64 `json:"x"`
	Class                  int     `json:"y"`
	BoosterVersionCategory string  `json:"color"`
	LaunchSite             string  `json:"launch_site"`
	BoosterVersion         string  `json:"booster_version,omitempty"`
	FlightNumber           int     `json:"flight_number,omitempty"`
}

// ScatterChart is the derived table drawn as a payload vs outcome chart
type ScatterChart struct {
	Title  string         `json:"title"`
	View   ViewState      `json:"view"`
	Series []string       `json:"series"`
	Points []ScatterPoint `json:"points"`
}
