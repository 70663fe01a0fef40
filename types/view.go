package types

import "github.com/vainnor/spacex-dash/models"

// PayloadRange is an inclusive payload mass interval in kilograms
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// NewPayloadRange orders the two slider handles into a range
func NewPayloadRange(a, b float64) PayloadRange {
	if a > b {
		a, b = b, a
	}
	return PayloadRange{Low: a, High: b}
}

// Contains reports whether mass lies within the range, both bounds included
func (p PayloadRange) Contains(mass float64) bool {
	return p.Low <= mass && mass <= p.High
}

// ViewState holds the dashboard controls for a single request
type ViewState struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// NewViewState builds a view state. An empty site selects every site.
func NewViewState(site string, low, high float64) ViewState {
	if site == "" {
		site = models.AllSites
	}
	return ViewState{Site: site, Payload: NewPayloadRange(low, high)}
}

// AllSites reports whether the view spans every launch site
func (v ViewState) AllSites() bool {
	return v.Site == models.AllSites
}
