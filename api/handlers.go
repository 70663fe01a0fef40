package api

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vainnor/spacex-dash/config"
	"github.com/vainnor/spacex-dash/stats"
	"github.com/vainnor/spacex-dash/types"
)

// Query parameters carrying the view state
const (
	paramSite = "site"
	paramMin  = "min"
	paramMax  = "max"
)

type SitesResponse struct {
	Options []config.SiteOption `json:"options"`
	Default string              `json:"default"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// parseView builds the view state for a request. Missing bounds fall back to
// the fallback view; bounds given in either order are accepted.
func parseView(q url.Values, fallback types.ViewState) (types.ViewState, error) {
	low, err := parseBound(q, paramMin, fallback.Payload.Low)
	if err != nil {
		return types.ViewState{}, err
	}
	high, err := parseBound(q, paramMax, fallback.Payload.High)
	if err != nil {
		return types.ViewState{}, err
	}
	site := q.Get(paramSite)
	if site == "" {
		site = fallback.Site
	}
	return types.NewViewState(site, low, high), nil
}

func parseBound(q url.Values, name string, fallback float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, raw)
	}
	return v, nil
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// GetSites lists the launch site dropdown options
func GetSites(layout config.Layout) http.HandlerFunc {
	resp := SitesResponse{Options: layout.Sites}
	if len(layout.Sites) > 0 {
		resp.Default = layout.Sites[0].Value
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, resp)
	}
}

func GetDatasetStats(ds Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ds.GetStats())
	}
}

// GetPieChart returns the launch outcome counts for the selected site
func GetPieChart(ds Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := parseView(r.URL.Query(), ds.DefaultView())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, stats.Aggregate(ds.Records(), view.Site))
	}
}

// GetScatterChart returns the launches inside the payload range for the selected site
func GetScatterChart(ds Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := parseView(r.URL.Query(), ds.DefaultView())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, stats.Scatter(ds.Records(), view))
	}
}
