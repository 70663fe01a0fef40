package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vainnor/spacex-dash/config"
	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

// Dataset is the read-only launch table served by the dashboard
type Dataset interface {
	Records() []models.LaunchRecord
	GetStats() types.DatasetStats
	DefaultView() types.ViewState
}

// NewRouter creates and configures a new router with the dashboard page, chart images and API endpoints
func NewRouter(ds Dataset, layout config.Layout, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(LogRequests)

	r.HandleFunc("/", Dashboard(ds, layout)).Methods("GET")
	r.HandleFunc("/healthz", Health).Methods("GET")

	// Rendered charts
	r.HandleFunc("/charts/pie.{format:svg|png}", GetPieImage(ds)).Methods("GET")
	r.HandleFunc("/charts/scatter.{format:svg|png}", GetScatterImage(ds)).Methods("GET")

	// Apply rate limiting middleware to the JSON API
	api := r.PathPrefix("/api").Subrouter()
	if limiter != nil {
		api.Use(limiter.Middleware)
	}

	api.HandleFunc("/sites", GetSites(layout)).Methods("GET")
	api.HandleFunc("/dataset/stats", GetDatasetStats(ds)).Methods("GET")
	api.HandleFunc("/charts/pie", GetPieChart(ds)).Methods("GET")
	api.HandleFunc("/charts/scatter", GetScatterChart(ds)).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return r
}
