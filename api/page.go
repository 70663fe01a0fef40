package api

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vainnor/spacex-dash/config"
	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/types"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"kg": formatKg,
}).ParseFS(templateFS, "templates/dashboard.html"))

type pageOption struct {
	config.SiteOption
	Selected bool
}

type pageData struct {
	Title      string
	Sites      []pageOption
	Slider     config.Slider
	View       types.ViewState
	Stats      types.DatasetStats
	PieURL     string
	ScatterURL string
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// chartURL returns the image URL of a chart for the view
func chartURL(name string, view types.ViewState) string {
	q := url.Values{}
	q.Set(paramSite, view.Site)
	q.Set(paramMin, formatKg(view.Payload.Low))
	q.Set(paramMax, formatKg(view.Payload.High))
	return "/charts/" + name + ".svg?" + q.Encode()
}

// Dashboard renders the dashboard page. The initial view is every site over the full slider range.
func Dashboard(ds Dataset, layout config.Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fallback := types.ViewState{
			Site:    models.AllSites,
			Payload: types.PayloadRange{Low: layout.Slider.Min, High: layout.Slider.Max},
		}
		view, err := parseView(r.URL.Query(), fallback)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data := pageData{
			Title:      layout.Title,
			Slider:     layout.Slider,
			View:       view,
			Stats:      ds.GetStats(),
			PieURL:     chartURL("pie", view),
			ScatterURL: chartURL("scatter", view),
		}
		for _, opt := range layout.Sites {
			data.Sites = append(data.Sites, pageOption{SiteOption: opt, Selected: opt.Value == view.Site})
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			log.Printf("Error rendering dashboard: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
