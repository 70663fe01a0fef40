package api

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/stats"
	"github.com/vainnor/spacex-dash/types"
)

const (
	chartWidth  = 900
	chartHeight = 450
)

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

func rendererFor(format string) (chart.RendererProvider, string) {
	if format == "png" {
		return chart.PNG, "image/png"
	}
	return chart.SVG, "image/svg+xml"
}

// RenderPie draws a pie chart table
func RenderPie(rp chart.RendererProvider, w io.Writer, pie types.PieChart) error {
	if len(pie.Slices) == 0 {
		return renderEmpty(rp, w, pie.Title)
	}

	values := make([]chart.Value, 0, len(pie.Slices))
	for _, s := range pie.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
		})
	}

	pc := chart.PieChart{
		Title:  pie.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return pc.Render(rp, w)
}

// RenderScatter draws payload mass against outcome with one color per booster category
func RenderScatter(rp chart.RendererProvider, w io.Writer, view types.ViewState, rows []models.LaunchRecord) error {
	title := stats.ScatterTitle
	if !view.AllSites() {
		title = fmt.Sprintf("%s at %s", title, view.Site)
	}
	if len(rows) == 0 {
		return renderEmpty(rp, w, title)
	}

	series := []chart.Series{}
	for i, s := range stats.GroupByCategory(rows) {
		xs := make([]float64, 0, len(s.Records))
		ys := make([]float64, 0, len(s.Records))
		for _, r := range s.Records {
			xs = append(xs, r.PayloadMassKg)
			ys = append(ys, float64(r.Class))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40}},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: payloadAxisRange(view.Payload),
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(rp, w)
}

// payloadAxisRange spans the selected payload range, widened when both handles meet
func payloadAxisRange(p types.PayloadRange) *chart.ContinuousRange {
	pad := math.Max(250, (p.High-p.Low)*0.02)
	return &chart.ContinuousRange{Min: p.Low - pad, Max: p.High + pad}
}

// renderEmpty draws the chart frame with no data points
func renderEmpty(rp chart.RendererProvider, w io.Writer, title string) error {
	hidden := chart.Style{Hidden: true}
	ch := chart.Chart{
		Title:  title + " (no data)",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:  chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
			},
		},
	}
	return ch.Render(rp, w)
}

func writeChart(w http.ResponseWriter, r *http.Request, draw func(chart.RendererProvider, io.Writer) error) {
	rp, contentType := rendererFor(mux.Vars(r)["format"])

	var buf bytes.Buffer
	if err := draw(rp, &buf); err != nil {
		log.Printf("Error rendering chart %s: %v", r.URL.Path, err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// GetPieImage renders the launch outcome pie chart for the selected site
func GetPieImage(ds Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := parseView(r.URL.Query(), ds.DefaultView())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pie := stats.Aggregate(ds.Records(), view.Site)
		writeChart(w, r, func(rp chart.RendererProvider, out io.Writer) error {
			return RenderPie(rp, out, pie)
		})
	}
}

// GetScatterImage renders the payload vs outcome chart for the selected view
func GetScatterImage(ds Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := parseView(r.URL.Query(), ds.DefaultView())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows := stats.Filter(ds.Records(), view)
		writeChart(w, r, func(rp chart.RendererProvider, out io.Writer) error {
			return RenderScatter(rp, out, view, rows)
		})
	}
}
