// Package report renders the dashboard tables as plain terminal text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vainnor/spacex-dash/models"
	"github.com/vainnor/spacex-dash/stats"
	"github.com/vainnor/spacex-dash/types"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#503D36"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	numberCell  = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	textCell    = lipgloss.NewStyle().Width(16).PaddingLeft(2)
)

// Write prints the pie table and the scatter rows for view
func Write(w io.Writer, records []models.LaunchRecord, view types.ViewState) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	writePie(&b, p, stats.Aggregate(records, view.Site))
	b.WriteString("\n")
	writeScatter(&b, p, view, stats.Filter(records, view))

	_, err := io.WriteString(w, b.String())
	return err
}

func writePie(b *strings.Builder, p *message.Printer, pie types.PieChart) {
	b.WriteString(titleStyle.Render(pie.Title) + "\n")
	if len(pie.Slices) == 0 {
		b.WriteString(emptyStyle.Render("  no launches") + "\n")
		return
	}

	b.WriteString(headerStyle.Render(textCell.Render("LABEL")+numberCell.Render("LAUNCHES")+numberCell.Render("SHARE")) + "\n")
	total := pie.Total()
	for _, s := range pie.Slices {
		share := float64(s.Value) / float64(total) * 100
		b.WriteString(textCell.Render(s.Label) +
			numberCell.Render(p.Sprintf("%d", s.Value)) +
			numberCell.Render(p.Sprintf("%.1f%%", share)) + "\n")
	}
}

func writeScatter(b *strings.Builder, p *message.Printer, view types.ViewState, rows []models.LaunchRecord) {
	title := p.Sprintf("%s (%s, %.0f-%.0f kg)", stats.ScatterTitle, view.Site, view.Payload.Low, view.Payload.High)
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(rows) == 0 {
		b.WriteString(emptyStyle.Render("  no launches in range") + "\n")
		return
	}

	for _, s := range stats.GroupByCategory(rows) {
		b.WriteString(headerStyle.Render(fmt.Sprintf("  %s (%d)", s.Category, len(s.Records))) + "\n")
		for _, r := range s.Records {
			b.WriteString(numberCell.Render(p.Sprintf("%.0f kg", r.PayloadMassKg)) +
				numberCell.Render(fmt.Sprintf("class %d", r.Class)) +
				textCell.Render(r.LaunchSite) + "\n")
		}
	}
}
