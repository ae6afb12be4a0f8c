package renderer

import (
	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
)

// Series is the cumulative P&L series of a ledger, one row per entry and
// exit event. The running total only moves on exits, so the entry rows
// make the flat segments of the continuous performance line visible.
type Series struct {
	Instrument string      `json:"instrument"`
	Rows       []SeriesRow `json:"rows"`
	// Final is the cumulative realized P&L after the last event.
	Final rollbook.Money `json:"final"`
}

// SeriesRow is one event on the cumulative P&L line.
type SeriesRow struct {
	Number     int            `json:"number"`
	Contract   string         `json:"contract"`
	On         date.Date      `json:"on"`
	Event      string         `json:"event"`
	Cumulative rollbook.Money `json:"cumulative"`
}

// NewSeries creates a Series report from a ledger.
func NewSeries(l *rollbook.Ledger) *Series {
	s := &Series{Instrument: l.Instrument()}
	for p := range l.CumulativeSeries() {
		s.Rows = append(s.Rows, SeriesRow{
			Number:     p.Number,
			Contract:   p.Contract,
			On:         p.On,
			Event:      p.Event,
			Cumulative: rollbook.USD(p.Cum),
		})
	}
	s.Final = rollbook.USD(l.TotalRealized())
	return s
}

const seriesMarkdownTemplate = `# {{ .Instrument }} Cumulative P&L
{{ if .Rows }}
| Roll # | Contract | Date | Event | Cumulative P&L |
|---:|:---|:---|:---|---:|
{{- range .Rows }}
| {{ .Number }} | {{ .Contract }} | {{ .On }} | {{ .Event }} | {{ .Cumulative.SignedString }} |
{{- end }}

Final realized P&L: **{{ .Final.SignedString }}**
{{- else }}
No events recorded.
{{- end }}
`

// RenderSeries renders the Series report to markdown.
func RenderSeries(s *Series) string {
	return render("series", seriesMarkdownTemplate, s)
}
