package renderer

import "github.com/etnz/rollbook"

// Instruments is the catalog listing report, grouped by category in
// catalog order.
type Instruments struct {
	Categories []InstrumentCategory `json:"categories"`
}

// InstrumentCategory groups the instruments of one product family.
type InstrumentCategory struct {
	Name        string                `json:"name"`
	Instruments []rollbook.Instrument `json:"instruments"`
}

// NewInstruments creates the catalog report. The catalog declaration order
// keeps each category contiguous, so a single pass groups them.
func NewInstruments() *Instruments {
	r := &Instruments{}
	for inst := range rollbook.Instruments() {
		n := len(r.Categories)
		if n == 0 || r.Categories[n-1].Name != inst.Category {
			r.Categories = append(r.Categories, InstrumentCategory{Name: inst.Category})
			n++
		}
		cat := &r.Categories[n-1]
		cat.Instruments = append(cat.Instruments, inst)
	}
	return r
}

const instrumentsMarkdownTemplate = `# Instrument Catalog
{{ range .Categories }}
## {{ .Name }}

| Symbol | Name | Multiplier | Yahoo Ticker | Exchange |
|:---|:---|---:|:---|:---|
{{- range .Instruments }}
| {{ .Symbol }} | {{ .Name }} | ${{ printf "%g" .Multiplier }}/pt | {{ .YahooTicker }} | {{ .Exchange }} |
{{- end }}
{{ end }}`

// RenderInstruments renders the catalog report to markdown.
func RenderInstruments(r *Instruments) string {
	return render("instruments", instrumentsMarkdownTemplate, r)
}
