package renderer

import (
	"math"

	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
)

// Volume compares front and back month traded volume around a roll. The
// ratio crossing 1 marks the liquidity crossover, the usual time to roll.
type Volume struct {
	FrontTicker string      `json:"frontTicker"`
	BackTicker  string      `json:"backTicker"`
	Rows        []VolumeRow `json:"rows"`
	LatestFront int64       `json:"latestFront"`
	LatestBack  int64       `json:"latestBack"`
	Ratio       float64     `json:"ratio"`
	// RollSignal is set once the back month out-trades the front month.
	RollSignal bool `json:"rollSignal"`
}

// VolumeRow is one common trading day of both contracts.
type VolumeRow struct {
	On    date.Date `json:"on"`
	Front int64     `json:"front"`
	Back  int64     `json:"back"`
	Ratio float64   `json:"ratio"`
}

// NewVolume creates a Volume report from fetched roll volume data.
func NewVolume(rv *rollbook.RollVolume) *Volume {
	v := &Volume{
		FrontTicker: rv.FrontTicker,
		BackTicker:  rv.BackTicker,
		LatestFront: rv.LatestFront,
		LatestBack:  rv.LatestBack,
		Ratio:       rv.Ratio,
		RollSignal:  rv.Ratio >= 1,
	}
	for i, day := range rv.Days {
		row := VolumeRow{
			On:    day,
			Front: int64(rv.FrontVolume[i]),
			Back:  int64(rv.BackVolume[i]),
		}
		if rv.FrontVolume[i] > 0 {
			row.Ratio = rv.BackVolume[i] / rv.FrontVolume[i]
		} else {
			row.Ratio = math.Inf(1)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

const volumeMarkdownTemplate = `# Roll Volume: {{ .FrontTicker }} vs {{ .BackTicker }}

| Date | {{ .FrontTicker }} | {{ .BackTicker }} | Back/Front |
|:---|---:|---:|---:|
{{- range .Rows }}
| {{ .On }} | {{ .Front }} | {{ .Back }} | {{ printf "%.2f" .Ratio }} |
{{- end }}

Latest ratio: **{{ printf "%.2f" .Ratio }}**
{{ if .RollSignal }}
The back month now out-trades the front month: consider rolling.
{{- else }}
Liquidity is still in the front month.
{{- end }}
`

// RenderVolume renders the Volume report to markdown.
func RenderVolume(v *Volume) string {
	return render("volume", volumeMarkdownTemplate, v)
}
