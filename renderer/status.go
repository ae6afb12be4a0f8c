package renderer

import (
	"github.com/etnz/rollbook"
	"github.com/etnz/rollbook/date"
)

// Status is the full picture of one roll ledger: the active position with
// its adjusted breakeven, and the closed contract periods behind it.
type Status struct {
	// Instrument is the catalog symbol of the ledger (e.g. "ES").
	Instrument string `json:"instrument"`
	// Name is the human readable instrument name, when the symbol is in the catalog.
	Name string `json:"name,omitempty"`
	// Multiplier is the contract multiplier in dollars per price point.
	Multiplier float64 `json:"multiplier"`
	// Periods is the number of contract periods, closed and active.
	Periods int `json:"periods"`
	// TotalRealized is the realized P&L banked over all closed periods.
	TotalRealized rollbook.Money `json:"totalRealized"`
	// Active is the currently open contract period, nil once the position is closed.
	Active *StatusPosition `json:"active,omitempty"`
	// History lists the closed contract periods in chronological order.
	History []StatusPeriod `json:"history,omitempty"`
}

// StatusPosition describes the active contract period.
type StatusPosition struct {
	Number     int       `json:"number"`
	Contract   string    `json:"contract"`
	Direction  string    `json:"direction"`
	Quantity   int       `json:"quantity"`
	EntryDate  date.Date `json:"entryDate"`
	EntryPrice float64   `json:"entryPrice"`
	// Breakeven is the roll-adjusted breakeven price, meaningful only when
	// HasBreakeven is set.
	Breakeven    float64 `json:"breakeven,omitempty"`
	HasBreakeven bool    `json:"-"`
	// CurrentPrice and the fields below it are filled only when a current
	// price was supplied, flagged by HasPrice.
	CurrentPrice       float64         `json:"currentPrice,omitempty"`
	Unrealized         rollbook.Money  `json:"unrealized,omitzero"`
	TruePNL            rollbook.Money  `json:"truePnl,omitzero"`
	TruePNLPerContract rollbook.Points `json:"truePnlPerContract,omitempty"`
	HasPrice           bool            `json:"-"`
}

// StatusPeriod describes one closed contract period.
type StatusPeriod struct {
	Number      int             `json:"number"`
	Contract    string          `json:"contract"`
	EntryDate   date.Date       `json:"entryDate"`
	EntryPrice  float64         `json:"entryPrice"`
	ExitDate    date.Date       `json:"exitDate"`
	ExitPrice   float64         `json:"exitPrice"`
	Realized    rollbook.Money  `json:"realized"`
	PerContract rollbook.Points `json:"perContract"`
	Notes       string          `json:"notes,omitempty"`
}

// NewStatus creates a Status report from a ledger. A positive current price
// enables the unrealized and true P&L fields; pass 0 when no price is known.
func NewStatus(l *rollbook.Ledger, current float64) *Status {
	s := &Status{
		Instrument:    l.Instrument(),
		Multiplier:    l.Multiplier(),
		Periods:       l.Len(),
		TotalRealized: rollbook.USD(l.TotalRealized()),
	}
	if inst, ok := rollbook.GetInstrument(l.Instrument()); ok {
		s.Name = inst.Name
	}

	for e := range l.Closed() {
		realized, _ := e.Realized(l.Multiplier())
		per, _ := e.RealizedPerContract()
		s.History = append(s.History, StatusPeriod{
			Number:      e.Number,
			Contract:    e.Contract,
			EntryDate:   e.EntryDate,
			EntryPrice:  e.EntryPrice,
			ExitDate:    e.ExitDate,
			ExitPrice:   e.ExitPrice,
			Realized:    rollbook.USD(realized),
			PerContract: rollbook.Points(per),
			Notes:       e.Notes,
		})
	}

	active, ok := l.Active()
	if !ok {
		return s
	}
	pos := &StatusPosition{
		Number:     active.Number,
		Contract:   active.Contract,
		Direction:  active.Direction.String(),
		Quantity:   active.Quantity,
		EntryDate:  active.EntryDate,
		EntryPrice: active.EntryPrice,
	}
	pos.Breakeven, pos.HasBreakeven = l.Breakeven()
	if current > 0 {
		pos.HasPrice = true
		pos.CurrentPrice = current
		if unrealized, ok := active.Unrealized(current, l.Multiplier()); ok {
			pos.Unrealized = rollbook.USD(unrealized)
		}
		if pnl, ok := l.TruePNL(current); ok {
			pos.TruePNL = rollbook.USD(pnl)
		}
		if per, ok := l.TruePNLPerContract(current); ok {
			pos.TruePNLPerContract = rollbook.Points(per)
		}
	}
	s.Active = pos
	return s
}

const statusMarkdownTemplate = `# {{ .Instrument }} Roll Ledger
{{ if .Name }}
{{ .Name }}, multiplier ${{ printf "%g" .Multiplier }}/pt, {{ .Periods }} contract period(s).
{{- else }}
Multiplier ${{ printf "%g" .Multiplier }}/pt, {{ .Periods }} contract period(s).
{{- end }}

{{- with .Active }}

## Active Position

| Roll # | Contract | Direction | Qty | Entry Date | Entry Price |
|---:|:---|:---|---:|:---|---:|
| {{ .Number }} | {{ .Contract }} | {{ .Direction }} | {{ .Quantity }} | {{ .EntryDate }} | {{ printf "%.2f" .EntryPrice }} |
{{ if .HasBreakeven }}
Adjusted breakeven: **{{ printf "%.2f" .Breakeven }}**
{{- end }}
{{- if .HasPrice }}
Current price: {{ printf "%.2f" .CurrentPrice }}
Unrealized P&L: {{ .Unrealized.SignedString }}
True P&L: **{{ .TruePNL.SignedString }}** ({{ .TruePNLPerContract }} per contract)
{{- end }}
{{- else }}

Position closed.
{{- end }}

Total realized P&L: **{{ .TotalRealized.SignedString }}**

{{- if .History }}

## Closed Periods

| Roll # | Contract | Entry Date | Entry | Exit Date | Exit | Realized | Per Contract | Notes |
|---:|:---|:---|---:|:---|---:|---:|---:|:---|
{{- range .History }}
| {{ .Number }} | {{ .Contract }} | {{ .EntryDate }} | {{ printf "%.2f" .EntryPrice }} | {{ .ExitDate }} | {{ printf "%.2f" .ExitPrice }} | {{ .Realized.SignedString }} | {{ .PerContract }} | {{ .Notes }} |
{{- end }}
{{- end }}
`

// RenderStatus renders the Status report to markdown.
func RenderStatus(s *Status) string {
	return render("status", statusMarkdownTemplate, s)
}
