// Package renderer turns ledger data into markdown reports.
//
// Each report has three parts: a plain struct holding the report data with
// json tags (so a report can also be emitted as json), a New* constructor
// that extracts the data from the domain types, and a Render* function that
// executes a text/template over the struct. Numbers enter the structs
// already wrapped in their display types (Money, Points) so the templates
// stay free of formatting logic.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// render executes a named markdown template over data.
func render(name, tmpl string, data any) string {
	t := template.Must(template.New(name).Parse(tmpl))
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
