package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
=== {{.Title}} ===

Items:
{{range .Items}}- {{.Name}}: {{.Price}}
  Split between: {{join .Participants ", "}}
  Per person: {{.PerPerson}}
{{end}}
Subtotal: {{.Subtotal}}
{{if .Charge}}Additional Charge: {{.Charge}}
{{end}}{{if .Discount}}Discount: {{.Discount}}
{{end}}
Amount owed per person:
{{range .Owed}}{{.Name}}: {{.Value}}
{{end}}`
	t, err := template.New("report").Funcs(template.FuncMap{"join": strings.Join}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
