package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/billsplit/pkg/models/domain"
)

type TableConfig struct {
	NameWidth         int
	ValueWidth        int
	ParticipantsWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:         24,
		ValueWidth:        12,
		ParticipantsWidth: 40,
	}
}

// Reporter renders the report as fixed-width tables
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	cfg := c.config
	funcMap := template.FuncMap{
		"list": func(items ...string) []string { return items },
		"itemRow": func(name, price, perPerson string, participants []string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %-*s |",
				cfg.NameWidth, name,
				cfg.ValueWidth, price,
				cfg.ValueWidth, perPerson,
				cfg.ParticipantsWidth, strings.Join(participants, ", "))
		},
		"itemSeparator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.NameWidth+2),
				strings.Repeat("-", cfg.ValueWidth+2),
				strings.Repeat("-", cfg.ValueWidth+2),
				strings.Repeat("-", cfg.ParticipantsWidth+2))
		},
		"owedRow": func(name, raw, value string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s |",
				cfg.NameWidth, name,
				cfg.ValueWidth, raw,
				cfg.ValueWidth, value)
		},
		"owedSeparator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", cfg.NameWidth+2),
				strings.Repeat("-", cfg.ValueWidth+2),
				strings.Repeat("-", cfg.ValueWidth+2))
		},
	}

	tmpl := `
{{.Title}}

{{itemSeparator}}
{{itemRow "Item" "Price" "Per person" (list "Split between")}}
{{itemSeparator}}
{{range .Items}}{{itemRow .Name .Price .PerPerson .Participants}}
{{end}}{{itemSeparator}}

Subtotal: {{.Subtotal}}
{{if .Charge}}Additional Charge: {{.Charge}}
{{end}}{{if .Discount}}Discount: {{.Discount}}
{{end}}
{{owedSeparator}}
{{owedRow "Participant" "Items" "Owed"}}
{{owedSeparator}}
{{range .Owed}}{{owedRow .Name .Raw .Value}}
{{end}}{{owedSeparator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
