package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/nishc/policylint/internal/schema"
)

type markdownRenderer struct{}

// mdView decorates a report with the summary counts the template shows.
type mdView struct {
	*schema.Report
	Pass    int
	Warning int
	Fail    int
}

var mdTemplate = template.Must(template.New("report").Parse(`# Policy Validation Report

**Document:** {{ .DocumentID }}
**Standard:** {{ .StandardID }}
**Overall:** {{ .OverallStatus }}
**Length:** {{ .DocumentLength }} characters
**Pass:** {{ .Pass }} | **Warning:** {{ .Warning }} | **Fail:** {{ .Fail }}

| Section | Status | Message |
|---|---|---|
{{ range .Results }}| {{ .Section }} | {{ .Status }} | {{ .Message }} |
{{ end }}`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	pass, warning, fail := schema.Counts(report.Results)
	view := mdView{Report: report, Pass: pass, Warning: warning, Fail: fail}

	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
