package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/nishc/policylint/internal/schema"
)

type termRenderer struct{}

var (
	termPass    = color.New(color.FgGreen)
	termWarning = color.New(color.FgYellow)
	termFail    = color.New(color.FgRed)
	termSkipped = color.New(color.Faint)
	termBold    = color.New(color.Bold)
)

// statusIcon returns the indicator shown next to each verdict.
func statusIcon(s schema.Status) string {
	switch s {
	case schema.StatusPass:
		return "✅"
	case schema.StatusWarning:
		return "⚠️"
	case schema.StatusFail:
		return "❌"
	default:
		return "–"
	}
}

func statusColor(s schema.Status) *color.Color {
	switch s {
	case schema.StatusPass:
		return termPass
	case schema.StatusWarning:
		return termWarning
	case schema.StatusFail:
		return termFail
	default:
		return termSkipped
	}
}

func (r *termRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s (%s)\n", termBold.Sprint(report.DocumentID), report.StandardID)
	for _, res := range report.Results {
		line := fmt.Sprintf("  %s %-40s %s", statusIcon(res.Status), res.Section, res.Message)
		fmt.Fprintln(&buf, statusColor(res.Status).Sprint(line))
	}

	pass, warning, fail := schema.Counts(report.Results)
	fmt.Fprintf(&buf, "%s %s  (%d pass, %d warning, %d fail, %d characters)\n",
		statusIcon(report.OverallStatus),
		statusColor(report.OverallStatus).Sprintf("overall: %s", report.OverallStatus),
		pass, warning, fail, report.DocumentLength)

	return buf.Bytes(), nil
}
