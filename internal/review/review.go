// Package review rolls per-section verdicts into one document-level
// report. Aggregation is purely functional; no shared accumulator.
package review

import (
	"github.com/nishc/policylint/internal/schema"
	"github.com/nishc/policylint/internal/standard"
)

const msgSkipped = "section not selected for validation"

// Aggregate assembles the final report from per-section results,
// preserving the standard's section order for presentation stability.
// Sections absent from enabled are replaced with a skipped result and
// never count toward the overall status. A nil enabled set means every
// section is enabled.
func Aggregate(docID string, docLen int, std *standard.Standard, enabled map[string]bool, perSection map[string]schema.SectionResult) *schema.Report {
	results := make([]schema.SectionResult, 0, len(std.Sections))
	for _, spec := range std.Sections {
		if !isEnabled(enabled, spec.Name) {
			results = append(results, schema.SectionResult{
				Section: spec.Name,
				Status:  schema.StatusSkipped,
				Message: msgSkipped,
			})
			continue
		}
		results = append(results, perSection[spec.Name])
	}

	return &schema.Report{
		DocumentID:     docID,
		StandardID:     std.ID,
		OverallStatus:  OverallStatus(std, enabled, perSection),
		Results:        results,
		DocumentLength: docLen,
	}
}

// OverallStatus derives the document verdict from the enabled sections:
// fail when any enabled required section failed, else warning when any
// enabled section warned or a non-required one failed, else pass. When
// no required section is enabled there is nothing conclusive to report,
// so the verdict is warning rather than pass.
func OverallStatus(std *standard.Standard, enabled map[string]bool, perSection map[string]schema.SectionResult) schema.Status {
	requiredEnabled := 0
	anyWarning := false
	for _, spec := range std.Sections {
		if !isEnabled(enabled, spec.Name) {
			continue
		}
		r := perSection[spec.Name]
		switch {
		case spec.Required && r.Status == schema.StatusFail:
			return schema.StatusFail
		case r.Status == schema.StatusWarning || r.Status == schema.StatusFail:
			anyWarning = true
		}
		if spec.Required {
			requiredEnabled++
		}
	}
	if anyWarning || requiredEnabled == 0 {
		return schema.StatusWarning
	}
	return schema.StatusPass
}

func isEnabled(enabled map[string]bool, name string) bool {
	if enabled == nil {
		return true
	}
	return enabled[name]
}
