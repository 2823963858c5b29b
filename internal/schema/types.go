package schema

// Report is the complete outcome of validating one document against one standard.
type Report struct {
	DocumentID     string          `json:"document_id"`
	StandardID     string          `json:"standard_id"`
	OverallStatus  Status          `json:"overall_status"`
	Results        []SectionResult `json:"results"`
	DocumentLength int             `json:"document_length"`
}

// SectionResult is the verdict for a single required section.
type SectionResult struct {
	Section string  `json:"section"`
	Status  Status  `json:"status"`
	Message string  `json:"message"`
	Span    *Span   `json:"span,omitempty"`
	Details Details `json:"details,omitempty"`
}

// Span marks where a section was located in the source text.
// Start == End means the section was mentioned but not established
// as a delimited section.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the span is a mention-only match.
func (s Span) Empty() bool { return s.Start == s.End }

// Details carries scalar diagnostics attached to a section result,
// e.g. matched_heading or matched_length.
type Details map[string]any

// Status is the verdict for a section or a whole document.
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// StatusOrdinal returns the severity ordering for a status, used by
// --fail-on comparison. pass(0) < warning(1) < fail(2).
// Returns -1 for skipped or an unrecognised status.
func StatusOrdinal(s Status) int {
	switch s {
	case StatusPass:
		return 0
	case StatusWarning:
		return 1
	case StatusFail:
		return 2
	default:
		return -1
	}
}

// IsValidStatus reports whether s is one of the four defined statuses.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPass, StatusWarning, StatusFail, StatusSkipped:
		return true
	}
	return false
}

// Counts returns the pass, warning, and fail totals across results.
// Skipped results are not counted.
func Counts(results []SectionResult) (pass, warning, fail int) {
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			pass++
		case StatusWarning:
			warning++
		case StatusFail:
			fail++
		}
	}
	return
}
