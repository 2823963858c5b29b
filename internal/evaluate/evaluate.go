// Package evaluate applies a standard's content rules to a located (or
// absent) section and produces the per-section verdict. Every function
// here is pure: identical inputs yield identical results.
package evaluate

import (
	"strings"
	"unicode/utf8"

	"github.com/nishc/policylint/internal/config"
	"github.com/nishc/policylint/internal/match"
	"github.com/nishc/policylint/internal/schema"
	"github.com/nishc/policylint/internal/standard"
)

const (
	msgNotFound       = "section not found"
	msgMentionOnly    = "section referenced but not clearly delimited"
	msgUnstructured   = "section present but not properly structured"
	msgNoStructure    = "section present but document lacks structured headings"
	msgIncomplete     = "section present but appears incomplete"
	msgPresent        = "section present"
	msgShortDocSuffix = "document below minimum length"
)

// Section evaluates one section's match result against the standard's
// rules. fullText is the whole document, used for the structure check
// and the document-level minimum-length cap.
func Section(std *standard.Standard, spec standard.SectionSpec, loc *match.Location, fullText string, cfg config.Evaluator) schema.SectionResult {
	result := sectionLocal(std, spec, loc, fullText, cfg)

	// A short document caps every section at warning; individually
	// healthy sections cannot hide the document-level deficiency.
	if utf8.RuneCountInString(fullText) < std.MinLength {
		if result.Status == schema.StatusPass {
			result.Status = schema.StatusWarning
		}
		result.Message = result.Message + "; " + msgShortDocSuffix
	}
	return result
}

func sectionLocal(std *standard.Standard, spec standard.SectionSpec, loc *match.Location, fullText string, cfg config.Evaluator) schema.SectionResult {
	if loc == nil {
		return schema.SectionResult{
			Section: spec.Name,
			Status:  schema.StatusFail,
			Message: msgNotFound,
		}
	}

	if loc.MentionOnly() {
		return schema.SectionResult{
			Section: spec.Name,
			Status:  schema.StatusWarning,
			Message: msgMentionOnly,
			Span:    &schema.Span{Start: loc.Start, End: loc.End},
			Details: schema.Details{"matched_alias": loc.MatchedAlias},
		}
	}

	body := strings.TrimSpace(fullText[loc.BodyStart:loc.End])
	bodyLen := utf8.RuneCountInString(body)
	details := schema.Details{
		"matched_alias":   loc.MatchedAlias,
		"matched_heading": loc.Heading,
		"matched_length":  bodyLen,
	}
	span := &schema.Span{Start: loc.Start, End: loc.End}

	// A structured standard demands outline or markdown headings. A bare
	// heading warns either way; the message says whether the document is
	// inconsistently numbered or carries no structure at all.
	if std.Structured && !loc.HasMarker {
		msg := msgUnstructured
		if !match.HasStructuredHeadings(fullText) {
			msg = msgNoStructure
		}
		return schema.SectionResult{
			Section: spec.Name,
			Status:  schema.StatusWarning,
			Message: msg,
			Span:    span,
			Details: details,
		}
	}

	if bodyLen < cfg.MinSectionBody {
		return schema.SectionResult{
			Section: spec.Name,
			Status:  schema.StatusWarning,
			Message: msgIncomplete,
			Span:    span,
			Details: details,
		}
	}

	return schema.SectionResult{
		Section: spec.Name,
		Status:  schema.StatusPass,
		Message: msgPresent,
		Span:    span,
		Details: details,
	}
}
