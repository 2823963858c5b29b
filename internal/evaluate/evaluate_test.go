package evaluate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nishc/policylint/internal/config"
	"github.com/nishc/policylint/internal/match"
	"github.com/nishc/policylint/internal/schema"
	"github.com/nishc/policylint/internal/standard"
)

func freeform(minLength int) *standard.Standard {
	return &standard.Standard{ID: "TEST", MinLength: minLength, Structured: false}
}

func structured(minLength int) *standard.Standard {
	return &standard.Standard{ID: "TEST-S", MinLength: minLength, Structured: true}
}

func mustLocate(t *testing.T, text string, spec standard.SectionSpec) *match.Location {
	t.Helper()
	loc := match.Locate(text, spec, config.Default().Matcher)
	if loc == nil {
		t.Fatalf("no match for %q in %q", spec.Name, text)
	}
	return loc
}

func evalCfg() config.Evaluator {
	return config.Default().Evaluator
}

func TestSection_NotFound(t *testing.T) {
	spec := standard.SectionSpec{Name: "Media Protection", Required: true}
	r := Section(freeform(10), spec, nil, "unrelated text long enough to clear the minimum", evalCfg())

	if r.Status != schema.StatusFail {
		t.Errorf("Status = %q, want fail", r.Status)
	}
	if r.Message != "section not found" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Span != nil {
		t.Errorf("Span = %+v, want nil", r.Span)
	}
}

func TestSection_MentionOnly(t *testing.T) {
	text := "The handbook covers incident response duties among many other operational responsibilities of staff."
	spec := standard.SectionSpec{Name: "Incident Response", Required: true}
	loc := mustLocate(t, text, spec)
	if !loc.MentionOnly() {
		t.Fatal("precondition: expected mention-only location")
	}

	r := Section(freeform(10), spec, loc, text, evalCfg())
	if r.Status != schema.StatusWarning {
		t.Errorf("Status = %q, want warning", r.Status)
	}
	if r.Message != "section referenced but not clearly delimited" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Span == nil || !r.Span.Empty() {
		t.Errorf("Span = %+v, want empty span", r.Span)
	}
}

func TestSection_Pass(t *testing.T) {
	text := "Password Policy\nAll passwords rotate every ninety days and use twelve characters minimum.\n"
	spec := standard.SectionSpec{Name: "Password Policy", Required: true}
	loc := mustLocate(t, text, spec)

	r := Section(freeform(10), spec, loc, text, evalCfg())
	if r.Status != schema.StatusPass {
		t.Fatalf("Status = %q, want pass (message %q)", r.Status, r.Message)
	}
	if r.Details["matched_heading"] != "Password Policy" {
		t.Errorf("matched_heading = %v", r.Details["matched_heading"])
	}
	if n, ok := r.Details["matched_length"].(int); !ok || n < 20 {
		t.Errorf("matched_length = %v, want >= 20", r.Details["matched_length"])
	}
}

func TestSection_Incomplete(t *testing.T) {
	text := "Password Policy\nRotate often.\n\nData Protection\nCustomer data is encrypted at rest and in transit at all times.\n"
	spec := standard.SectionSpec{Name: "Password Policy", Required: true}
	loc := mustLocate(t, text, spec)

	r := Section(freeform(10), spec, loc, text, evalCfg())
	if r.Status != schema.StatusWarning {
		t.Errorf("Status = %q, want warning", r.Status)
	}
	if r.Message != "section present but appears incomplete" {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestSection_StructureMismatch(t *testing.T) {
	// The document numbers its headings, but the matched one is bare.
	text := "1. Access Control\nLeast privilege for every account on every system.\n\nIncident Response\nIncidents are triaged by the on-call engineer within one hour.\n"
	spec := standard.SectionSpec{Name: "Incident Response", Required: true}
	loc := mustLocate(t, text, spec)
	if loc.HasMarker {
		t.Fatal("precondition: expected a marker-less heading")
	}

	r := Section(structured(10), spec, loc, text, evalCfg())
	if r.Status != schema.StatusWarning {
		t.Errorf("Status = %q, want warning", r.Status)
	}
	if r.Message != "section present but not properly structured" {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestSection_NoStructureAnywhere(t *testing.T) {
	// A structured standard still demands numbered or markdown headings
	// when the whole document is free-form prose.
	text := "Incident Response\nIncidents are triaged by the on-call engineer within one hour of detection.\n"
	spec := standard.SectionSpec{Name: "Incident Response", Required: true}
	loc := mustLocate(t, text, spec)

	r := Section(structured(10), spec, loc, text, evalCfg())
	if r.Status != schema.StatusWarning {
		t.Errorf("Status = %q, want warning (message %q)", r.Status, r.Message)
	}
	if r.Message != "section present but document lacks structured headings" {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestSection_ShortDocumentCapsPass(t *testing.T) {
	text := "Password Policy\nRotate passwords every ninety days always.\n"
	spec := standard.SectionSpec{Name: "Password Policy", Required: true}
	loc := mustLocate(t, text, spec)

	r := Section(freeform(5000), spec, loc, text, evalCfg())
	if r.Status != schema.StatusWarning {
		t.Errorf("Status = %q, want warning (capped)", r.Status)
	}
	if !strings.HasSuffix(r.Message, "document below minimum length") {
		t.Errorf("Message = %q, want short-document suffix", r.Message)
	}
}

func TestSection_ShortDocumentKeepsFail(t *testing.T) {
	spec := standard.SectionSpec{Name: "Media Protection", Required: true}
	r := Section(freeform(5000), spec, nil, "tiny", evalCfg())
	if r.Status != schema.StatusFail {
		t.Errorf("Status = %q, want fail (cap never upgrades a fail)", r.Status)
	}
	if !strings.Contains(r.Message, "section not found") {
		t.Errorf("Message = %q, should keep the local verdict", r.Message)
	}
}

func TestSection_Deterministic(t *testing.T) {
	text := "Password Policy\nAll passwords rotate every ninety days and use twelve characters minimum.\n"
	spec := standard.SectionSpec{Name: "Password Policy", Required: true}
	loc := mustLocate(t, text, spec)

	a := Section(freeform(10), spec, loc, text, evalCfg())
	b := Section(freeform(10), spec, loc, text, evalCfg())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}
