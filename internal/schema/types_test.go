package schema

import "testing"

func TestStatusOrdinal(t *testing.T) {
	if StatusOrdinal(StatusPass) >= StatusOrdinal(StatusWarning) {
		t.Error("pass should order below warning")
	}
	if StatusOrdinal(StatusWarning) >= StatusOrdinal(StatusFail) {
		t.Error("warning should order below fail")
	}
	if StatusOrdinal(StatusSkipped) != -1 {
		t.Errorf("StatusOrdinal(skipped) = %d, want -1", StatusOrdinal(StatusSkipped))
	}
	if StatusOrdinal("bogus") != -1 {
		t.Errorf("StatusOrdinal(bogus) = %d, want -1", StatusOrdinal("bogus"))
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPass, StatusWarning, StatusFail, StatusSkipped} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	if IsValidStatus("ok") {
		t.Error(`IsValidStatus("ok") = true`)
	}
}

func TestSpanEmpty(t *testing.T) {
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Error("equal offsets should be an empty span")
	}
	if (Span{Start: 5, End: 9}).Empty() {
		t.Error("distinct offsets should not be empty")
	}
}

func TestCounts(t *testing.T) {
	results := []SectionResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarning},
		{Status: StatusFail},
		{Status: StatusSkipped},
	}
	pass, warning, fail := Counts(results)
	if pass != 2 || warning != 1 || fail != 1 {
		t.Errorf("Counts = (%d, %d, %d), want (2, 1, 1)", pass, warning, fail)
	}
}
