// Package revdiff produces patch text between two revisions of a
// policy document, so a re-validation run can show what changed since
// the last report.
package revdiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nishc/policylint/internal/ingest"
)

// Patch returns the diff-match-patch patch text transforming oldText
// into newText. Both sides are normalized first so line-ending and
// trailing-whitespace churn does not show up as changes. Returns the
// empty string when the normalized revisions are identical.
func Patch(oldText, newText string) string {
	oldNorm := ingest.Normalize(oldText)
	newNorm := ingest.Normalize(newText)
	if oldNorm == newNorm {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldNorm, newNorm, false)
	patches := dmp.PatchMake(oldNorm, diffs)
	return dmp.PatchToText(patches)
}
