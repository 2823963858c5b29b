// Package match locates a standard's sections inside raw document text.
// Headings are recognised by a lexical heuristic: a short line carrying
// an outline marker, a markdown marker, or consistent capitalization.
package match

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nishc/policylint/internal/config"
	"github.com/nishc/policylint/internal/standard"
)

// Location is where a section was found in the document text. Offsets
// are byte positions into the text. Start == End signals a mention-only
// match: the term appears in body prose but no heading establishes it
// as a section.
type Location struct {
	Start        int
	End          int
	BodyStart    int    // first byte after the heading line
	MatchedAlias string // the name or alias that matched
	Heading      string // trimmed heading line text, empty for mention-only
	HasMarker    bool   // heading carried an outline or markdown marker
}

// MentionOnly reports whether the section was referenced without being
// established as a delimited section.
func (l *Location) MentionOnly() bool { return l.Start == l.End }

var (
	// outlinePattern matches "1. ", "4.2 ", "3)" and "A. " style markers.
	outlinePattern = regexp.MustCompile(`^(?:\d+(?:\.\d+)+[.)]?|\d+[.)]|[A-Za-z][.)])\s+`)
	// markdownPattern matches "# " through "###### ".
	markdownPattern = regexp.MustCompile(`^#{1,6}\s+`)
	// numberedComponents counts the numeric depth of an outline marker.
	numberedComponents = regexp.MustCompile(`^\d+(?:\.\d+)*`)
)

type heading struct {
	start     int // byte offset of the line's first byte
	bodyStart int // byte offset just past the line and its newline
	text      string
	norm      string
	level     int
	hasMarker bool
}

// Locate finds the first qualifying heading whose normalized content
// contains the section name or one of its aliases, and resolves its
// span. Falls back to a case-insensitive body search that yields a
// mention-only match. Returns nil when the section is entirely absent.
// At most one location is returned regardless of duplicate aliases.
func Locate(text string, spec standard.SectionSpec, cfg config.Matcher) *Location {
	terms := searchTerms(spec)
	if len(terms) == 0 {
		return nil
	}

	headings := scanHeadings(text, cfg)
	for i, h := range headings {
		for _, term := range terms {
			if !strings.Contains(h.norm, term.norm) {
				continue
			}
			end := len(text)
			for _, next := range headings[i+1:] {
				if next.level <= h.level {
					end = next.start
					break
				}
			}
			return &Location{
				Start:        h.start,
				End:          end,
				BodyStart:    min(h.bodyStart, end),
				MatchedAlias: term.raw,
				Heading:      h.text,
				HasMarker:    h.hasMarker,
			}
		}
	}

	lower := strings.ToLower(text)
	for _, term := range terms {
		if idx := strings.Index(lower, strings.ToLower(term.raw)); idx >= 0 {
			return &Location{Start: idx, End: idx, BodyStart: idx, MatchedAlias: term.raw}
		}
	}
	return nil
}

// HasStructuredHeadings reports whether the document exhibits markdown
// or numbered headings anywhere.
func HasStructuredHeadings(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if markdownPattern.MatchString(trimmed) || outlinePattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// scanHeadings returns every heading-like line in document order.
func scanHeadings(text string, cfg config.Matcher) []heading {
	var out []heading
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		lineStart := offset
		offset += len(line) + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || utf8.RuneCountInString(trimmed) > cfg.MaxHeadingLen {
			continue
		}

		level, hasMarker := headingLevel(trimmed)
		if !hasMarker && !isTitleish(trimmed) {
			continue
		}
		if level == 0 {
			level = 1
		}
		out = append(out, heading{
			start:     lineStart,
			bodyStart: min(offset, len(text)),
			text:      trimmed,
			norm:      normalize(trimmed),
			level:     level,
			hasMarker: hasMarker,
		})
	}
	return out
}

// headingLevel returns the outline depth of a marked heading and
// whether any marker is present. Markdown depth is the number of '#'
// characters; numbered depth is the number of dotted components.
func headingLevel(trimmed string) (int, bool) {
	if markdownPattern.MatchString(trimmed) {
		return strings.IndexFunc(trimmed, func(r rune) bool { return r != '#' }), true
	}
	if outlinePattern.MatchString(trimmed) {
		if m := numberedComponents.FindString(trimmed); m != "" {
			return strings.Count(m, ".") + 1, true
		}
		return 1, true
	}
	return 0, false
}

// smallWords may stay lowercase inside a title-cased heading.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"by": true, "for": true, "in": true, "of": true, "on": true,
	"or": true, "the": true, "to": true, "with": true,
}

// isTitleish reports whether a line is set apart by consistent
// capitalization: every word starts uppercase (small words exempt) and
// the line does not end like a sentence.
func isTitleish(trimmed string) bool {
	trimmed = strings.TrimSuffix(trimmed, ":")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', ',', ';', '!', '?':
		return false
	}

	sawLetter := false
	for _, word := range strings.Fields(trimmed) {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsLetter(r) {
			continue
		}
		sawLetter = true
		if unicode.IsLower(r) && !smallWords[strings.ToLower(word)] {
			return false
		}
	}
	return sawLetter
}

type term struct {
	raw  string
	norm string
}

// searchTerms yields the section name followed by its aliases, with
// duplicate or empty terms removed so overlapping aliases cannot
// produce duplicate matches.
func searchTerms(spec standard.SectionSpec) []term {
	seen := make(map[string]bool)
	var out []term
	for _, raw := range append([]string{spec.Name}, spec.Aliases...) {
		norm := normalize(raw)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, term{raw: raw, norm: norm})
	}
	return out
}

// normalize case-folds a heading or term, strips any leading marker,
// and replaces punctuation with spaces so containment checks see only
// word content.
func normalize(s string) string {
	s = markdownPattern.ReplaceAllString(s, "")
	s = outlinePattern.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
