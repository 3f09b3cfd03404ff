package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is the byte range [Start, End) of one occurrence within a line.
// Spans always index the original line, so slicing it is safe even when
// case folding changes a rune's byte length.
type Span struct {
	Start int
	End   int
}

// Match is one line that contains the query substring.
// A line appears at most once in a match list; Spans records every
// occurrence within it so the presenter can style each hit.
type Match struct {
	// Line is the zero-based index of the line within its source unit.
	Line int

	// Text is the original, unnormalized line content.
	Text string

	// Spans are the byte ranges of each occurrence, in order.
	Spans []Span
}

// FindMatches scans lines in order and returns every line containing query.
// When ignoreCase is set, occurrences are located under Unicode simple case
// folding; the reported text is always the original line.
func FindMatches(lines []string, query string, ignoreCase bool) []Match {
	if query == "" {
		return nil
	}

	var matches []Match
	for i, line := range lines {
		var spans []Span
		if ignoreCase {
			spans = foldSpans(line, query)
		} else {
			spans = findSpans(line, query)
		}
		if len(spans) == 0 {
			continue
		}

		matches = append(matches, Match{
			Line:  i,
			Text:  line,
			Spans: spans,
		})
	}

	return matches
}

// findSpans returns every non-overlapping occurrence of needle in haystack,
// in order.
func findSpans(haystack, needle string) []Span {
	var spans []Span

	from := 0
	for {
		pos := strings.Index(haystack[from:], needle)
		if pos < 0 {
			return spans
		}
		start := from + pos
		spans = append(spans, Span{Start: start, End: start + len(needle)})
		from = start + len(needle)
	}
}

// foldSpans is findSpans under Unicode simple case folding, the relation
// strings.EqualFold uses. The scan walks the original haystack rune by rune,
// so each span's width reflects the original bytes rather than the folded
// form (folding can change a rune's encoded length, e.g. the Kelvin sign).
func foldSpans(haystack, needle string) []Span {
	if needle == "" {
		return nil
	}

	var spans []Span
	for i := 0; i < len(haystack); {
		if width, ok := foldPrefix(haystack[i:], needle); ok {
			spans = append(spans, Span{Start: i, End: i + width})
			i += width
			continue
		}
		_, size := utf8.DecodeRuneInString(haystack[i:])
		i += size
	}

	return spans
}

// foldPrefix reports whether s starts with needle under case folding,
// returning the byte length of the matched prefix of s.
func foldPrefix(s, needle string) (int, bool) {
	n := 0
	for _, want := range needle {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !foldEqual(r, want) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// foldEqual compares two runes under Unicode simple case folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// ReplaceAll substitutes every occurrence of query in line with replacement.
// With ignoreCase the occurrences are located by case-folded comparison
// against the original line, so the untouched portions keep their original
// bytes and the result is always valid UTF-8.
func ReplaceAll(line, query, replacement string, ignoreCase bool) string {
	if query == "" {
		return line
	}
	if !ignoreCase {
		return strings.ReplaceAll(line, query, replacement)
	}

	spans := foldSpans(line, query)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(line[last:span.Start])
		b.WriteString(replacement)
		last = span.End
	}
	b.WriteString(line[last:])

	return b.String()
}
