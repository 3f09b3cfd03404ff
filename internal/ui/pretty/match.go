package pretty

import (
	"fmt"
	"strings"

	"github.com/LooneyRichie/looneygrep/pkg/search"
)

// FormatMatchText styles every occurrence span of a match within its line.
// The underlying text is untouched; only styling wraps the spans.
func (s *Styles) FormatMatchText(text string, spans []search.Span) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span.Start < last || span.End > len(text) || span.End <= span.Start {
			continue
		}
		b.WriteString(text[last:span.Start])
		b.WriteString(s.MatchSpan.Render(text[span.Start:span.End]))
		last = span.End
	}
	b.WriteString(text[last:])

	return b.String()
}

// FormatMatchLine renders a matched line with its 1-based line number.
func (s *Styles) FormatMatchLine(m search.Match) string {
	return fmt.Sprintf("%s %s",
		s.LineNumber.Render(fmt.Sprintf("%d:", m.Line+1)),
		s.FormatMatchText(m.Text, m.Spans),
	)
}

// FormatContextLine renders a context line with its 1-based line number.
// The text may already carry syntax-highlight escapes.
func (s *Styles) FormatContextLine(lineIndex int, text string) string {
	return fmt.Sprintf("%s %s",
		s.LineNumber.Render(fmt.Sprintf("%d:", lineIndex+1)),
		text,
	)
}

// FormatUnitHeader renders the header printed before a unit's matches.
func (s *Styles) FormatUnitHeader(label string, matchCount int) string {
	header := s.FilePath.Render(label)
	if matchCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d matches)", matchCount))
	}
	return header
}

// FormatSeparator renders the divider between independent match blocks.
func (s *Styles) FormatSeparator() string {
	return s.Separator.Render("---")
}

// FormatTypeNote renders the detected file-type note.
func (s *Styles) FormatTypeNote(note string) string {
	return s.TypeNote.Render(note)
}

// FormatReplacePrompt renders the per-match confirmation prompt.
func (s *Styles) FormatReplacePrompt(m search.Match) string {
	return fmt.Sprintf("%s %s ",
		s.Prompt.Render(fmt.Sprintf("Replace in line %d? (y/n/all/quit):", m.Line+1)),
		s.FormatMatchText(m.Text, m.Spans),
	)
}
