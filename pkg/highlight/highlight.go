// Package highlight renders source lines with terminal syntax coloring.
// It wraps chroma, choosing the lexer from the detected language with a
// filename fallback. Highlighting is cosmetic: a failed tokenize or an
// unknown language degrades to the plain line, never an error.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// styleName is the chroma style used for terminal output.
const styleName = "base16-snazzy"

// Highlighter renders lines of one source unit.
type Highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
	enabled   bool
}

// New creates a Highlighter for a unit. The lexer is resolved from the
// detected language first, then the file name. A nil result is never
// returned; a disabled highlighter passes lines through untouched.
func New(language, path string, enabled bool) *Highlighter {
	if !enabled {
		return &Highlighter{}
	}

	lexer := lexers.Get(language)
	if lexer == nil && path != "" {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		// Plain text gets no styling at all.
		return &Highlighter{}
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatter,
		style:     style,
		enabled:   true,
	}
}

// Enabled reports whether the highlighter will color lines.
func (h *Highlighter) Enabled() bool {
	return h.enabled
}

// Line returns the syntax-colored rendering of one line, or the line
// unchanged when highlighting is off or tokenization fails.
func (h *Highlighter) Line(line string) string {
	if !h.enabled || line == "" {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return line
	}

	// Chroma appends the trailing newline of the tokenized text.
	return strings.TrimSuffix(b.String(), "\n")
}
