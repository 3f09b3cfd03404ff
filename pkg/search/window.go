package search

// Window is an inclusive range of zero-based line indexes surrounding a match.
type Window struct {
	Start int
	End   int
}

// Len returns the number of lines covered by the window.
func (w Window) Len() int {
	return w.End - w.Start + 1
}

// Contains reports whether line falls inside the window.
func (w Window) Contains(line int) bool {
	return line >= w.Start && line <= w.End
}

// ContextWindow returns the window of up to n lines on each side of line,
// clipped to [0, total). Partial windows at document boundaries are valid.
// With n = 0 the window covers only the matched line.
//
// Windows from consecutive matches are never merged: a line that falls into
// two windows is reported by both.
func ContextWindow(total, line, n int) Window {
	start := line - n
	if start < 0 {
		start = 0
	}

	end := line + n
	if end > total-1 {
		end = total - 1
	}

	return Window{Start: start, End: end}
}
