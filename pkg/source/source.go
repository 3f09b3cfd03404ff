// Package source produces searchable units of text from files, directories,
// and web pages. One unit is one origin label paired with its lines.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/LooneyRichie/looneygrep/pkg/fsutil"
)

// ErrNotText indicates content that does not decode as UTF-8 text.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// Unit is one searchable body of text.
type Unit struct {
	// Label identifies the origin in output: a file path or a URL.
	Label string

	// Path is the backing file path. Empty for URL-sourced units.
	Path string

	// Lines is the unit's content split into lines, without terminators.
	Lines []string

	// TrailingNewline records whether the raw content ended with a newline,
	// so a rewrite can preserve it.
	TrailingNewline bool

	// Info is the file metadata snapshot taken at read time.
	// Nil for URL-sourced units.
	Info *fsutil.FileInfo
}

// IsFile reports whether the unit is backed by a local file.
func (u *Unit) IsFile() bool {
	return u.Path != ""
}

// Skipped records a source that could not be read during directory enumeration.
type Skipped struct {
	Path string
	Err  error
}

// FromFile reads a single file into a Unit.
// Non-text content fails the unit with ErrNotText.
func FromFile(ctx context.Context, path string) (*Unit, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, path)
	}

	lines, trailing := splitLines(string(content))

	return &Unit{
		Label:           path,
		Path:            path,
		Lines:           lines,
		TrailingNewline: trailing,
		Info:            info,
	}, nil
}

// FromDir enumerates the files of dir (non-recursive) and reads each into a
// Unit. Subdirectories are skipped; files that cannot be read or are not
// text are reported in the skipped list rather than failing the whole
// enumeration.
//
// Entries are processed in the directory's sorted order, so unit order is
// deterministic.
func FromDir(ctx context.Context, dir string) ([]*Unit, []Skipped, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var units []*Unit
	var skipped []Skipped

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("enumeration cancelled: %w", ctx.Err())
		default:
		}

		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		unit, err := FromFile(ctx, path)
		if err != nil {
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}

		units = append(units, unit)
	}

	return units, skipped, nil
}

// splitLines splits content on newlines, trimming a carriage return left by
// CRLF endings. A trailing newline does not produce an empty final line.
func splitLines(content string) (lines []string, trailingNewline bool) {
	if content == "" {
		return nil, false
	}

	trailingNewline = strings.HasSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\n")

	lines = strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, trailingNewline
}

// JoinLines is the inverse of splitLines: it reassembles unit lines into
// file content, restoring the trailing newline when the original had one.
// CRLF endings are normalized to LF on rewrite.
func JoinLines(lines []string, trailingNewline bool) string {
	joined := strings.Join(lines, "\n")
	if trailingNewline && joined != "" {
		joined += "\n"
	}
	return joined
}
