package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// fetchTimeout bounds a single page fetch.
const fetchTimeout = 30 * time.Second

// maxFetchSize caps how much of a response body is read (16 MiB).
const maxFetchSize = 16 << 20

// FromURL fetches a web page and returns its body as a Unit labeled with the
// URL. A non-2xx status or a non-text body fails the fetch.
func FromURL(ctx context.Context, url string) (*Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrNotText, url)
	}

	lines, trailing := splitLines(string(body))

	return &Unit{
		Label:           url,
		Lines:           lines,
		TrailingNewline: trailing,
	}, nil
}
