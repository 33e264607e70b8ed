// Package extract pulls video metadata out of raw TikTok page HTML.
// It tries the embedded-state blobs the web app has shipped over time
// (newest first) and falls back to generic Open Graph tags when none of
// them is present.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"tikgrab/internal/media"
)

// Extractor reads one known page shape out of raw HTML.
// The boolean reports whether the shape was found and usable; a false
// return is an expected outcome, not an error. Extractors never panic
// or surface parse failures — a malformed blob is simply "not found".
type Extractor interface {
	// Name identifies the extractor (recorded in Video.Source).
	Name() string

	// Extract scans the HTML and returns a record if this extractor's
	// shape is present with a usable video URL.
	Extract(html string) (*media.Video, bool)
}

// ErrNoMatch is returned by Extract when every extractor reported "not found".
var ErrNoMatch = errors.New("could not extract video data")

// Extractors returns the extraction strategies in priority order.
// The structured blobs come first, newest page generation first; the
// Open Graph fallback runs only when all of them miss. Order matters
// for tie-break when a page carries more than one blob: first match wins.
func Extractors() []Extractor {
	return []Extractor{
		&universalExtractor{},
		&sigiExtractor{},
		&nextDataExtractor{},
		&ogMetaExtractor{},
	}
}

// Extract runs the full pipeline over raw page HTML and returns the
// first record produced. It is a pure function of its input: no state
// is shared between calls and it is safe to call concurrently.
// Each extractor runs exactly once; retrying is the caller's business.
func Extract(html string) (*media.Video, error) {
	var tried []string
	for _, e := range Extractors() {
		if v, ok := e.Extract(html); ok {
			return v, nil
		}
		tried = append(tried, e.Name())
	}
	return nil, fmt.Errorf("%w (tried %s): the page layout may have changed or the video may be private or removed",
		ErrNoMatch, strings.Join(tried, ", "))
}

// firstNonEmpty returns the first non-empty value, or "".
// Used for the ordered field fallbacks in the item projection.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
