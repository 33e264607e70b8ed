// Package provider handles talking to TikTok: recognizing video links
// and fetching their pages. It never inspects page content — that is
// the extract package's job.
package provider

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"tikgrab/internal/httputil"
)

// maxPageSize caps how much of a page body is read.
const maxPageSize = 10 * 1024 * 1024 // 10MB

// Recognized video address shapes: the canonical @handle/video/<id> form,
// short links, and the /t/ share form.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https://(www\.)?tiktok\.com/@[\w.-]+/video/\d+`),
	regexp.MustCompile(`^https://(vm|vt)\.tiktok\.com/\w+`),
	regexp.MustCompile(`^https://(www\.)?tiktok\.com/t/\w+`),
}

// Transport failures the caller may want to present differently.
var (
	ErrNotFound = errors.New("video not found: it may have been removed or made private")
	ErrBlocked  = errors.New("request blocked or rate limited: wait a while before retrying")
)

// IsVideoURL reports whether the address matches a recognized TikTok
// video link shape. It gates fetching: unrecognized input is rejected
// before any network access.
func IsVideoURL(rawURL string) bool {
	for _, re := range videoURLPatterns {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// TikTok fetches video pages from tiktok.com.
type TikTok struct {
	client    *http.Client
	userAgent string
}

// New creates a TikTok provider with the given outbound identity and
// request timeout.
func New(userAgent string, timeout time.Duration) *TikTok {
	return &TikTok{
		client:    httputil.NewClient(timeout),
		userAgent: userAgent,
	}
}

// FetchPage performs a GET against a video page URL and returns the
// response body. Redirects (short links resolve through one) and
// content encoding are handled by the client, so the result is the
// plain page HTML. Non-2xx statuses are classified into distinct errors.
func (t *TikTok) FetchPage(pageURL string) (string, error) {
	if !IsVideoURL(pageURL) {
		return "", fmt.Errorf("not a recognized TikTok video link: %q", pageURL)
	}

	resp, err := httputil.Get(t.client, pageURL, t.userAgent)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, pageURL); err != nil {
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("reading page: %w", err)
	}

	return string(body), nil
}

// statusError classifies a non-2xx response into a distinct,
// human-actionable error. Returns nil for success statuses.
func statusError(code int, pageURL string) error {
	switch {
	case code >= 200 && code <= 299:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusForbidden || code == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", ErrBlocked, code)
	default:
		return fmt.Errorf("unexpected status %d for %s", code, pageURL)
	}
}
