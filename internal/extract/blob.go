package extract

import "regexp"

// Each structured blob sits in a known script tag. The (?s) non-greedy
// capture grabs the smallest span up to the closing tag, so a page with
// trailing script garbage never drags in more than the blob itself.
var (
	universalDataRe = regexp.MustCompile(`(?s)<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__"[^>]*>(.*?)</script>`)
	sigiScriptRe    = regexp.MustCompile(`(?s)<script id="SIGI_STATE"[^>]*>(.*?)</script>`)
	nextDataRe      = regexp.MustCompile(`(?s)<script id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

	// Older pages assigned the state inline instead of a JSON script tag.
	// The assignment is always followed by another window[...] assignment,
	// which bounds the capture.
	sigiAssignRe = regexp.MustCompile(`(?s)window\['SIGI_STATE'\]\s*=\s*(.*?);window\[`)
)

// scriptJSON returns the JSON span captured by re, or "" when the
// marker is absent from the page.
func scriptJSON(re *regexp.Regexp, html string) string {
	m := re.FindStringSubmatch(html)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
