// Package media defines shared types for the tikgrab application.
package media

// Video is the normalized record produced by the extraction pipeline,
// regardless of which extractor found it. URL is always non-empty;
// every other field may be blank when the page didn't carry it.
type Video struct {
	URL       string `json:"url"`                 // Direct video URL
	Thumbnail string `json:"thumbnail,omitempty"` // Static or animated cover image
	Title     string `json:"title,omitempty"`     // Video description/caption
	Author    string `json:"author,omitempty"`    // "@handle" when derived from a raw handle
	Source    string `json:"source"`              // Extractor that produced the record (diagnostics only)
}

// HistoryEntry represents a single entry in the extraction history.
type HistoryEntry struct {
	PageURL  string // TikTok page URL the record was extracted from
	Title    string // Video description at extraction time
	Author   string // "@handle"
	VideoURL string // Extracted direct video URL
	Source   string // Extractor that produced it
}
