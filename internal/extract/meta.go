package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tikgrab/internal/media"
)

// ogMetaExtractor is the last-resort fallback: generic Open Graph meta
// tags. Each field is looked up independently; only the video URL is
// mandatory. Parsing the document with goquery resolves character
// entities in attribute values, so titles like "Hello &amp; World" come
// out as literal text.
type ogMetaExtractor struct{}

func (e *ogMetaExtractor) Name() string { return "og_meta" }

func (e *ogMetaExtractor) Extract(html string) (*media.Video, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}

	url := metaProperty(doc, "og:video")
	if url == "" {
		url = metaProperty(doc, "og:video:url")
	}
	if url == "" {
		return nil, false
	}

	return &media.Video{
		URL:       url,
		Thumbnail: metaProperty(doc, "og:image"),
		Title:     metaProperty(doc, "og:title"),
		Author:    metaName(doc, "twitter:creator"),
		Source:    e.Name(),
	}, true
}

func metaProperty(doc *goquery.Document, prop string) string {
	return doc.Find(`meta[property="` + prop + `"]`).First().AttrOr("content", "")
}

func metaName(doc *goquery.Document, name string) string {
	return doc.Find(`meta[name="` + name + `"]`).First().AttrOr("content", "")
}
