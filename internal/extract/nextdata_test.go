package extract

import "testing"

func TestNextDataExtract(t *testing.T) {
	e := &nextDataExtractor{}
	v, ok := e.Extract("<html>" + nextBlob + "</html>")
	if !ok {
		t.Fatal("Extract() = not found")
	}
	if v.URL != "https://cdn.example/next.mp4" {
		t.Errorf("URL = %q", v.URL)
	}
	if v.Author != "@jude" {
		t.Errorf("Author = %q, want @jude", v.Author)
	}
	if v.Source != "next_data" {
		t.Errorf("Source = %q, want next_data", v.Source)
	}
}

func TestNextDataExtractNotFound(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no marker", `<html><body>nothing</body></html>`},
		{"malformed JSON", `<script id="__NEXT_DATA__" type="application/json">{"props":{</script>`},
		{"itemStruct missing", `<script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":{"serverCode":404}}}</script>`},
	}

	e := &nextDataExtractor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := e.Extract(tt.html); ok {
				t.Errorf("Extract() = %+v, want not found", v)
			}
		})
	}
}
