package extract

import "testing"

func TestUniversalExtract(t *testing.T) {
	e := &universalExtractor{}
	v, ok := e.Extract("<html>" + universalBlob + "</html>")
	if !ok {
		t.Fatal("Extract() = not found")
	}
	if v.URL != "https://cdn.example/universal.mp4" {
		t.Errorf("URL = %q", v.URL)
	}
	if v.Source != "universal_data" {
		t.Errorf("Source = %q, want universal_data", v.Source)
	}
}

func TestUniversalExtractNotFound(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no marker", `<html><body>nothing</body></html>`},
		{"malformed JSON", `<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"__DEFAULT_SCOPE__":</script>`},
		{"scope key missing", `<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"other":true}</script>`},
		{"video-detail key missing", `<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"__DEFAULT_SCOPE__":{"webapp.app-context":{}}}</script>`},
		{"itemStruct missing", `<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"__DEFAULT_SCOPE__":{"webapp.video-detail":{"statusCode":10204,"itemInfo":{}}}}</script>`},
	}

	e := &universalExtractor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := e.Extract(tt.html); ok {
				t.Errorf("Extract() = %+v, want not found", v)
			}
		})
	}
}
