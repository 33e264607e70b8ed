package extract

import (
	"bytes"
	"encoding/json"

	"tikgrab/internal/media"
)

// sigiExtractor reads the SIGI_STATE blob used by the previous page
// generation. ItemModule maps item IDs to item nodes; a video page is
// expected to describe exactly one item, so the first entry in document
// order is taken. Go maps don't preserve order, so the first entry is
// pulled with a token-level decode instead of unmarshalling the map.
type sigiExtractor struct{}

func (e *sigiExtractor) Name() string { return "sigi_state" }

type sigiState struct {
	ItemModule json.RawMessage `json:"ItemModule"`
}

func (e *sigiExtractor) Extract(html string) (*media.Video, bool) {
	blob := scriptJSON(sigiScriptRe, html)
	if blob == "" {
		blob = scriptJSON(sigiAssignRe, html)
	}
	if blob == "" {
		return nil, false
	}

	var state sigiState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, false
	}
	if len(state.ItemModule) == 0 {
		return nil, false
	}

	item, ok := firstModuleItem(state.ItemModule)
	if !ok {
		return nil, false
	}

	return item.record(e.Name())
}

// firstModuleItem decodes the first key/value pair of a JSON object
// into an item node.
func firstModuleItem(raw json.RawMessage) (*itemData, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}
	if !dec.More() {
		return nil, false
	}
	if _, err := dec.Token(); err != nil { // item ID key, unused
		return nil, false
	}

	var item itemData
	if err := dec.Decode(&item); err != nil {
		return nil, false
	}
	return &item, true
}
