package extract

import (
	"encoding/json"

	"tikgrab/internal/media"
)

// universalExtractor reads the __UNIVERSAL_DATA_FOR_REHYDRATION__ blob,
// the state shape current TikTok pages ship. The item node sits at
// __DEFAULT_SCOPE__ -> "webapp.video-detail" -> itemInfo -> itemStruct.
type universalExtractor struct{}

func (e *universalExtractor) Name() string { return "universal_data" }

type universalData struct {
	DefaultScope map[string]json.RawMessage `json:"__DEFAULT_SCOPE__"`
}

type videoDetail struct {
	ItemInfo struct {
		ItemStruct *itemData `json:"itemStruct"`
	} `json:"itemInfo"`
}

func (e *universalExtractor) Extract(html string) (*media.Video, bool) {
	blob := scriptJSON(universalDataRe, html)
	if blob == "" {
		return nil, false
	}

	var data universalData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, false
	}

	raw, ok := data.DefaultScope["webapp.video-detail"]
	if !ok {
		return nil, false
	}

	var detail videoDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false
	}
	if detail.ItemInfo.ItemStruct == nil {
		return nil, false
	}

	return detail.ItemInfo.ItemStruct.record(e.Name())
}
