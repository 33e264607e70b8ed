package extract

import (
	"encoding/json"

	"tikgrab/internal/media"
)

// nextDataExtractor reads the legacy __NEXT_DATA__ blob from the
// Next.js era of the web app. The item node sits at
// props -> pageProps -> itemInfo -> itemStruct.
type nextDataExtractor struct{}

func (e *nextDataExtractor) Name() string { return "next_data" }

type nextData struct {
	Props struct {
		PageProps struct {
			ItemInfo struct {
				ItemStruct *itemData `json:"itemStruct"`
			} `json:"itemInfo"`
		} `json:"pageProps"`
	} `json:"props"`
}

func (e *nextDataExtractor) Extract(html string) (*media.Video, bool) {
	blob := scriptJSON(nextDataRe, html)
	if blob == "" {
		return nil, false
	}

	var data nextData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, false
	}
	if data.Props.PageProps.ItemInfo.ItemStruct == nil {
		return nil, false
	}

	return data.Props.PageProps.ItemInfo.ItemStruct.record(e.Name())
}
