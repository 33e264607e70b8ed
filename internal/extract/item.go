package extract

import "tikgrab/internal/media"

// itemData is the item node shared by all structured-state blobs: the
// subtree describing one video and its author. Only the fields the
// projection reads are declared; everything else in the blob is ignored.
type itemData struct {
	ID     string     `json:"id"`
	Desc   string     `json:"desc"`
	Video  itemVideo  `json:"video"`
	Author itemAuthor `json:"author"`
}

type itemVideo struct {
	DownloadAddr string        `json:"downloadAddr"`
	PlayAddr     string        `json:"playAddr"`
	PlayAddrH264 string        `json:"playAddrH264"`
	Cover        string        `json:"cover"`
	DynamicCover string        `json:"dynamicCover"`
	BitrateInfo  []bitrateInfo `json:"bitrateInfo"`
}

type bitrateInfo struct {
	PlayAddr playAddr `json:"PlayAddr"`
}

type playAddr struct {
	URLList []string `json:"UrlList"`
}

type itemAuthor struct {
	UniqueID string `json:"uniqueId"`
	Nickname string `json:"nickname"`
}

// firstBitrateURL returns the first URL of the first bitrate variant.
// The web app lists renditions without a documented ordering policy;
// the first entry is assumed to be the default one.
func (v itemVideo) firstBitrateURL() string {
	if len(v.BitrateInfo) == 0 || len(v.BitrateInfo[0].PlayAddr.URLList) == 0 {
		return ""
	}
	return v.BitrateInfo[0].PlayAddr.URLList[0]
}

// record projects an item node into a normalized Video, tagged with the
// extractor that found it. Returns false when no video URL field is
// populated — a record without a video URL is useless and is never built.
func (it *itemData) record(source string) (*media.Video, bool) {
	url := firstNonEmpty(
		it.Video.DownloadAddr,
		it.Video.PlayAddr,
		it.Video.PlayAddrH264,
		it.Video.firstBitrateURL(),
	)
	if url == "" {
		return nil, false
	}

	v := &media.Video{
		URL:       url,
		Thumbnail: firstNonEmpty(it.Video.Cover, it.Video.DynamicCover),
		Title:     it.Desc,
		Source:    source,
	}

	if handle := firstNonEmpty(it.Author.UniqueID, it.Author.Nickname); handle != "" {
		v.Author = "@" + handle
	}

	return v, true
}
