package youtube

import "complaint-portal/internal/pkg/helper"

const embedBaseURL = "https://www.youtube.com/embed/"

type Embed struct {
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
	Width   string `json:"width"`
	Height  int    `json:"height"`
}

// Preview derives the embed for a watch, share or embed link.
func Preview(link string) (Embed, bool) {
	id, ok := helper.ExtractVideoID(link)
	if !ok {
		return Embed{}, false
	}
	return Embed{
		VideoID: id,
		URL:     embedBaseURL + id,
		Width:   "100%",
		Height:  200,
	}, true
}
