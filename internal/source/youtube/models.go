package youtube

// YouTube Data API v3 response structures, limited to the fields the
// poller consumes.

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      searchItemID `json:"id"`
	Snippet snippet      `json:"snippet"`
}

type searchItemID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	PublishedAt          string     `json:"publishedAt"`
	Title                string     `json:"title"`
	ChannelTitle         string     `json:"channelTitle"`
	LiveBroadcastContent string     `json:"liveBroadcastContent"`
	Thumbnails           thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	High    *thumbnail `json:"high"`
	Medium  *thumbnail `json:"medium"`
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

func (t thumbnails) best() *string {
	for _, th := range []*thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.URL != "" {
			url := th.URL
			return &url
		}
	}
	return nil
}

type videosResponse struct {
	Items []videoDetail `json:"items"`
}

type videoDetail struct {
	ID                   string                `json:"id"`
	LiveStreamingDetails *liveStreamingDetails `json:"liveStreamingDetails"`
}

type liveStreamingDetails struct {
	ActualStartTime    string `json:"actualStartTime"`
	ScheduledStartTime string `json:"scheduledStartTime"`
	ActualEndTime      string `json:"actualEndTime"`
}
