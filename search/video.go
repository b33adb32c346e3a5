package search

import (
	"encoding/json"
	"fmt"
	"time"
)

// VideoRecord is one short video returned by the provider.
// Two records with the same ID are the same video.
type VideoRecord struct {
	ID          int64     `json:"id" jsonschema:"description=Provider identifier of the video. Identity of the record."`
	OwnerID     int64     `json:"owner_id" jsonschema:"description=Identifier of the user or community that owns the video."`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	LikeCount   int       `json:"likes" jsonschema:"minimum=0"`
	ViewCount   int       `json:"views" jsonschema:"minimum=0"`
	Duration    int       `json:"duration" jsonschema:"description=Length in seconds."`
	PublishedAt time.Time `json:"published_at"`
	Player      string    `json:"player,omitempty" jsonschema:"description=Embeddable player URL."`
}

// URL returns the public page of the video.
func (v VideoRecord) URL() string {
	return fmt.Sprintf("https://vk.com/video%d_%d", v.OwnerID, v.ID)
}

// providerItem mirrors a single entry of response.items.
type providerItem struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Likes       struct {
		Count int `json:"count"`
	} `json:"likes"`
	Views    int    `json:"views"`
	Date     int64  `json:"date"`
	Duration int    `json:"duration"`
	Player   string `json:"player"`
}

func (p providerItem) record() VideoRecord {
	return VideoRecord{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		LikeCount:   p.Likes.Count,
		ViewCount:   p.Views,
		Duration:    p.Duration,
		PublishedAt: time.Unix(p.Date, 0).UTC(),
		Player:      p.Player,
	}
}

// envelope is the top level of every provider response.
type envelope struct {
	Response *struct {
		Count int            `json:"count"`
		Items []providerItem `json:"items"`
	} `json:"response"`
	Error json.RawMessage `json:"error"`
}
