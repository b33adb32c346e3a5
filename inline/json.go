package inline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/clipseek/clipseek/search"
	"github.com/samber/lo"
)

// Video is a record as it appears in JSON output.
type Video struct {
	search.VideoRecord
	URL string `json:"url" jsonschema:"description=Public page of the video"`
}

// QueryInfo echoes the query that produced the result.
type QueryInfo struct {
	Text        string     `json:"text"`
	PageSize    int        `json:"page_size"`
	MaxPages    int        `json:"max_pages"`
	Sort        string     `json:"sort"`
	DateFrom    *time.Time `json:"date_from,omitempty"`
	DateTo      *time.Time `json:"date_to,omitempty"`
	MinLikes    *int       `json:"min_likes,omitempty"`
	MinViews    *int       `json:"min_views,omitempty"`
	MinDuration *int       `json:"min_duration,omitempty"`
	MaxDuration *int       `json:"max_duration,omitempty"`
}

// Output is the document written in JSON format.
type Output struct {
	Query  QueryInfo `json:"query"`
	Order  string    `json:"order,omitempty"`
	Count  int       `json:"count"`
	Result []Video   `json:"result"`
}

func newOutput(options *Options) *Output {
	q := options.Query
	f := q.Filters

	return &Output{
		Query: QueryInfo{
			Text:        q.Text,
			PageSize:    q.PageSize,
			MaxPages:    q.MaxPages,
			Sort:        string(q.Sort),
			DateFrom:    f.DateFrom.ToPointer(),
			DateTo:      f.DateTo.ToPointer(),
			MinLikes:    f.MinLikes.ToPointer(),
			MinViews:    f.MinViews.ToPointer(),
			MinDuration: f.MinDuration.ToPointer(),
			MaxDuration: f.MaxDuration.ToPointer(),
		},
		Order: options.Order,
		Count: len(options.Videos),
		Result: lo.Map(options.Videos, func(v search.VideoRecord, _ int) Video {
			return Video{VideoRecord: v, URL: v.URL()}
		}),
	}
}

func writeJSON(out io.Writer, options *Options) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newOutput(options))
}
