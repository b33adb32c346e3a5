package tui

import (
	"strings"

	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/util"
	"github.com/dustin/go-humanize"
)

// listItem adapts a video record to list.DefaultItem.
type listItem struct {
	video search.VideoRecord
}

func (t *listItem) Title() string {
	if strings.TrimSpace(t.video.Title) == "" {
		return "untitled"
	}
	return t.video.Title
}

func (t *listItem) Description() string {
	parts := []string{
		icon.Get(icon.View) + " " + util.Compact(t.video.ViewCount),
		icon.Get(icon.Like) + " " + util.Compact(t.video.LikeCount),
		icon.Get(icon.Clock) + " " + util.Clock(t.video.Duration),
	}

	if !t.video.PublishedAt.IsZero() {
		parts = append(parts, icon.Get(icon.Calendar)+" "+humanize.Time(t.video.PublishedAt))
	}

	return strings.Join(parts, "  ")
}

func (t *listItem) FilterValue() string {
	return t.video.Title
}
