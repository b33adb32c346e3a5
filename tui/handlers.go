package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipseek/clipseek/log"
	"github.com/clipseek/clipseek/open"
	"github.com/clipseek/clipseek/search"
)

type (
	videosMsg []search.VideoRecord
	errorMsg  struct{ err error }
)

// swapped in tests
var openURL = open.Start

func (b *statefulBubble) runSearch() tea.Cmd {
	b.started = time.Now()
	searcher, q, ctx := b.options.Searcher, b.options.Query, b.ctx

	return func() tea.Msg {
		videos, err := searcher.Search(ctx, q)
		if err != nil {
			return errorMsg{err}
		}
		return videosMsg(videos)
	}
}

func (b *statefulBubble) openSelected() tea.Cmd {
	video, ok := b.selected()
	if !ok {
		return nil
	}

	link := video.URL()
	if err := openURL(link); err != nil {
		log.Warnf("open %s: %v", link, err)
		return b.resultsC.NewStatusMessage("could not open " + link)
	}

	return b.resultsC.NewStatusMessage("opened " + link)
}
