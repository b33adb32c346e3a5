package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/util"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.runSearch())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case videosMsg:
		b.videos = msg
		b.setState(resultsState)
		return b, tea.Batch(
			b.applyOrder(b.order),
			b.resultsC.NewStatusMessage(fmt.Sprintf("%s in %s", util.Quantify(len(msg), "video", "videos"), timeSince(b.started))),
		)
	case errorMsg:
		b.raiseError(msg.err)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			b.cancel()
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case resultsState:
		return b.updateResults(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	// typed filter text belongs to the list
	if keyMsg, ok := msg.(tea.KeyMsg); ok && b.resultsC.FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, b.keymap.open):
			return b, b.openSelected()
		case key.Matches(keyMsg, b.keymap.byLikes):
			return b, b.applyOrder(search.ByLikes)
		case key.Matches(keyMsg, b.keymap.byViews):
			return b, b.applyOrder(search.ByViews)
		case key.Matches(keyMsg, b.keymap.byRecency):
			return b, b.applyOrder(search.ByRecency)
		case key.Matches(keyMsg, b.keymap.providerOrder):
			return b, b.applyOrder("")
		}
	}

	var cmd tea.Cmd
	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, b.keymap.quit, b.keymap.back) {
		return b, tea.Quit
	}
	return b, nil
}
