package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/util"
	"github.com/samber/lo"
)

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	spinnerC spinner.Model
	resultsC list.Model
	helpC    help.Model

	// videos holds the deduplicated result in provider order
	videos    []search.VideoRecord
	order     string
	started   time.Time
	lastError error

	width, height int

	ctx     context.Context
	cancel  context.CancelFunc
	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.resultsC.SetSize(width-xx, height-yy)
	b.resultsC.Help.Width = width - xx
	b.helpC.Width = width - xx

	b.width = width - x
	b.height = height - y
}

// applyOrder re-sorts the provider-ordered videos by key. An empty key restores provider order.
func (b *statefulBubble) applyOrder(key string) tea.Cmd {
	b.order = key

	videos := b.videos
	if key != "" {
		videos = search.SortBy(b.videos, key)
	}

	cmd := b.resultsC.SetItems(lo.Map(videos, func(v search.VideoRecord, _ int) list.Item {
		return &listItem{video: v}
	}))
	b.resultsC.ResetSelected()
	b.resultsC.Title = b.title()

	return cmd
}

func (b *statefulBubble) title() string {
	if b.order == "" {
		return fmt.Sprintf("%q", b.options.Query.Text)
	}
	return fmt.Sprintf("%q by %s", b.options.Query.Text, b.order)
}

func (b *statefulBubble) selected() (search.VideoRecord, bool) {
	item, ok := b.resultsC.SelectedItem().(*listItem)
	if !ok {
		return search.VideoRecord{}, false
	}
	return item.video, true
}

func newBubble(options *Options) *statefulBubble {
	ctx, cancel := context.WithCancel(context.Background())

	bubble := &statefulBubble{
		keymap:  newStatefulKeymap(),
		order:   options.Order,
		ctx:     ctx,
		cancel:  cancel,
		options: options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color.Accent).
		Foreground(color.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.resultsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.resultsC.KeyMap = bubble.keymap.forList()
	bubble.resultsC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	bubble.resultsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	bubble.resultsC.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(color.Purple).
		Padding(0, 1)
	bubble.resultsC.Styles.NoItems = paddingStyle
	bubble.resultsC.SetStatusBarItemName("video", "videos")
	bubble.resultsC.StatusMessageLifetime = 3 * time.Second
	bubble.resultsC.Title = bubble.title()

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Accent)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return bubble
}
