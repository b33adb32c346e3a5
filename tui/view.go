package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/util"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case resultsState:
		return listExtraPaddingStyle.Render(b.resultsC.View())
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	q := b.options.Query
	return b.renderLines(true, []string{
		style.Title("Searching"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s %s", b.spinnerC.View(), icon.Get(icon.Search), style.Bold(q.Text))),
		style.Faint(fmt.Sprintf("up to %d pages of %d", q.MaxPages, q.PageSize)),
	})
}

func (b *statefulBubble) viewError() string {
	lines := []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " The search failed:",
		"",
		wrap.String(b.lastError.Error(), util.Max(b.width, 40)),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

func timeSince(t time.Time) string {
	if t.IsZero() {
		return "0s"
	}
	return time.Since(t).Round(10 * time.Millisecond).String()
}
