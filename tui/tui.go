// Package tui lets the user browse, re-sort and open search results in the terminal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipseek/clipseek/search"
)

// Searcher runs a complete search. *search.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, q search.Query) ([]search.VideoRecord, error)
}

// Options configures a browsing session.
type Options struct {
	Searcher Searcher
	Query    search.Query
	// Order is the sort key applied when results arrive. Empty keeps provider order.
	Order string
}

// Run starts the search and shows its results until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.cancel()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
