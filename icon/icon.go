// Package icon renders UI symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/clipseek/clipseek/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Like
	View
	Clock
	Calendar
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╥﹏╥)", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", kaomoji: "(• •)", squares: "◫"},
	Search:   {emoji: "🔎", nerd: "", plain: "?", kaomoji: "(⊙_⊙)", squares: "◪"},
	Like:     {emoji: "❤️", nerd: "", plain: "♥", kaomoji: "(♡˙︶˙♡)", squares: "◆"},
	View:     {emoji: "👀", nerd: "", plain: "◉", kaomoji: "(◉_◉)", squares: "◈"},
	Clock:    {emoji: "⏱️", nerd: "", plain: "⏲", kaomoji: "(¬_¬)", squares: "◷"},
	Calendar: {emoji: "📅", nerd: "", plain: "@", kaomoji: "(•̀ᴗ•́)", squares: "▦"},
	Link:     {emoji: "🔗", nerd: "", plain: "↗", kaomoji: "(っ˘ڡ˘ς)", squares: "◳"},
}

// Get returns the rendered symbol for i, or "" for unknown icons or variants.
func Get(i Icon) string {
	return icons[i].get()
}
