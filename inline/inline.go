// Package inline writes search results to a stream, for terminals and pipes alike.
package inline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

const fallbackWidth = 80

// Run writes options.Videos in the requested format.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	switch options.Format {
	case JSON:
		return writeJSON(options.Out, options)
	case Links:
		return writeLinks(options.Out, options.Videos)
	default:
		return writeText(options.Out, options)
	}
}

func writeLinks(out io.Writer, videos []search.VideoRecord) error {
	for _, v := range videos {
		if _, err := fmt.Fprintln(out, v.URL()); err != nil {
			return err
		}
	}

	return nil
}

func width(options *Options) int {
	if options.Width > 0 {
		return options.Width
	}

	if w := viper.GetInt(key.CliWrapWidth); w > 0 {
		return w
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		return w
	}

	return fallbackWidth
}

func writeText(out io.Writer, options *Options) error {
	if len(options.Videos) == 0 {
		_, err := fmt.Fprintf(out, "%s No videos found for %s\n", icon.Get(icon.Fail), style.Bold(options.Query.Text))
		return err
	}

	w := width(options)
	var b strings.Builder

	header := fmt.Sprintf("%s %s for %s", icon.Get(icon.Search), util.Quantify(len(options.Videos), "video", "videos"), style.Bold(options.Query.Text))
	if options.Order != "" {
		header += style.Faint(" (by " + options.Order + ")")
	}
	b.WriteString(header + "\n\n")

	for i, v := range options.Videos {
		b.WriteString(entry(i+1, v, w))
		b.WriteString("\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func entry(n int, v search.VideoRecord, w int) string {
	title := v.Title
	if strings.TrimSpace(title) == "" {
		title = "untitled"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", style.Fg(color.Accent)(fmt.Sprintf("%3d.", n)), style.Bold(wordwrap.String(title, util.Max(w-5, 20))))

	stats := []string{
		style.Fg(color.Views)(icon.Get(icon.View) + " " + util.Compact(v.ViewCount)),
		style.Fg(color.Likes)(icon.Get(icon.Like) + " " + util.Compact(v.LikeCount)),
		icon.Get(icon.Clock) + " " + util.Clock(v.Duration),
	}
	if !v.PublishedAt.IsZero() {
		stats = append(stats, icon.Get(icon.Calendar)+" "+v.PublishedAt.Format("2006-01-02"))
	}

	b.WriteString(indent.String(strings.Join(stats, "  "), 5) + "\n")
	b.WriteString(indent.String(style.Faint(icon.Get(icon.Link)+" "+v.URL()), 5) + "\n")

	return b.String()
}
