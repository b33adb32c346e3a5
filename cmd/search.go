package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/clipseek/clipseek/auth"
	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/config"
	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/inline"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/log"
	"github.com/clipseek/clipseek/network"
	"github.com/clipseek/clipseek/query"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/tui"
	"github.com/clipseek/clipseek/util"
	"github.com/invopop/jsonschema"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const dateLayout = "2006-01-02"

func init() {
	rootCmd.AddCommand(searchCmd)
	addSearchFlags(searchCmd)
	searchCmd.SetOut(os.Stdout)
}

// addSearchFlags defines the search flags on c and binds the defaultable ones to viper.
func addSearchFlags(c *cobra.Command) {
	f := c.Flags()

	f.IntP("page-size", "n", 0, "Videos requested per page")
	lo.Must0(viper.BindPFlag(key.SearchPageSize, f.Lookup("page-size")))

	f.IntP("max-pages", "p", 0, "Upper bound on the pages requested")
	lo.Must0(viper.BindPFlag(key.SearchMaxPages, f.Lookup("max-pages")))

	f.StringP("sort", "s", "", "Provider side order: popularity or recency")
	lo.Must0(viper.BindPFlag(key.SearchSort, f.Lookup("sort")))
	lo.Must0(c.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(search.Popularity), string(search.Recency)}, cobra.ShellCompDirectiveNoFileComp
	}))

	f.StringP("order", "o", "", "Re-sort the collected videos by "+strings.Join(search.SortKeys(), ", "))
	lo.Must0(viper.BindPFlag(key.SearchOrder, f.Lookup("order")))
	lo.Must0(c.RegisterFlagCompletionFunc("order", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return search.SortKeys(), cobra.ShellCompDirectiveNoFileComp
	}))

	f.String("date-from", "", "Only videos published on or after this day (YYYY-MM-DD)")
	f.String("date-to", "", "Only videos published on or before this day (YYYY-MM-DD)")
	f.Int("min-likes", 0, "Only videos with at least this many likes")
	f.Int("min-views", 0, "Only videos with at least this many views")
	f.Int("min-duration", 0, "Shortest length in seconds, requires --max-duration")
	f.Int("max-duration", 0, "Longest length in seconds, requires --min-duration")
	c.MarkFlagsRequiredTogether("min-duration", "max-duration")

	f.StringP("format", "f", string(inline.Text), "Output format: text, json or links")
	lo.Must0(c.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(inline.Formats(), func(f inline.Format, _ int) string { return string(f) }), cobra.ShellCompDirectiveNoFileComp
	}))
	f.BoolP("json", "j", false, "Shorthand for --format json")
	f.StringP("output", "O", "", "Write the result to this file instead of stdout")
	f.BoolP("tui", "t", false, "Browse the result interactively")

	c.MarkFlagsMutuallyExclusive("json", "format")
	c.MarkFlagsMutuallyExclusive("tui", "json")
	c.MarkFlagsMutuallyExclusive("tui", "output")
}

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search short videos",
	Args:  cobra.ArbitraryArgs,
	Long: `Search short videos and print the merged, de-duplicated result.

Pages are requested one after another until a page comes back short or
--max-pages is reached. Duplicates across pages are dropped, keeping the
first occurrence. --order re-sorts the final list locally.

Only one of --date-from, --date-to or the duration range reaches the
provider. When several are given the duration range wins, then --date-to.`,
	Example: constant.Clipseek + ` search "street food" -n 20 -p 5 --order likes
` + constant.Clipseek + ` search cats --min-duration 10 --max-duration 30 --json`,
	ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			text = askText()
		}

		q, err := buildQuery(cmd, text)
		handleErr(err)

		order, err := resolveOrder(viper.GetString(key.SearchOrder))
		handleErr(err)

		client := newClient()

		if lo.Must(cmd.Flags().GetBool("tui")) {
			handleErr(tui.Run(&tui.Options{Searcher: client, Query: q, Order: order}))
			remember(q.Text)
			return
		}

		format := inline.JSON
		if !lo.Must(cmd.Flags().GetBool("json")) {
			format, err = inline.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
			handleErr(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Progress), style.Fg(color.Purple)(q.Text)))
		started := time.Now()
		videos, err := client.Search(ctx, q)
		erase()
		handleErr(err)

		log.With(log.Fields{
			"query":   q.Text,
			"videos":  len(videos),
			"elapsed": time.Since(started).String(),
		}).Info("search finished")

		if order != "" {
			videos = search.SortBy(videos, order)
		}

		out, closeOut := outputWriter(lo.Must(cmd.Flags().GetString("output")))
		defer closeOut()

		handleErr(inline.Run(&inline.Options{
			Out:    out,
			Format: format,
			Query:  q,
			Order:  order,
			Videos: videos,
		}))

		remember(q.Text)
	},
}

// buildQuery assembles a query from the command flags and config defaults.
func buildQuery(cmd *cobra.Command, text string) (search.Query, error) {
	flags := cmd.Flags()

	sort, err := search.ParseSortPreference(viper.GetString(key.SearchSort))
	if err != nil {
		return search.Query{}, err
	}

	q := search.Query{
		Text:     strings.TrimSpace(text),
		PageSize: viper.GetInt(key.SearchPageSize),
		MaxPages: viper.GetInt(key.SearchMaxPages),
		Sort:     sort,
	}

	date := func(name string) (mo.Option[time.Time], error) {
		if !flags.Changed(name) {
			return mo.None[time.Time](), nil
		}

		t, err := time.Parse(dateLayout, lo.Must(flags.GetString(name)))
		if err != nil {
			return mo.None[time.Time](), &search.InvalidQueryError{Reason: fmt.Sprintf("--%s expects YYYY-MM-DD", name)}
		}
		return mo.Some(t), nil
	}

	count := func(name string) mo.Option[int] {
		if !flags.Changed(name) {
			return mo.None[int]()
		}
		return mo.Some(lo.Must(flags.GetInt(name)))
	}

	if q.Filters.DateFrom, err = date("date-from"); err != nil {
		return search.Query{}, err
	}
	if q.Filters.DateTo, err = date("date-to"); err != nil {
		return search.Query{}, err
	}

	q.Filters.MinLikes = count("min-likes")
	q.Filters.MinViews = count("min-views")
	q.Filters.MinDuration = count("min-duration")
	q.Filters.MaxDuration = count("max-duration")

	return q, q.Validate()
}

// resolveOrder accepts an empty order or a known sort key, suggesting the
// closest key otherwise.
func resolveOrder(order string) (string, error) {
	order = strings.ToLower(strings.TrimSpace(order))
	if order == "" || search.IsSortKey(order) {
		return order, nil
	}

	closest := lo.MinBy(search.SortKeys(), func(a, b string) bool {
		return levenshtein.Distance(order, a) < levenshtein.Distance(order, b)
	})

	return "", fmt.Errorf("unknown order %s, did you mean %s?", style.Fg(color.Red)(order), style.Fg(color.Yellow)(closest))
}

func newClient() *search.Client {
	token, err := auth.Token()
	if err != nil {
		log.Warnf("keyring unavailable, searching without a token: %v", err)
	}

	return search.NewClient(config.SearchSettings(), network.Dialer(network.Options{
		Timeout:     config.NetworkTimeout(),
		Token:       token,
		Fingerprint: viper.GetBool(key.NetworkFingerprint),
	}))
}

func askText() string {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		handleErr(&search.InvalidQueryError{Reason: "empty search text"})
	}

	var text string
	handleErr(survey.AskOne(&survey.Input{
		Message: "Search",
		Suggest: query.SuggestMany,
	}, &text, survey.WithValidator(survey.Required)))

	return text
}

func outputWriter(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}

	file, err := filesystem.Create(path)
	handleErr(err)

	return file, func() { util.Ignore(file.Close) }
}

func remember(text string) {
	if err := query.Remember(text, 1); err != nil {
		log.Warnf("remember query: %v", err)
	}
}

func init() {
	searchCmd.AddCommand(searchSchemaCmd)
}

var searchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch name := t.Name(); name {
			case "Output", "Video":
				return constant.Clipseek + "." + name
			default:
				return name
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
