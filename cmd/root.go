// Package cmd implements the clipseek command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/log"
	"github.com/clipseek/clipseek/search"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.OutOrStdout())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Clipseek,
	Short: "Search short videos from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Search short videos from the terminal"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		searchCmd.Run(searchCmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), describe(err))
		os.Exit(1)
	}
}

// describe adds a hint to errors the user can act on.
func describe(err error) string {
	msg := strings.Trim(err.Error(), " \n")

	var providerErr *search.ProviderError
	switch {
	case errors.As(err, &providerErr) && providerErr.Code == 5:
		return msg + "\n" + style.Faint("hint: run `"+constant.Clipseek+" auth set` to store a valid access token")
	case errors.Is(err, search.ErrInvalidQuery):
		return msg + "\n" + style.Faint("hint: see `"+constant.Clipseek+" search --help`")
	default:
		return msg
	}
}
