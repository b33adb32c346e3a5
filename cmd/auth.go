package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/clipseek/clipseek/auth"
	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/style"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authStatusCmd, authDeleteCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the provider access token",
	Long: fmt.Sprintf(`Manage the access token sent with every page request.

The token is kept in the system keyring. %s takes precedence when set.`, auth.EnvToken),
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an access token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: "Access token:",
		}, &token, survey.WithValidator(survey.Required)))

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the access token comes from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if token, ok := os.LookupEnv(auth.EnvToken); ok && token != "" {
			fmt.Printf("%s token set through %s\n", icon.Get(icon.Success), style.Fg(color.Purple)(auth.EnvToken))
			return
		}

		_, err := auth.GetToken()
		switch {
		case err == nil:
			fmt.Printf("%s token stored in the keyring\n", icon.Get(icon.Success))
		case errors.Is(err, keyring.ErrNotFound):
			fmt.Printf("%s no token, searches are sent anonymously\n", icon.Get(icon.Fail))
		default:
			handleErr(err)
		}
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "logout"},
	Short:   "Remove the stored access token",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteToken()
		if errors.Is(err, keyring.ErrNotFound) {
			err = nil
		}
		handleErr(err)

		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
