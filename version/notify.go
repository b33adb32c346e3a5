package version

import (
	"fmt"
	"io"

	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/icon"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/log"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/util"
	"github.com/spf13/viper"
)

// Notify prints a banner to out when a newer release exists.
// Lookup failures are logged and otherwise ignored.
func Notify(out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()

	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if !Newer(latest, constant.Version) {
		return
	}

	fmt.Fprintf(out, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
