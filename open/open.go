// Package open hands a video link to the platform's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/clipseek/clipseek/constant"
)

// Start launches the default handler for link without waiting for it.
func Start(link string) error {
	name, args, ok := launcher(runtime.GOOS, link)
	if !ok {
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}

	return exec.Command(name, args...).Start()
}

func launcher(goos, link string) (name string, args []string, ok bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return rundll, []string{"url.dll,FileProtocolHandler", link}, true
	case constant.Darwin:
		return "open", []string{link}, true
	case constant.Linux:
		return "xdg-open", []string{link}, true
	case constant.Android:
		return "termux-open-url", []string{link}, true
	default:
		return "", nil, false
	}
}
