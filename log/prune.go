package log

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/where"
	"github.com/spf13/afero"
)

// Retention is how long daily log files are kept.
const Retention = 14 * 24 * time.Hour

// Prune removes log files last written before now minus Retention and
// reports how many were removed.
func Prune(now time.Time) int {
	var removed int

	api := filesystem.API()
	_ = afero.Walk(api, where.Logs(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".log") {
			return nil
		}

		if now.Sub(info.ModTime()) > Retention && api.Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}

// logFile names today's log file.
func logFile(now time.Time) string {
	return filepath.Join(where.Logs(), now.Format("2006-01-02")+".log")
}
