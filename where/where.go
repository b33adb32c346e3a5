// Package where resolves the filesystem locations clipseek reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "CLIPSEEK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring CLIPSEEK_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Clipseek))
}

// Cache resolves the cache directory, falling back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Clipseek))
}

// Logs resolves the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries resolves the remembered search queries file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// VersionCheck resolves the cached latest release lookup.
func VersionCheck() string {
	return filepath.Join(Cache(), "version.json")
}

// ConfigFile resolves the toml configuration file inside Config().
func ConfigFile() string {
	return filepath.Join(Config(), constant.Clipseek+".toml")
}
