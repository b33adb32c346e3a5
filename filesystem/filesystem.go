// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Every file the application touches goes through API(), so tests can swap
// the operating system backend for an in-memory one.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// Create truncates or creates the file at path along with its parent directories.
func Create(path string) (afero.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := backend.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return backend.Create(path)
}
