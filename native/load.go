package native

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// EnvLibraryPath names the environment variable searched first for the
// webview shared library.
const EnvLibraryPath = "WEBVIEW_PATH"

// ErrLoad is returned when the webview shared library or one of its symbols
// cannot be loaded.
var ErrLoad = errors.New("native: cannot load webview library")

var (
	defaultOnce sync.Once
	defaultLib  *Dynamic
	defaultErr  error
)

// Default loads the library found by LibraryPath. The library is opened once
// per process; later calls return the same result.
func Default() (*Dynamic, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Open(LibraryPath())
	})
	return defaultLib, defaultErr
}

// LibraryPath returns the first existing candidate for the webview shared
// library. The candidates are, in order: the directory named by WEBVIEW_PATH,
// the directory of the running executable, and platform specific locations
// relative to it (../Frameworks inside a macOS bundle). When nothing exists the
// bare file name is returned so the system loader applies its own search.
func LibraryPath() string {
	name := libraryName()
	for _, dir := range searchDirs() {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return name
}

func searchDirs() []string {
	dirs := []string{os.Getenv(EnvLibraryPath)}
	exe, err := os.Executable()
	if err != nil {
		return dirs
	}
	dir := filepath.Dir(exe)
	dirs = append(dirs, dir)
	return append(dirs, platformDirs(dir)...)
}
