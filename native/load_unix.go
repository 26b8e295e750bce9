//go:build darwin || freebsd || linux

package native

import (
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libwebview.dylib"
	}
	return "libwebview.so"
}

func platformDirs(exeDir string) []string {
	if runtime.GOOS == "darwin" {
		return []string{filepath.Join(exeDir, "..", "Frameworks")}
	}
	return nil
}

func loadLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}

// checkRuntime is a no-op: GTK and Cocoa backends are linked by the library
// itself and fail at dlopen when missing.
func checkRuntime() error { return nil }

func enterApartment() error { return nil }

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}
