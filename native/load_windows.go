//go:build windows

package native

import (
	"errors"
	"fmt"

	"github.com/crafted-tech/webframe"
	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

// ErrWebView2Missing is returned by Open when the Edge WebView2 runtime is not
// installed or is older than webframe.MinimumWebView2Version.
var ErrWebView2Missing = errors.New("WebView2 runtime not installed")

func libraryName() string {
	return "webview.dll"
}

func platformDirs(string) []string {
	return nil
}

func loadLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, err
	}
	return uintptr(dll.Handle), nil
}

func loadSymbol(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}

func checkRuntime() error {
	status := webframe.CheckWebView2Runtime("")
	if !status.Installed {
		return ErrWebView2Missing
	}
	if !status.MeetsMinimum {
		return fmt.Errorf("%w: version %s is older than %s",
			ErrWebView2Missing, status.Version, webframe.MinimumWebView2Version)
	}
	return nil
}

// enterApartment joins the calling thread to a single-threaded COM apartment,
// which WebView2 requires on the thread that creates and runs the engine.
func enterApartment() error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		// S_FALSE: already initialized on this thread
		if oleErr, ok := err.(*ole.OleError); ok && oleErr.Code() == 1 {
			return nil
		}
		return err
	}
	return nil
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	return windows.BytePtrToString(p)
}
