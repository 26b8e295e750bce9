package wv

import (
	"unsafe"

	"github.com/crafted-tech/wv/native"
	"go.uber.org/zap"
)

// Config holds the configuration for creating a new Webview.
type Config struct {
	Debug       bool           // Enable the engine's developer tools
	Window      unsafe.Pointer // Existing native window to embed into (nil = engine creates one)
	Title       string         // Initial window title ("" = leave unset)
	Width       int            // Initial width (0 = leave unset)
	Height      int            // Initial height (0 = leave unset)
	Hint        SizeHint       // How Width and Height are interpreted
	Library     native.Library // Engine implementation (nil = load the shared library)
	LibraryPath string         // Shared library to load when Library is nil ("" = search)
	Logger      *zap.Logger    // nil = package logger
}

// Option is a function that configures a Webview.
type Option func(*Config)

// WithDebug enables or disables the engine's developer tools.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithWindow embeds the engine into an existing native window: a GtkWindow
// on Linux, an NSWindow on macOS, an HWND on Windows. By default the engine
// creates and owns its window.
func WithWindow(window unsafe.Pointer) Option {
	return func(c *Config) {
		c.Window = window
	}
}

// WithTitle sets the window title after creation.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithSize sets the window size after creation.
func WithSize(width, height int, hint SizeHint) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
		c.Hint = hint
	}
}

// WithLibrary uses lib instead of the webview shared library. Tests pass the
// in-memory engine from native/nativetest.
func WithLibrary(lib native.Library) Option {
	return func(c *Config) {
		c.Library = lib
	}
}

// WithLibraryPath loads the webview shared library from path instead of
// searching for it. Ignored when WithLibrary is also given.
func WithLibraryPath(path string) Option {
	return func(c *Config) {
		c.LibraryPath = path
	}
}

// WithLogger sets the logger used by this Webview and its clones.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Hint: HintNone,
	}
}
