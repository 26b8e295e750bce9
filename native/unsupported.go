//go:build !windows && !linux && !darwin && !freebsd

package native

// The native package loads the webview library on Windows, Linux, FreeBSD and
// macOS only. If you see this compilation error, you are building for a
// platform the webview library has no backend for.

const platformUnsupported = "native package requires Windows, Linux, FreeBSD or macOS - see native/unsupported.go"

// This line intentionally causes a compile error on unsupported platforms.
var _ int = platformUnsupported
