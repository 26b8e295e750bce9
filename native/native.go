//go:generate mockgen -source=native.go -destination=mock/library.go -package=mock

// Package native describes the C ABI of the webview shared library and loads it
// at runtime.
//
// The Library interface mirrors the C functions one to one. Every call takes
// the opaque engine handle and, except for Create and GetWindow, returns the
// integer status reported by the engine. Higher level packages translate those
// statuses into errors; this package never interprets them.
//
// Use Default to obtain the process-wide dynamic library, or Open to load a
// specific file. Tests substitute the in-memory engine from nativetest.
package native

import "unsafe"

// Handle is the opaque pointer returned by webview_create.
type Handle uintptr

// Status is the webview_error_t returned by every engine call.
type Status int32

// Status values defined by the webview C library.
const (
	StatusMissingDependency Status = -5
	StatusCanceled          Status = -4
	StatusInvalidState      Status = -3
	StatusInvalidArgument   Status = -2
	StatusUnspecified       Status = -1
	StatusOK                Status = 0
	StatusDuplicate         Status = 1
	StatusNotFound          Status = 2
)

// Hint is the webview_hint_t passed to webview_set_size.
type Hint int32

const (
	HintNone  Hint = 0
	HintMin   Hint = 1
	HintMax   Hint = 2
	HintFixed Hint = 3
)

// DispatchFunc is invoked once on the engine thread for every successful
// Dispatch call, with the engine handle and the arg given to Dispatch.
type DispatchFunc func(h Handle, arg uintptr)

// BindFunc is invoked on the engine thread every time script code calls a
// bound name. seq identifies the call for Return; req is the JSON encoded
// argument array.
type BindFunc func(seq, req string, arg uintptr)

// Library is the webview C API.
type Library interface {
	Create(debug bool, window unsafe.Pointer) Handle
	Destroy(h Handle) Status
	Run(h Handle) Status
	Terminate(h Handle) Status
	GetWindow(h Handle) unsafe.Pointer
	SetTitle(h Handle, title string) Status
	SetSize(h Handle, width, height int, hint Hint) Status
	Navigate(h Handle, url string) Status
	Init(h Handle, js string) Status
	Eval(h Handle, js string) Status
	Dispatch(h Handle, fn DispatchFunc, arg uintptr) Status
	Bind(h Handle, name string, fn BindFunc, arg uintptr) Status
	Unbind(h Handle, name string) Status
	Return(h Handle, seq string, status int, result string) Status
}

// CreateErrorer is implemented by libraries that can explain why Create
// returned a zero handle.
type CreateErrorer interface {
	CreateError() error
}
