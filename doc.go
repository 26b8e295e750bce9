/*
Package wv is a safe Go binding for the webview library, which embeds the
platform browser engine (WebView2 on Windows, WebKit on macOS, WebKitGTK on
Linux) in a native window.

The browser engine, the window and the event loop all live in the webview
shared library. This package loads it at runtime, owns the native handle,
translates the integer statuses of the C API into errors and carries Go
callbacks across the boundary.

# Basic Usage

	w, err := wv.New(
		wv.WithTitle("Webview Window"),
		wv.WithSize(800, 600, wv.HintMin),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Release()

	w.Navigate("https://www.wikipedia.org")
	w.Run()

Run blocks the calling thread until the window is closed or Terminate is
called. The package locks the main goroutine to the main thread at init, so
New and Run should be called from main.

# References

A *Webview is one reference to an engine. Clone returns another reference to
the same engine and Release drops one; the engine is terminated and destroyed
when the last reference is released. Functions passed to Dispatch receive
their own reference, released when they return.

# Dispatch

Dispatch queues a function to run once on the engine thread. Use it to touch
the page from other goroutines:

	go func() {
		w.Dispatch(func(w *wv.Webview) {
			w.SetTitle("Loaded")
		})
	}()

Functions that are still queued when the engine is destroyed never run.

# Bindings

Bind exposes a Go function to script code under a global name. Each call
returns a promise on the script side; the Go function receives a sequence
token and the JSON encoded arguments and settles the promise later with
Return:

	w.Bind("greet", func(seq, req string) {
		w.Return(seq, 0, `"hello"`)
	})

BindFunc does the JSON work for ordinary Go functions:

	w.BindFunc("add", func(a, b int) int { return a + b })

Unbind removes a name; its function is released and never called again.

# Errors

Every operation returns an *Error. Its Kind is one of the statuses defined by
the C API (KindNotFound, KindDuplicate, ...), KindUnknownStatus when the
library returns anything else, or KindNulByte when a string argument contains
a NUL byte, in which case the native call is never made. Compare with
errors.Is against the Err* sentinels.

# Loading the library

The shared library (webview.dll, libwebview.dylib or libwebview.so) is looked
up in the directory named by WEBVIEW_PATH, next to the executable, and in
../Frameworks inside a macOS bundle, before falling back to the system loader.
Use WithLibraryPath to load a specific file.
*/
package wv
