package wv

import (
	"net/url"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/crafted-tech/wv/native"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
)

func init() {
	// The engine must be created and run on the thread that started the
	// process, which main keeps by being locked to it from here on.
	runtime.LockOSThread()
}

// Webview is one reference to a native engine instance.
//
// References are shared: Clone returns a new reference to the same engine and
// Release drops one. When the last reference is released the engine is told
// to terminate its loop and is then destroyed, exactly once. Each reference
// must be released by its owner; releasing the same reference twice is a
// no-op.
//
// All methods are safe for concurrent use, but only one Run may be active at
// a time and the engine is not thread safe beyond what the native library
// guarantees: calls that change the page should happen on the engine thread,
// from a function passed to Dispatch or from a binding.
type Webview struct {
	inst     *instance
	released atomic.Bool
}

// instance owns the native handle and everything registered with it.
type instance struct {
	lib native.Library
	h   native.Handle
	log *zap.Logger

	refs     atomic.Int32
	teardown sync.Once
	running  atomic.Bool

	lastToken atomic.Uintptr
	pending   *xsync.Map[uintptr, DispatchFunc]

	bindMu sync.Mutex
	names  *xsync.Map[string, *binding]
	tokens *xsync.Map[uintptr, *binding]
}

// New creates a native engine instance and returns the first reference to it.
// The shared library is loaded on first use unless WithLibrary is given.
// Failing to load it returns an error of KindMissingDependency.
func New(opts ...Option) (*Webview, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lib := cfg.Library
	if lib == nil {
		var err error
		lib, err = openLibrary(cfg.LibraryPath)
		if err != nil {
			return nil, &Error{Op: "create", Kind: KindMissingDependency, Cause: err}
		}
	}

	log := cfg.Logger
	if log == nil {
		log = Logger()
	}

	h := lib.Create(cfg.Debug, cfg.Window)
	if h == 0 {
		err := &Error{Op: "create", Kind: KindUnspecified, Detail: "engine returned a null handle"}
		if ce, ok := lib.(native.CreateErrorer); ok {
			err.Cause = ce.CreateError()
		}
		log.Warn("create failed", zap.Error(err))
		return nil, err
	}

	inst := &instance{
		lib:     lib,
		h:       h,
		log:     log.With(zap.Uintptr("handle", uintptr(h))),
		pending: xsync.NewMap[uintptr, DispatchFunc](),
		names:   xsync.NewMap[string, *binding](),
		tokens:  xsync.NewMap[uintptr, *binding](),
	}
	inst.refs.Store(1)
	inst.log.Debug("webview created", zap.Bool("debug", cfg.Debug))

	w := &Webview{inst: inst}
	if cfg.Title != "" {
		if err := w.SetTitle(cfg.Title); err != nil {
			w.Release()
			return nil, err
		}
	}
	if cfg.Width > 0 || cfg.Height > 0 {
		if err := w.SetSize(cfg.Width, cfg.Height, cfg.Hint); err != nil {
			w.Release()
			return nil, err
		}
	}
	return w, nil
}

func openLibrary(path string) (native.Library, error) {
	var (
		d   *native.Dynamic
		err error
	)
	if path == "" {
		d, err = native.Default()
	} else {
		d, err = native.Open(path)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Clone returns a new reference to the same engine. It returns nil when w has
// been released.
func (w *Webview) Clone() *Webview {
	if w == nil || w.inst == nil || w.released.Load() {
		return nil
	}
	if !w.inst.acquire() {
		return nil
	}
	return &Webview{inst: w.inst}
}

// Release drops this reference. Releasing the last reference terminates the
// engine loop and destroys the engine; functions still waiting in the
// dispatch queue are discarded without running and every binding is
// released.
func (w *Webview) Release() {
	if w == nil || w.inst == nil || !w.released.CompareAndSwap(false, true) {
		return
	}
	w.inst.release()
}

// Refs returns the number of live references to the engine.
func (w *Webview) Refs() int {
	if w == nil || w.inst == nil {
		return 0
	}
	return int(w.inst.refs.Load())
}

// acquire adds a reference unless the count already reached zero.
func (i *instance) acquire() bool {
	for {
		n := i.refs.Load()
		if n <= 0 {
			return false
		}
		if i.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (i *instance) release() {
	if i.refs.Add(-1) == 0 {
		i.destroy()
	}
}

func (i *instance) destroy() {
	i.teardown.Do(func() {
		if err := Translate("terminate", i.lib.Terminate(i.h)); err != nil {
			i.log.Warn("terminate failed", zap.Error(err))
		}
		if err := Translate("destroy", i.lib.Destroy(i.h)); err != nil {
			i.log.Warn("destroy failed", zap.Error(err))
		}

		dropped := i.reclaimPending()
		unbound := i.clearBindings()
		if dropped > 0 {
			i.log.Warn("discarded dispatched functions that never ran", zap.Int("count", dropped))
		}
		i.log.Debug("webview destroyed", zap.Int("bindings", unbound))
	})
}

// live returns the instance behind w, or an error when w cannot be used.
func (w *Webview) live(op string) (*instance, error) {
	if w == nil || w.inst == nil {
		return nil, invalidState(op, "nil webview")
	}
	if w.released.Load() {
		return nil, invalidState(op, "webview released")
	}
	return w.inst, nil
}

// Navigate loads url in the engine.
func (w *Webview) Navigate(url string) error {
	const op = "navigate"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "url", url); err != nil {
		return err
	}
	return Translate(op, i.lib.Navigate(i.h, url))
}

// SetHTML replaces the page with html by navigating to a data URL.
func (w *Webview) SetHTML(html string) error {
	const op = "set_html"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "html", html); err != nil {
		return err
	}
	return Translate(op, i.lib.Navigate(i.h, dataURL(html)))
}

// dataURL encodes html as a UTF-8 data URL. WebView2 rejects data URLs
// without an explicit charset.
func dataURL(html string) string {
	return "data:text/html;charset=utf-8," + url.PathEscape(html)
}

// Init injects js to run on every page load, before window.onload.
func (w *Webview) Init(js string) error {
	const op = "init"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "js", js); err != nil {
		return err
	}
	return Translate(op, i.lib.Init(i.h, js))
}

// Eval evaluates js in the current page. Evaluation is asynchronous and the
// result is discarded; use a binding to send values back.
func (w *Webview) Eval(js string) error {
	const op = "eval"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "js", js); err != nil {
		return err
	}
	return Translate(op, i.lib.Eval(i.h, js))
}

// SetSize sets the window size, interpreted according to hint.
func (w *Webview) SetSize(width, height int, hint SizeHint) error {
	const op = "set_size"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	return Translate(op, i.lib.SetSize(i.h, width, height, hint.native()))
}

// SetTitle sets the window title.
func (w *Webview) SetTitle(title string) error {
	const op = "set_title"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "title", title); err != nil {
		return err
	}
	return Translate(op, i.lib.SetTitle(i.h, title))
}

// Run runs the engine loop on the calling thread until Terminate is called or
// the window is closed. Only one Run may be active per engine.
//
// The loop holds its own reference, so releasing every other reference while
// it runs does not stop it; the engine is destroyed after Run returns.
func (w *Webview) Run() error {
	const op = "run"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if !i.acquire() {
		return invalidState(op, "webview released")
	}
	defer i.release()
	if !i.running.CompareAndSwap(false, true) {
		return invalidState(op, "loop already running")
	}
	defer i.running.Store(false)

	i.log.Debug("loop started")
	err = Translate(op, i.lib.Run(i.h))
	i.log.Debug("loop stopped", zap.Error(err))
	return err
}

// Terminate stops the engine loop, making Run return. It is safe to call from
// any thread; Release calls it for the last reference.
func (w *Webview) Terminate() error {
	const op = "terminate"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	return Translate(op, i.lib.Terminate(i.h))
}

// Window returns the native window handle: a GtkWindow pointer on Linux, an
// NSWindow pointer on macOS and an HWND on Windows. It returns nil for a
// released reference.
func (w *Webview) Window() unsafe.Pointer {
	i, err := w.live("get_window")
	if err != nil {
		return nil
	}
	return i.lib.GetWindow(i.h)
}

// recover is deferred around user callbacks; a panic must not unwind into the
// native loop.
func (i *instance) recover(callback string) {
	if r := recover(); r != nil {
		i.log.Error("panic in callback",
			zap.String("callback", callback),
			zap.Any("panic", r))
	}
}
