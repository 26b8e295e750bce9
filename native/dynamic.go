//go:build darwin || freebsd || linux || windows

package native

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/puzpuzpuz/xsync/v4"
)

// Dynamic is a Library backed by a webview shared library loaded at runtime.
type Dynamic struct {
	path      string
	createErr atomic.Pointer[error]

	create    func(debug int32, window unsafe.Pointer) uintptr
	destroy   func(w uintptr) int32
	run       func(w uintptr) int32
	terminate func(w uintptr) int32
	getWindow func(w uintptr) unsafe.Pointer
	setTitle  func(w uintptr, title string) int32
	setSize   func(w uintptr, width, height, hint int32) int32
	navigate  func(w uintptr, url string) int32
	initJS    func(w uintptr, js string) int32
	eval      func(w uintptr, js string) int32
	dispatch  func(w uintptr, fn, arg uintptr) int32
	bind      func(w uintptr, name string, fn, arg uintptr) int32
	unbind    func(w uintptr, name string) int32
	ret       func(w uintptr, seq string, status int32, result string) int32
}

var (
	_ Library       = (*Dynamic)(nil)
	_ CreateErrorer = (*Dynamic)(nil)
)

// Open loads the webview shared library at path and resolves every symbol of
// the C API. The returned error wraps ErrLoad.
func Open(path string) (*Dynamic, error) {
	if err := checkRuntime(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	lib, err := loadLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	d := &Dynamic{path: path}
	for _, sym := range d.symbols() {
		addr, err := loadSymbol(lib, sym.name)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %s: %w", ErrLoad, sym.name, err)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}

	initTrampolines()
	return d, nil
}

type symbol struct {
	name string
	fptr any
}

func (d *Dynamic) symbols() []symbol {
	return []symbol{
		{"webview_create", &d.create},
		{"webview_destroy", &d.destroy},
		{"webview_run", &d.run},
		{"webview_terminate", &d.terminate},
		{"webview_get_window", &d.getWindow},
		{"webview_set_title", &d.setTitle},
		{"webview_set_size", &d.setSize},
		{"webview_navigate", &d.navigate},
		{"webview_init", &d.initJS},
		{"webview_eval", &d.eval},
		{"webview_dispatch", &d.dispatch},
		{"webview_bind", &d.bind},
		{"webview_unbind", &d.unbind},
		{"webview_return", &d.ret},
	}
}

// CreateError returns the reason the last Create returned 0 without reaching
// the library, or nil.
func (d *Dynamic) CreateError() error {
	if err := d.createErr.Load(); err != nil {
		return *err
	}
	return nil
}

// Path returns the file the library was loaded from.
func (d *Dynamic) Path() string { return d.path }

// Create returns 0 when the engine cannot be created. CreateError explains a
// failure that happened before the library was called.
func (d *Dynamic) Create(debug bool, window unsafe.Pointer) Handle {
	if err := enterApartment(); err != nil {
		d.createErr.Store(&err)
		return 0
	}
	d.createErr.Store(nil)
	var dbg int32
	if debug {
		dbg = 1
	}
	return Handle(d.create(dbg, window))
}

// Destroy releases the engine and forgets every callback still registered
// for it.
func (d *Dynamic) Destroy(h Handle) Status {
	rc := Status(d.destroy(uintptr(h)))
	dropThunks(h)
	return rc
}

func (d *Dynamic) Run(h Handle) Status {
	return Status(d.run(uintptr(h)))
}

func (d *Dynamic) Terminate(h Handle) Status {
	return Status(d.terminate(uintptr(h)))
}

func (d *Dynamic) GetWindow(h Handle) unsafe.Pointer {
	return d.getWindow(uintptr(h))
}

func (d *Dynamic) SetTitle(h Handle, title string) Status {
	return Status(d.setTitle(uintptr(h), title))
}

// SetSize returns StatusInvalidArgument without calling the library when width
// or height does not fit the C int.
func (d *Dynamic) SetSize(h Handle, width, height int, hint Hint) Status {
	if !fitsInt32(width) || !fitsInt32(height) {
		return StatusInvalidArgument
	}
	return Status(d.setSize(uintptr(h), int32(width), int32(height), int32(hint)))
}

func fitsInt32(n int) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

func (d *Dynamic) Navigate(h Handle, url string) Status {
	return Status(d.navigate(uintptr(h), url))
}

func (d *Dynamic) Init(h Handle, js string) Status {
	return Status(d.initJS(uintptr(h), js))
}

func (d *Dynamic) Eval(h Handle, js string) Status {
	return Status(d.eval(uintptr(h), js))
}

func (d *Dynamic) Dispatch(h Handle, fn DispatchFunc, arg uintptr) Status {
	token := storeThunk(&thunk{h: h, dispatch: fn, arg: arg})
	rc := Status(d.dispatch(uintptr(h), dispatchTrampoline, token))
	if rc != StatusOK {
		thunks.Delete(token)
	}
	return rc
}

func (d *Dynamic) Bind(h Handle, name string, fn BindFunc, arg uintptr) Status {
	token := storeThunk(&thunk{h: h, name: name, bind: fn, arg: arg})
	rc := Status(d.bind(uintptr(h), name, bindTrampoline, token))
	if rc != StatusOK {
		thunks.Delete(token)
		return rc
	}
	bound.Store(bindKey{h, name}, token)
	return rc
}

func (d *Dynamic) Unbind(h Handle, name string) Status {
	rc := Status(d.unbind(uintptr(h), name))
	if rc == StatusOK {
		if token, ok := bound.LoadAndDelete(bindKey{h, name}); ok {
			thunks.Delete(token)
		}
	}
	return rc
}

func (d *Dynamic) Return(h Handle, seq string, status int, result string) Status {
	return Status(d.ret(uintptr(h), seq, int32(status), result))
}

// The C library takes a plain function pointer plus a void* argument. A
// single trampoline per callback shape is created for the whole process and
// the argument carries a thunk token identifying the Go callback.

type thunk struct {
	h        Handle
	name     string
	dispatch DispatchFunc
	bind     BindFunc
	arg      uintptr
}

type bindKey struct {
	h    Handle
	name string
}

var (
	thunks    = xsync.NewMap[uintptr, *thunk]()
	bound     = xsync.NewMap[bindKey, uintptr]()
	lastThunk atomic.Uintptr

	trampolineOnce     sync.Once
	dispatchTrampoline uintptr
	bindTrampoline     uintptr
)

func initTrampolines() {
	trampolineOnce.Do(func() {
		dispatchTrampoline = purego.NewCallback(onDispatch)
		bindTrampoline = purego.NewCallback(onBind)
	})
}

func storeThunk(t *thunk) uintptr {
	token := lastThunk.Add(1)
	thunks.Store(token, t)
	return token
}

func dropThunks(h Handle) {
	thunks.Range(func(token uintptr, t *thunk) bool {
		if t.h == h {
			thunks.Delete(token)
		}
		return true
	})
	bound.Range(func(k bindKey, _ uintptr) bool {
		if k.h == h {
			bound.Delete(k)
		}
		return true
	})
}

func onDispatch(w, token uintptr) uintptr {
	t, ok := thunks.LoadAndDelete(token)
	if !ok {
		return 0
	}
	t.dispatch(Handle(w), t.arg)
	return 0
}

func onBind(seq, req *byte, token uintptr) uintptr {
	t, ok := thunks.Load(token)
	if !ok {
		return 0
	}
	t.bind(goString(seq), goString(req), t.arg)
	return 0
}
