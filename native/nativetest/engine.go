// Package nativetest provides an in-memory native.Library for tests.
//
// Engine records every call, keeps per-handle state (title, size, url,
// scripts, bindings) and simulates the engine loop: Dispatch only queues work,
// which runs when the test calls Step or Drain, or while Run is blocked.
// Script calls to bound names are simulated with Call.
package nativetest

import (
	"sync"
	"unsafe"

	"github.com/crafted-tech/wv/native"
)

// Call records one Library method invocation.
type Call struct {
	Method string
	Handle native.Handle
	Args   []any
}

// Return records one webview_return call.
type Return struct {
	Seq    string
	Status int
	Result string
}

// Size is the last size forwarded to SetSize.
type Size struct {
	Width  int
	Height int
	Hint   native.Hint
}

type task struct {
	fn  native.DispatchFunc
	arg uintptr
}

type binding struct {
	fn  native.BindFunc
	arg uintptr
}

type view struct {
	debug      bool
	window     unsafe.Pointer
	title      string
	size       Size
	url        string
	scripts    []string
	evals      []string
	bindings   map[string]binding
	queue      []task
	returns    []Return
	terminated bool
	destroyed  bool
	wake       chan struct{}
}

// Engine is a fake webview library. The zero value is not usable; call New.
type Engine struct {
	mu     sync.Mutex
	next   native.Handle
	views  map[native.Handle]*view
	calls  []Call
	faults map[string]native.Status
}

var _ native.Library = (*Engine)(nil)

// New returns an empty Engine.
func New() *Engine {
	return &Engine{
		next:   0x1000,
		views:  make(map[native.Handle]*view),
		faults: make(map[string]native.Status),
	}
}

// Fail makes the next call to method return status instead of running. For
// Create any non-OK status yields a zero handle.
func (e *Engine) Fail(method string, status native.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.faults[method] = status
}

// record appends the call and reports an injected fault, if any. e.mu must be
// held.
func (e *Engine) record(method string, h native.Handle, args ...any) native.Status {
	e.calls = append(e.calls, Call{Method: method, Handle: h, Args: args})
	if rc, ok := e.faults[method]; ok {
		delete(e.faults, method)
		return rc
	}
	return native.StatusOK
}

// live returns the view for h, or a non-OK status when h is unknown or
// destroyed. e.mu must be held.
func (e *Engine) live(h native.Handle) (*view, native.Status) {
	v, ok := e.views[h]
	if !ok {
		return nil, native.StatusInvalidArgument
	}
	if v.destroyed {
		return nil, native.StatusInvalidState
	}
	return v, native.StatusOK
}

func (e *Engine) Create(debug bool, window unsafe.Pointer) native.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next += 0x10
	h := e.next
	if rc := e.record("Create", h, debug, window); rc != native.StatusOK {
		return 0
	}
	e.views[h] = &view{
		debug:    debug,
		window:   window,
		bindings: make(map[string]binding),
		wake:     make(chan struct{}, 1),
	}
	return h
}

func (e *Engine) Destroy(h native.Handle) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record("Destroy", h); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	v.destroyed = true
	v.queue = nil
	v.bindings = make(map[string]binding)
	return native.StatusOK
}

// Run drains queued work until Terminate is called.
func (e *Engine) Run(h native.Handle) native.Status {
	e.mu.Lock()
	if rc := e.record("Run", h); rc != native.StatusOK {
		e.mu.Unlock()
		return rc
	}
	v, rc := e.live(h)
	e.mu.Unlock()
	if rc != native.StatusOK {
		return rc
	}

	for {
		e.mu.Lock()
		if v.terminated || v.destroyed {
			e.mu.Unlock()
			return native.StatusOK
		}
		if len(v.queue) == 0 {
			e.mu.Unlock()
			<-v.wake
			continue
		}
		t := v.queue[0]
		v.queue = v.queue[1:]
		e.mu.Unlock()

		t.fn(h, t.arg)
	}
}

func (e *Engine) Terminate(h native.Handle) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record("Terminate", h); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	v.terminated = true
	v.signal()
	return native.StatusOK
}

func (e *Engine) GetWindow(h native.Handle) unsafe.Pointer {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.record("GetWindow", h)
	if v, rc := e.live(h); rc == native.StatusOK {
		return v.window
	}
	return nil
}

func (e *Engine) SetTitle(h native.Handle, title string) native.Status {
	return e.update("SetTitle", h, func(v *view) { v.title = title }, title)
}

func (e *Engine) SetSize(h native.Handle, width, height int, hint native.Hint) native.Status {
	return e.update("SetSize", h, func(v *view) {
		v.size = Size{Width: width, Height: height, Hint: hint}
	}, width, height, hint)
}

func (e *Engine) Navigate(h native.Handle, url string) native.Status {
	return e.update("Navigate", h, func(v *view) { v.url = url }, url)
}

func (e *Engine) Init(h native.Handle, js string) native.Status {
	return e.update("Init", h, func(v *view) { v.scripts = append(v.scripts, js) }, js)
}

func (e *Engine) Eval(h native.Handle, js string) native.Status {
	return e.update("Eval", h, func(v *view) { v.evals = append(v.evals, js) }, js)
}

func (e *Engine) Return(h native.Handle, seq string, status int, result string) native.Status {
	return e.update("Return", h, func(v *view) {
		v.returns = append(v.returns, Return{Seq: seq, Status: status, Result: result})
	}, seq, status, result)
}

func (e *Engine) update(method string, h native.Handle, fn func(*view), args ...any) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record(method, h, args...); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	fn(v)
	return native.StatusOK
}

func (e *Engine) Dispatch(h native.Handle, fn native.DispatchFunc, arg uintptr) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record("Dispatch", h, arg); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	v.queue = append(v.queue, task{fn: fn, arg: arg})
	v.signal()
	return native.StatusOK
}

func (e *Engine) Bind(h native.Handle, name string, fn native.BindFunc, arg uintptr) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record("Bind", h, name, arg); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	if _, ok := v.bindings[name]; ok {
		return native.StatusDuplicate
	}
	v.bindings[name] = binding{fn: fn, arg: arg}
	return native.StatusOK
}

func (e *Engine) Unbind(h native.Handle, name string) native.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rc := e.record("Unbind", h, name); rc != native.StatusOK {
		return rc
	}
	v, rc := e.live(h)
	if rc != native.StatusOK {
		return rc
	}
	if _, ok := v.bindings[name]; !ok {
		return native.StatusNotFound
	}
	delete(v.bindings, name)
	return native.StatusOK
}

func (v *view) signal() {
	select {
	case v.wake <- struct{}{}:
	default:
	}
}
