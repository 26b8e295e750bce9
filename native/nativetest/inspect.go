package nativetest

import "github.com/crafted-tech/wv/native"

// Calls returns every recorded call in order.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// Methods returns the method names of every call made with handle h, in order.
func (e *Engine) Methods(h native.Handle) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []string
	for _, c := range e.calls {
		if c.Handle == h {
			out = append(out, c.Method)
		}
	}
	return out
}

// Count returns how many times method was called, for any handle.
func (e *Engine) Count(method string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Handles returns every handle created so far.
func (e *Engine) Handles() []native.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]native.Handle, 0, len(e.views))
	for h := range e.views {
		out = append(out, h)
	}
	return out
}

func (e *Engine) view(h native.Handle) *view {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.views[h]; ok {
		return v
	}
	return &view{}
}

// Debug reports whether h was created with the debug surface enabled.
func (e *Engine) Debug(h native.Handle) bool {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.debug
}

// Title returns the last title set on h.
func (e *Engine) Title(h native.Handle) string {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.title
}

// Size returns the last size set on h.
func (e *Engine) Size(h native.Handle) Size {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.size
}

// URL returns the last url navigated to on h.
func (e *Engine) URL(h native.Handle) string {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.url
}

// Scripts returns the init scripts injected into h.
func (e *Engine) Scripts(h native.Handle) []string {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), v.scripts...)
}

// Evals returns the scripts evaluated in h.
func (e *Engine) Evals(h native.Handle) []string {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), v.evals...)
}

// Returns returns the binding results reported for h.
func (e *Engine) Returns(h native.Handle) []Return {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Return(nil), v.returns...)
}

// Bound reports whether name is currently bound on h.
func (e *Engine) Bound(h native.Handle, name string) bool {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := v.bindings[name]
	return ok
}

// Pending returns the number of queued dispatches for h.
func (e *Engine) Pending(h native.Handle) int {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(v.queue)
}

// Terminated reports whether Terminate was called on h.
func (e *Engine) Terminated(h native.Handle) bool {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.terminated
}

// Destroyed reports whether Destroy was called on h.
func (e *Engine) Destroyed(h native.Handle) bool {
	v := e.view(h)
	e.mu.Lock()
	defer e.mu.Unlock()
	return v.destroyed
}
