package nativetest

import "github.com/crafted-tech/wv/native"

// Step runs the oldest queued dispatch for h on the calling goroutine and
// reports whether there was one.
func (e *Engine) Step(h native.Handle) bool {
	e.mu.Lock()
	v, ok := e.views[h]
	if !ok || v.destroyed || len(v.queue) == 0 {
		e.mu.Unlock()
		return false
	}
	t := v.queue[0]
	v.queue = v.queue[1:]
	e.mu.Unlock()

	t.fn(h, t.arg)
	return true
}

// Drain runs queued dispatches until none are left, including work queued by
// the dispatched functions themselves. It returns the number of functions run.
func (e *Engine) Drain(h native.Handle) int {
	n := 0
	for e.Step(h) {
		n++
	}
	return n
}

// Call simulates script code calling the bound name with the given sequence
// token and JSON request. It returns StatusNotFound when name is not bound.
func (e *Engine) Call(h native.Handle, name, seq, req string) native.Status {
	e.mu.Lock()
	v, rc := e.live(h)
	if rc != native.StatusOK {
		e.mu.Unlock()
		return rc
	}
	b, ok := v.bindings[name]
	e.mu.Unlock()
	if !ok {
		return native.StatusNotFound
	}

	b.fn(seq, req, b.arg)
	return native.StatusOK
}
