package wv

import (
	"github.com/crafted-tech/wv/native"
	"go.uber.org/zap"
)

// Dispatch schedules fn to run once on the engine thread. It returns as soon
// as the work is queued; fn runs when the engine loop gets to it and receives
// a reference to this engine.
//
// Work still queued when the last reference is released never runs and is
// discarded. If the engine refuses the work, it is discarded immediately and
// the engine's status is returned.
func (w *Webview) Dispatch(fn DispatchFunc) error {
	const op = "dispatch"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if fn == nil {
		return &Error{Op: op, Kind: KindInvalidArgument, Detail: "nil function"}
	}

	token := i.lastToken.Add(1)
	i.pending.Store(token, fn)
	if rc := i.lib.Dispatch(i.h, i.onDispatch, token); rc != native.StatusOK {
		i.pending.Delete(token)
		return Translate(op, rc)
	}
	return nil
}

// Pending returns the number of dispatched functions that have not run yet.
func (w *Webview) Pending() int {
	if w == nil || w.inst == nil {
		return 0
	}
	return w.inst.pending.Size()
}

func (i *instance) onDispatch(_ native.Handle, token uintptr) {
	fn, ok := i.pending.LoadAndDelete(token)
	if !ok {
		i.log.Warn("dispatch for unknown token", zap.Uintptr("token", token))
		return
	}
	if !i.acquire() {
		i.log.Debug("dropping dispatch for released webview", zap.Uintptr("token", token))
		return
	}

	w := &Webview{inst: i}
	defer w.Release()
	defer i.recover("dispatch")
	fn(w)
}

// reclaimPending forgets every queued function and returns how many there were.
func (i *instance) reclaimPending() int {
	n := 0
	i.pending.Range(func(token uintptr, _ DispatchFunc) bool {
		if _, ok := i.pending.LoadAndDelete(token); ok {
			n++
		}
		return true
	})
	return n
}
