package wv

import (
	"fmt"
	"sort"

	"github.com/crafted-tech/wv/native"
	"go.uber.org/zap"
)

// binding is a registered BindingFunc. The registry owns it until Unbind or
// the engine is destroyed.
type binding struct {
	name  string
	token uintptr
	fn    BindingFunc
}

// Bind exposes fn to script code as the global function name. Calling it from
// script returns a promise that is settled by Return. Binding a name twice
// fails with KindDuplicate.
func (w *Webview) Bind(name string, fn BindingFunc) error {
	const op = "bind"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "name", name); err != nil {
		return err
	}
	if fn == nil {
		return &Error{Op: op, Kind: KindInvalidArgument, Detail: "nil function"}
	}

	i.bindMu.Lock()
	defer i.bindMu.Unlock()

	b := &binding{name: name, token: i.lastToken.Add(1), fn: fn}
	if _, loaded := i.names.LoadOrStore(name, b); loaded {
		return &Error{
			Op:     op,
			Kind:   KindDuplicate,
			Code:   native.StatusDuplicate,
			Detail: fmt.Sprintf("%q is already bound", name),
		}
	}
	i.tokens.Store(b.token, b)

	if rc := i.lib.Bind(i.h, name, i.onBind, b.token); rc != native.StatusOK {
		i.tokens.Delete(b.token)
		i.names.Delete(name)
		return Translate(op, rc)
	}
	i.log.Debug("bound", zap.String("name", name))
	return nil
}

// Unbind removes the global function name. Unbinding a name that is not bound
// fails with the engine's KindNotFound.
func (w *Webview) Unbind(name string) error {
	const op = "unbind"
	i, err := w.live(op)
	if err != nil {
		return err
	}
	if err := checkString(op, "name", name); err != nil {
		return err
	}

	i.bindMu.Lock()
	defer i.bindMu.Unlock()

	if err := Translate(op, i.lib.Unbind(i.h, name)); err != nil {
		return err
	}
	if b, ok := i.names.LoadAndDelete(name); ok {
		i.tokens.Delete(b.token)
	}
	i.log.Debug("unbound", zap.String("name", name))
	return nil
}

// Return settles the script promise of the binding call identified by seq.
// status 0 resolves it with result, anything else rejects it. result must be
// valid JSON.
func (w *Webview) Return(seq string, status int, result string) error {
	i, err := w.live("return")
	if err != nil {
		return err
	}
	return i.ret(seq, status, result)
}

func (i *instance) ret(seq string, status int, result string) error {
	const op = "return"
	if err := checkString(op, "seq", seq); err != nil {
		return err
	}
	if err := checkString(op, "result", result); err != nil {
		return err
	}
	return Translate(op, i.lib.Return(i.h, seq, status, result))
}

// Bindings returns the currently bound names in sorted order.
func (w *Webview) Bindings() []string {
	if w == nil || w.inst == nil {
		return nil
	}
	var names []string
	w.inst.names.Range(func(name string, _ *binding) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

func (i *instance) onBind(seq, req string, token uintptr) {
	b, ok := i.tokens.Load(token)
	if !ok {
		i.log.Warn("call for unknown binding", zap.Uintptr("token", token))
		return
	}
	defer i.recover("bind:" + b.name)
	b.fn(seq, req)
}

// clearBindings drops every registered binding and returns how many there were.
func (i *instance) clearBindings() int {
	i.bindMu.Lock()
	defer i.bindMu.Unlock()

	n := 0
	i.names.Range(func(name string, b *binding) bool {
		if _, ok := i.names.LoadAndDelete(name); ok {
			i.tokens.Delete(b.token)
			n++
		}
		return true
	})
	return n
}
