package wv

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// BindFunc binds a Go function under name and answers every call
// automatically. The script arguments are decoded from JSON into f's
// parameters; f may return nothing, a value, an error, or a value and an
// error. A returned value is sent back as JSON and resolves the script
// promise; an error, or arguments that do not fit f, reject it with the error
// message.
//
//	w.BindFunc("add", func(a, b int) int { return a + b })
//
// From script: add(1, 2).then(console.log).
func (w *Webview) BindFunc(name string, f any) error {
	const op = "bind"
	i, err := w.live(op)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return &Error{Op: op, Kind: KindInvalidArgument, Detail: "only functions can be bound"}
	}
	t := v.Type()
	if n := t.NumOut(); n > 2 || (n == 2 && t.Out(1) != errorType) {
		return &Error{Op: op, Kind: KindInvalidArgument, Detail: "function may only return a value, an error, or a value and an error"}
	}

	return w.Bind(name, func(seq, req string) {
		status, result := callJSON(v, req)
		if err := i.ret(seq, status, result); err != nil {
			i.log.Warn("cannot return binding result", zap.String("name", name), zap.Error(err))
		}
	})
}

// callJSON calls fn with the JSON array req and returns the status and JSON
// result for Return. A panic in fn rejects the call instead of leaving the
// script promise pending.
func callJSON(fn reflect.Value, req string) (status int, result string) {
	defer func() {
		if r := recover(); r != nil {
			status, result = 1, jsonString(fmt.Sprint("panic: ", r))
		}
	}()

	res, err := invokeJSON(fn, req)
	if err != nil {
		return 1, jsonString(err.Error())
	}
	b, err := json.Marshal(res)
	if err != nil {
		return 1, jsonString(err.Error())
	}
	return 0, string(b)
}

func invokeJSON(fn reflect.Value, req string) (any, error) {
	if !gjson.Valid(req) {
		return nil, errors.New("request is not valid JSON")
	}
	parsed := gjson.Parse(req)
	if !parsed.IsArray() {
		return nil, errors.New("request is not a JSON array")
	}
	raw := parsed.Array()

	t := fn.Type()
	numIn := t.NumIn()
	variadic := t.IsVariadic()
	if (variadic && len(raw) < numIn-1) || (!variadic && len(raw) != numIn) {
		return nil, fmt.Errorf("function arguments mismatch: want %d, got %d", numIn, len(raw))
	}

	args := make([]reflect.Value, 0, len(raw))
	for k, r := range raw {
		var at reflect.Type
		if variadic && k >= numIn-1 {
			at = t.In(numIn - 1).Elem()
		} else {
			at = t.In(k)
		}
		arg := reflect.New(at)
		if err := json.Unmarshal([]byte(r.Raw), arg.Interface()); err != nil {
			return nil, fmt.Errorf("argument %d: %w", k, err)
		}
		args = append(args, arg.Elem())
	}

	out := fn.Call(args)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0) == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asError(out[1])
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
