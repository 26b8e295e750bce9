package wv

import (
	"strconv"

	"github.com/crafted-tech/wv/native"
)

// SizeHint tells the engine how to interpret the width and height passed to
// SetSize.
type SizeHint int

const (
	HintNone  SizeHint = iota // Width and height are the default size
	HintMin                   // Width and height are minimum bounds
	HintMax                   // Width and height are maximum bounds
	HintFixed                 // The user cannot resize the window
)

// String returns the hint name.
func (h SizeHint) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintMin:
		return "min"
	case HintMax:
		return "max"
	case HintFixed:
		return "fixed"
	}
	return "hint(" + strconv.Itoa(int(h)) + ")"
}

func (h SizeHint) native() native.Hint {
	return native.Hint(h)
}

// ParseSizeHint returns the hint named s ("none", "min", "max" or "fixed").
func ParseSizeHint(s string) (SizeHint, bool) {
	switch s {
	case "none", "":
		return HintNone, true
	case "min":
		return HintMin, true
	case "max":
		return HintMax, true
	case "fixed":
		return HintFixed, true
	}
	return HintNone, false
}

// BindingFunc handles calls from script code to a bound name. seq identifies
// the call and must be passed to Return to resolve the script promise; req is
// the JSON encoded array of arguments. The function runs on the engine thread
// and may be called any number of times until the name is unbound.
type BindingFunc func(seq, req string)

// DispatchFunc is work scheduled with Dispatch. It runs once on the engine
// thread and receives a reference to the same engine it was scheduled on. The
// reference is released when the function returns; Clone it to keep it.
type DispatchFunc func(w *Webview)
