package wv

import (
	"fmt"
	"strings"

	"github.com/crafted-tech/wv/native"
)

// Kind categorizes an Error.
type Kind string

// Kinds reported by the native library.
const (
	KindMissingDependency Kind = "missing_dependency"
	KindCanceled          Kind = "canceled"
	KindInvalidState      Kind = "invalid_state"
	KindInvalidArgument   Kind = "invalid_argument"
	KindUnspecified       Kind = "unspecified"
	KindDuplicate         Kind = "duplicate"
	KindNotFound          Kind = "not_found"
)

// Kinds raised by the wrapper itself.
const (
	// KindUnknownStatus means the library returned a status outside the set
	// it documents. Error.Code carries the raw value.
	KindUnknownStatus Kind = "unknown_status"

	// KindNulByte means a string argument contained a NUL byte and could not
	// be passed to C. The native call was not made.
	KindNulByte Kind = "nul_byte"
)

// Sentinels for use with errors.Is. Matching compares kinds only.
var (
	ErrMissingDependency = &Error{Kind: KindMissingDependency}
	ErrCanceled          = &Error{Kind: KindCanceled}
	ErrInvalidState      = &Error{Kind: KindInvalidState}
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrUnspecified       = &Error{Kind: KindUnspecified}
	ErrDuplicate         = &Error{Kind: KindDuplicate}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrUnknownStatus     = &Error{Kind: KindUnknownStatus}
	ErrNulByte           = &Error{Kind: KindNulByte}
)

var statusKinds = map[native.Status]Kind{
	native.StatusMissingDependency: KindMissingDependency,
	native.StatusCanceled:          KindCanceled,
	native.StatusInvalidState:      KindInvalidState,
	native.StatusInvalidArgument:   KindInvalidArgument,
	native.StatusUnspecified:       KindUnspecified,
	native.StatusDuplicate:         KindDuplicate,
	native.StatusNotFound:          KindNotFound,
}

// Error is returned by every fallible operation of a Webview.
type Error struct {
	Op     string        // operation, e.g. "navigate"
	Kind   Kind          // error category
	Code   native.Status // native status, zero for errors raised before the native call
	Field  string        // offending argument for KindNulByte
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("wv: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Code != native.StatusOK {
		fmt.Fprintf(&b, " (status %d)", e.Code)
	}
	if e.Field != "" {
		b.WriteString(" in ")
		b.WriteString(e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind documented for a native status. ok is false for
// StatusOK and for values outside the documented set.
func KindOf(code native.Status) (kind Kind, ok bool) {
	kind, ok = statusKinds[code]
	return kind, ok
}

// Translate converts the status returned by the native operation op into an
// error. StatusOK yields nil; undocumented values yield KindUnknownStatus.
func Translate(op string, code native.Status) error {
	if code == native.StatusOK {
		return nil
	}
	kind, ok := KindOf(code)
	if !ok {
		kind = KindUnknownStatus
	}
	return &Error{Op: op, Kind: kind, Code: code}
}

// checkString rejects strings that cannot cross into C unchanged.
func checkString(op, field, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &Error{
			Op:     op,
			Kind:   KindNulByte,
			Field:  field,
			Detail: fmt.Sprintf("NUL at byte %d", i),
		}
	}
	return nil
}

func invalidState(op, detail string) error {
	return &Error{Op: op, Kind: KindInvalidState, Detail: detail}
}
