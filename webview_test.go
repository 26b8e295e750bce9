package wv

import (
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/crafted-tech/wv/native"
	"github.com/crafted-tech/wv/native/nativetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebview(t *testing.T, opts ...Option) (*Webview, *nativetest.Engine) {
	t.Helper()

	e := nativetest.New()
	w, err := New(append([]Option{WithLibrary(e)}, opts...)...)
	require.NoError(t, err, "should create webview")
	return w, e
}

func TestNew(t *testing.T) {
	t.Parallel()

	var window int
	w, e := newTestWebview(t,
		WithDebug(true),
		WithWindow(unsafe.Pointer(&window)),
		WithTitle("Webview Window"),
		WithSize(800, 600, HintMin))
	defer w.Release()

	h := w.inst.h
	assert.True(t, e.Debug(h))
	assert.Equal(t, "Webview Window", e.Title(h))
	assert.Equal(t, nativetest.Size{Width: 800, Height: 600, Hint: native.HintMin}, e.Size(h))
	assert.Equal(t, unsafe.Pointer(&window), w.Window())
	assert.Equal(t, 1, w.Refs())
}

func TestNewNullHandle(t *testing.T) {
	t.Parallel()

	e := nativetest.New()
	e.Fail("Create", native.StatusUnspecified)

	w, err := New(WithLibrary(e))
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrUnspecified)
}

func TestNewMissingLibrary(t *testing.T) {
	t.Parallel()

	w, err := New(WithLibraryPath("/nonexistent/libwebview.so"))
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrMissingDependency)
	assert.ErrorIs(t, err, native.ErrLoad)
}

func TestNewTitleFailureReleases(t *testing.T) {
	t.Parallel()

	e := nativetest.New()
	e.Fail("SetTitle", native.StatusInvalidState)

	w, err := New(WithLibrary(e), WithTitle("x"))
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrInvalidState)

	h := e.Handles()[0]
	assert.Equal(t, []string{"Create", "SetTitle", "Terminate", "Destroy"}, e.Methods(h))
}

func TestReferenceCounting(t *testing.T) {
	t.Parallel()

	const n = 8
	w, e := newTestWebview(t)
	h := w.inst.h

	clones := make([]*Webview, n)
	for i := range clones {
		clones[i] = w.Clone()
		require.NotNil(t, clones[i])
	}
	assert.Equal(t, n+1, w.Refs())

	// drop the original and all clones but one
	w.Release()
	for _, c := range clones[:n-1] {
		c.Release()
	}
	assert.Zero(t, e.Count("Terminate"), "no teardown while a reference is live")
	assert.Zero(t, e.Count("Destroy"), "no teardown while a reference is live")
	assert.Equal(t, 1, clones[n-1].Refs())

	clones[n-1].Release()
	assert.Equal(t, []string{"Create", "Terminate", "Destroy"}, e.Methods(h))
	assert.True(t, e.Destroyed(h))
}

func TestReleaseTwice(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	c := w.Clone()

	c.Release()
	c.Release() // must not drop w's reference
	assert.Equal(t, 1, w.Refs())
	assert.Zero(t, e.Count("Destroy"))

	w.Release()
	w.Release()
	assert.Equal(t, 1, e.Count("Terminate"))
	assert.Equal(t, 1, e.Count("Destroy"))
}

func TestConcurrentRelease(t *testing.T) {
	t.Parallel()

	const n = 64
	w, e := newTestWebview(t)

	refs := []*Webview{w}
	for i := 1; i < n; i++ {
		refs = append(refs, w.Clone())
	}

	var wg sync.WaitGroup
	for _, r := range refs {
		wg.Add(1)
		go func(r *Webview) {
			defer wg.Done()
			r.Release()
		}(r)
	}
	wg.Wait()

	assert.Equal(t, 1, e.Count("Terminate"))
	assert.Equal(t, 1, e.Count("Destroy"))
}

func TestUseAfterRelease(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	w.Release()
	before := len(e.Calls())

	assert.Nil(t, w.Clone())
	assert.Nil(t, w.Window())
	assert.ErrorIs(t, w.Navigate("https://example.com"), ErrInvalidState)
	assert.ErrorIs(t, w.Eval("1"), ErrInvalidState)
	assert.ErrorIs(t, w.Run(), ErrInvalidState)
	assert.ErrorIs(t, w.Dispatch(func(*Webview) {}), ErrInvalidState)
	assert.ErrorIs(t, w.Bind("f", func(string, string) {}), ErrInvalidState)
	assert.Len(t, e.Calls(), before, "no native call after release")

	var nilView *Webview
	assert.ErrorIs(t, nilView.SetTitle("x"), ErrInvalidState)
	nilView.Release()
}

func TestOperations(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()
	h := w.inst.h

	require.NoError(t, w.Navigate("https://www.wikipedia.org"))
	assert.Equal(t, "https://www.wikipedia.org", e.URL(h))

	require.NoError(t, w.Init("window.ready = true"))
	require.NoError(t, w.Eval("document.title"))
	assert.Equal(t, []string{"window.ready = true"}, e.Scripts(h))
	assert.Equal(t, []string{"document.title"}, e.Evals(h))

	require.NoError(t, w.SetTitle("Title"))
	assert.Equal(t, "Title", e.Title(h))
}

func TestSetSizeForwardsUnmodified(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()

	require.NoError(t, w.SetSize(800, 600, HintFixed))

	last := e.Calls()[len(e.Calls())-1]
	assert.Equal(t, "SetSize", last.Method)
	assert.Equal(t, []any{800, 600, native.HintFixed}, last.Args)
}

func TestSetHTML(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()

	require.NoError(t, w.SetHTML("<h1>Hi there</h1>"))
	assert.Equal(t, "data:text/html;charset=utf-8,%3Ch1%3EHi%20there%3C%2Fh1%3E", e.URL(w.inst.h))
}

func TestNulByteNeverReachesNative(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()
	before := len(e.Calls())

	ops := map[string]func() error{
		"navigate":  func() error { return w.Navigate("https://a\x00b") },
		"set_html":  func() error { return w.SetHTML("<p>\x00</p>") },
		"init":      func() error { return w.Init("a\x00") },
		"eval":      func() error { return w.Eval("\x00") },
		"set_title": func() error { return w.SetTitle("t\x00") },
		"bind":      func() error { return w.Bind("f\x00", func(string, string) {}) },
		"unbind":    func() error { return w.Unbind("f\x00") },
		"return":    func() error { return w.Return("1", 0, "\"\x00\"") },
		"seq":       func() error { return w.Return("\x001", 0, "null") },
	}
	for name, op := range ops {
		err := op()
		assert.ErrorIs(t, err, ErrNulByte, name)
	}

	assert.Len(t, e.Calls(), before, "native layer must see no calls")
	assert.Empty(t, w.Bindings())
}

func TestNativeFailureTranslated(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()

	e.Fail("Navigate", native.StatusInvalidArgument)
	assert.ErrorIs(t, w.Navigate("bogus"), ErrInvalidArgument)

	e.Fail("Eval", native.Status(7))
	err := w.Eval("1")
	var werr *Error
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, KindUnknownStatus, werr.Kind)
	assert.Equal(t, native.Status(7), werr.Code)
}

func TestRun(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	defer w.Release()

	done := make(chan error, 1)
	go func() {
		done <- w.Run()
	}()

	require.Eventually(t, func() bool { return e.Count("Run") == 1 }, time.Second, time.Millisecond)
	assert.ErrorIs(t, w.Run(), ErrInvalidState, "second Run must be rejected")

	require.NoError(t, w.Dispatch(func(w *Webview) {
		assert.NoError(t, w.Terminate())
	}))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Terminate")
	}
}

func TestReleaseDuringRunDefersTeardown(t *testing.T) {
	t.Parallel()

	w, e := newTestWebview(t)
	h := w.inst.h

	done := make(chan error, 1)
	go func() {
		done <- w.Run()
	}()
	require.Eventually(t, func() bool { return e.Count("Run") == 1 }, time.Second, time.Millisecond)

	destroyedInLoop := make(chan int, 1)
	require.NoError(t, w.Dispatch(func(d *Webview) {
		w.Release()
		assert.NoError(t, d.Terminate())
		destroyedInLoop <- e.Count("Destroy")
	}))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Terminate")
	}

	assert.Zero(t, <-destroyedInLoop, "engine destroyed while its loop was running")
	assert.True(t, e.Destroyed(h))
	assert.Equal(t, []string{"Create", "Run", "Dispatch", "Terminate", "Terminate", "Destroy"}, e.Methods(h))
}

type apartmentFailure struct {
	*nativetest.Engine
	err error
}

func (a apartmentFailure) CreateError() error { return a.err }

func TestNewNullHandleCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("CoInitializeEx: RPC_E_CHANGED_MODE")
	lib := apartmentFailure{Engine: nativetest.New(), err: cause}
	lib.Fail("Create", native.StatusUnspecified)

	w, err := New(WithLibrary(lib))
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrUnspecified)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "RPC_E_CHANGED_MODE")
}
