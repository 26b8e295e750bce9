package wv

import (
	"testing"

	"github.com/crafted-tech/wv/native"
	"github.com/crafted-tech/wv/native/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockHandle native.Handle = 0xbeef

func newMockWebview(t *testing.T) (*Webview, *mock.MockLibrary) {
	t.Helper()

	ctrl := gomock.NewController(t)
	lib := mock.NewMockLibrary(ctrl)
	lib.EXPECT().Create(false, gomock.Any()).Return(mockHandle)

	w, err := New(WithLibrary(lib))
	require.NoError(t, err)
	return w, lib
}

func TestTeardownOrder(t *testing.T) {
	t.Parallel()

	w, lib := newMockWebview(t)
	c := w.Clone()

	gomock.InOrder(
		lib.EXPECT().Terminate(mockHandle).Return(native.StatusOK).Times(1),
		lib.EXPECT().Destroy(mockHandle).Return(native.StatusOK).Times(1),
	)

	w.Release()
	c.Release()
	c.Release()
}

func TestTeardownContinuesAfterTerminateFailure(t *testing.T) {
	t.Parallel()

	w, lib := newMockWebview(t)

	gomock.InOrder(
		lib.EXPECT().Terminate(mockHandle).Return(native.StatusInvalidState),
		lib.EXPECT().Destroy(mockHandle).Return(native.StatusOK),
	)
	w.Release()
}

func TestNulByteSkipsNativeCall(t *testing.T) {
	t.Parallel()

	w, lib := newMockWebview(t)
	defer func() {
		lib.EXPECT().Terminate(mockHandle).Return(native.StatusOK)
		lib.EXPECT().Destroy(mockHandle).Return(native.StatusOK)
		w.Release()
	}()

	// no other expectations: any native call fails the test
	assert.ErrorIs(t, w.Navigate("\x00"), ErrNulByte)
	assert.ErrorIs(t, w.SetTitle("a\x00"), ErrNulByte)
	assert.ErrorIs(t, w.Bind("\x00", func(string, string) {}), ErrNulByte)
}

func TestDispatchPassesToken(t *testing.T) {
	t.Parallel()

	w, lib := newMockWebview(t)

	var (
		fn    native.DispatchFunc
		token uintptr
	)
	lib.EXPECT().Dispatch(mockHandle, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ native.Handle, f native.DispatchFunc, arg uintptr) native.Status {
			fn, token = f, arg
			return native.StatusOK
		})

	ran := 0
	require.NoError(t, w.Dispatch(func(*Webview) { ran++ }))
	require.NotNil(t, fn)

	fn(mockHandle, token)
	fn(mockHandle, token)
	assert.Equal(t, 1, ran)

	lib.EXPECT().Terminate(mockHandle).Return(native.StatusOK)
	lib.EXPECT().Destroy(mockHandle).Return(native.StatusOK)
	w.Release()
}

func TestUnbindKeepsEntryOnFailure(t *testing.T) {
	t.Parallel()

	w, lib := newMockWebview(t)

	lib.EXPECT().Bind(mockHandle, "f", gomock.Any(), gomock.Any()).Return(native.StatusOK)
	lib.EXPECT().Unbind(mockHandle, "f").Return(native.StatusUnspecified)
	require.NoError(t, w.Bind("f", func(string, string) {}))

	assert.ErrorIs(t, w.Unbind("f"), ErrUnspecified)
	assert.Equal(t, []string{"f"}, w.Bindings())

	lib.EXPECT().Terminate(mockHandle).Return(native.StatusOK)
	lib.EXPECT().Destroy(mockHandle).Return(native.StatusOK)
	w.Release()
	assert.Empty(t, w.Bindings())
}
