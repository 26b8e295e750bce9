package wv

import (
	"errors"
	"testing"

	"github.com/crafted-tech/wv/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code native.Status
		kind Kind
		is   error
	}{
		{native.StatusMissingDependency, KindMissingDependency, ErrMissingDependency},
		{native.StatusCanceled, KindCanceled, ErrCanceled},
		{native.StatusInvalidState, KindInvalidState, ErrInvalidState},
		{native.StatusInvalidArgument, KindInvalidArgument, ErrInvalidArgument},
		{native.StatusUnspecified, KindUnspecified, ErrUnspecified},
		{native.StatusDuplicate, KindDuplicate, ErrDuplicate},
		{native.StatusNotFound, KindNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			err := Translate("navigate", tt.code)
			require.Error(t, err)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, "navigate", e.Op)
			assert.ErrorIs(t, err, tt.is)

			// deterministic
			assert.Equal(t, err, Translate("navigate", tt.code))
		})
	}
}

func TestTranslateOK(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Translate("run", native.StatusOK))
	_, ok := KindOf(native.StatusOK)
	assert.False(t, ok, "StatusOK has no error kind")
}

func TestTranslateUnknownStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []native.Status{-6, 3, 42, -1000} {
		err := Translate("eval", code)

		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, KindUnknownStatus, e.Kind)
		assert.Equal(t, code, e.Code, "raw code must be kept")
		assert.ErrorIs(t, err, ErrUnknownStatus)
		assert.NotErrorIs(t, err, ErrUnspecified)
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := Translate("unbind", native.StatusNotFound)
	assert.Equal(t, "wv: unbind: not_found (status 2)", err.Error())

	err = checkString("set_title", "title", "a\x00b")
	assert.Equal(t, "wv: set_title: nul_byte in title: NUL at byte 1", err.Error())

	cause := errors.New("dlopen failed")
	err = &Error{Op: "create", Kind: KindMissingDependency, Cause: cause}
	assert.Contains(t, err.Error(), "dlopen failed")
	assert.ErrorIs(t, err, cause)
}

func TestCheckString(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkString("eval", "js", "console.log('ok')"))
	assert.NoError(t, checkString("eval", "js", ""))

	err := checkString("eval", "js", "\x00")
	assert.ErrorIs(t, err, ErrNulByte)
}
