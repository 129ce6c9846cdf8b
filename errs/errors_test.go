package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func openFail() error {
	return Wrap(io.ErrUnexpectedEOF, "open data file fail")
}

func loadFail() error {
	e := openFail()
	return Wrap(e, "load snapshot fail")
}

func refreshFail() error {
	e1 := loadFail()
	e2 := openFail()
	return Wrap(errors.Join(e1, e2), "refresh fail")
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(nil, "whatever"))
	require.NoError(t, Wrapf(nil, "whatever %d", 1))
	require.NoError(t, WithStack(nil))
}

func TestWrapChain(t *testing.T) {
	err := loadFail()
	require.Error(t, err)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, "load snapshot fail: open data file fail: unexpected EOF", err.Error())
}

func TestErrorf(t *testing.T) {
	err := Errorf("parse line %d fail: %w", 3, io.EOF)
	require.True(t, errors.Is(err, io.EOF))
	require.Contains(t, err.Error(), "parse line 3 fail")
}

type codeErr struct{ code int }

func (e *codeErr) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs(t *testing.T) {
	err := Wrap(&codeErr{code: 42}, "request fail")

	var ce *codeErr
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 42, ce.code)
}

func TestStackTrace(t *testing.T) {
	err := New("boom")

	st, ok := err.(interface{ StackTrace() StackTrace })
	require.True(t, ok)
	require.NotEmpty(t, st.StackTrace())
	require.Contains(t, fmt.Sprintf("%n", st.StackTrace()[0]), "TestStackTrace")
}

func TestErrToStackString(t *testing.T) {
	err := loadFail()
	s := ErrToStackString(err)

	require.Contains(t, s, "unexpected EOF")
	require.Contains(t, s, "cause: open data file fail")
	require.Contains(t, s, "cause: load snapshot fail")
	require.Contains(t, s, "openFail")
	require.Contains(t, s, "more")
	t.Log(s)
}

func TestErrToStackJoin(t *testing.T) {
	err := refreshFail()
	s := ErrToStackString(err)

	require.Contains(t, s, _errsPrefix)
	require.Contains(t, s, "load snapshot fail")
	require.Contains(t, s, "refresh fail")
	t.Log(s)
}

func TestFormatVerb(t *testing.T) {
	err := loadFail()
	require.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	require.Contains(t, fmt.Sprintf("%+v", err), "openFail")
}

func TestPanicToErr(t *testing.T) {
	defer func() {
		err := PanicToErr(recover())
		require.Error(t, err)
		require.Contains(t, err.Error(), "panic: something wrong")
	}()
	panic("something wrong")
}
