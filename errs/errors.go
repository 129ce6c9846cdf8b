// Package errs provides error wrapping with fold-aware stack traces.
//
// Every constructor records the caller's stack. When an error is wrapped
// again further up the call chain, only the frames not already covered by
// the previous capture are rendered; the shared tail is folded into a
// "... N more" line, the way stacked Java causes are printed.
package errs

import (
	"errors"
	"fmt"
	"io"
)

// New returns a message error annotated with the caller's stack.
func New(msg string) error {
	return attach(errors.New(msg), callers())
}

// Errorf formats a message and annotates it with the caller's stack.
// The %w verb is supported and keeps the wrapped error unwrappable.
func Errorf(format string, args ...any) error {
	return attach(fmt.Errorf(format, args...), callers())
}

// Wrap annotates err with msg and the caller's stack.
// Returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return attach(&withMessage{msg: msg, err: err}, callers())
}

// Wrapf annotates err with a formatted message and the caller's stack.
// Returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return attach(&withMessage{msg: fmt.Sprintf(format, args...), err: err}, callers())
}

// WithStack annotates err with the caller's stack without adding a message.
// Returns nil when err is nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return attach(err, callers())
}

func attach(err error, st *stack) error {
	return &withStack{
		error:  err,
		stack:  st,
		foldAt: foldAt(err, st),
	}
}

type withMessage struct {
	msg string
	err error
}

func (w *withMessage) Error() string { return w.msg + ": " + w.err.Error() }
func (w *withMessage) Unwrap() error { return w.err }

func (w *withMessage) Format(s fmt.State, verb rune) { formatErr(w, s, verb) }

type withStack struct {
	error
	stack *stack

	// foldAt is the count of leading frames not already covered by the
	// nearest stack further down the chain; the shared tail is folded
	// at render time.
	foldAt int
}

func (w *withStack) Unwrap() error { return w.error }

func (w *withStack) StackTrace() StackTrace { return w.stack.StackTrace() }

func (w *withStack) Format(s fmt.State, verb rune) { formatErr(w, s, verb) }

// formatErr renders the full fold-aware stack for %+v and the plain
// message otherwise.
func formatErr(err error, s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, ErrToStackString(err))
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}

func foldAt(err error, st *stack) int {
	prev := nearestStack(err)
	if prev == nil {
		return len(*st)
	}

	cur, old := *st, *prev
	shared := 0
	for i, j := len(cur)-1, len(old)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if cur[i] != old[j] {
			break
		}
		shared++
	}

	at := len(cur) - shared
	if at < 1 {
		at = 1
	}
	return at
}

func nearestStack(err error) *stack {
	for err != nil {
		if ws, ok := err.(*withStack); ok {
			return ws.stack
		}
		u, ok := err.(wrappedErr)
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
