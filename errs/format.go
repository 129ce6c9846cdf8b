package errs

import (
	"fmt"
	"io"
	"strings"

	"github.com/donkeywon/dedup/util/bufferpool"
)

var (
	_errsPrefix    = "multi error occurred:"
	_errsSeparator = "- "
	_errsIndent    = []byte("  ")
)

type wrappedErr interface {
	Unwrap() error
}

type wrappedErrs interface {
	Unwrap() []error
}

// errFmtState lets a fmt.Formatter render into a pooled buffer as if it
// had been called with %+v.
type errFmtState struct{ *bufferpool.Buffer }

var _ fmt.State = errFmtState{}

func (errFmtState) Flag(c int) bool {
	switch c {
	case '+':
		return true
	default:
		return false
	}
}

func (errFmtState) Width() (wid int, ok bool)      { panic("should not be called") }
func (errFmtState) Precision() (prec int, ok bool) { panic("should not be called") }

func writeIndent(w io.Writer, indent []byte, indentCount int, skipFirst bool, s string) {
	first := true
	for len(s) > 0 {
		if first && skipFirst {
			first = false
		} else {
			for i := 0; i < indentCount; i++ {
				w.Write(indent)
			}
		}

		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			idx = len(s) - 1
		}

		io.WriteString(w, s[:idx+1])
		s = s[idx+1:]
	}
}

// ErrToStackString renders err with its deepest cause first, each captured
// stack folded where it repeats the one below it.
func ErrToStackString(err error) string {
	buf := bufferpool.GetBuffer()
	defer buf.Free()
	ErrToStack(err, buf, 0)
	return buf.String()
}

// ErrToStack renders err into buf, indented errsDepth levels deep.
func ErrToStack(err error, buf *bufferpool.Buffer, errsDepth int) {
	switch terr := err.(type) {
	case wrappedErrs:
		es := terr.Unwrap()
		if len(es) < 1 {
			return
		} else if len(es) == 1 {
			ErrToStack(es[0], buf, errsDepth)
		} else {
			writeIndent(buf, _errsIndent, errsDepth, false, _errsPrefix)
			for _, e := range es {
				buf.WriteByte('\n')
				writeIndent(buf, _errsIndent, errsDepth+1, false, _errsSeparator)

				_buf := bufferpool.GetBuffer()
				ErrToStack(e, _buf, errsDepth+2)
				writeIndent(buf, _errsIndent, 0, true, strings.TrimLeft(_buf.String(), " \n"))
				_buf.Free()
			}
		}
	case wrappedErr:
		ErrToStack(terr.Unwrap(), buf, errsDepth)

		if emsg, ok := err.(*withMessage); ok {
			buf.WriteByte('\n')
			writeIndent(buf, _errsIndent, errsDepth, false, "cause: ")
			buf.WriteString(emsg.msg)
		} else if estack, ok := err.(*withStack); ok {
			sf := (*estack.stack)[:estack.foldAt]
			stackLen := len(*estack.stack)

			_buf := bufferpool.GetBuffer()
			(&sf).Format(errFmtState{_buf}, 'v')
			writeIndent(buf, _errsIndent, errsDepth, false, _buf.String())
			_buf.Free()

			if estack.foldAt < stackLen {
				buf.WriteByte('\n')
				writeIndent(buf, _errsIndent, errsDepth, false, fmt.Sprintf("\t... %d more", stackLen-estack.foldAt))
			}
		} else {
			buf.WriteByte('\n')
			writeIndent(buf, _errsIndent, errsDepth, false, "cause: ")
			buf.WriteString(err.Error())
		}
	case fmt.Formatter:
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		_buf := bufferpool.GetBuffer()
		terr.Format(errFmtState{_buf}, 'v')
		writeIndent(buf, _errsIndent, errsDepth, false, strings.TrimLeft(_buf.String(), " \n"))
		_buf.Free()
	default:
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(terr.Error())
	}
}

// PanicToErr converts a recovered panic value to an error.
func PanicToErr(p any) error {
	return PanicToErrWithMsg(p, "panic")
}

func PanicToErrWithMsg(p any, msg string) error {
	var err error
	switch pt := p.(type) {
	case error:
		err = pt
	default:
		if msg == "" {
			err = Errorf("%+v", p)
		} else {
			err = Errorf("%s: %+v", msg, p)
		}
	}
	return err
}
