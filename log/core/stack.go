// Package core provides zapcore wrappers applied when building loggers.
package core

import (
	"github.com/donkeywon/dedup/errs"
	"github.com/donkeywon/dedup/util/bufferpool"

	"go.uber.org/zap/zapcore"
)

// NewStackExtractCore wraps c so that error fields are rendered through
// errs with their folded stacks and moved into the entry's stack section
// instead of being printed inline.
func NewStackExtractCore(c zapcore.Core) zapcore.Core {
	return &errStackCore{c}
}

type errStackCore struct {
	zapcore.Core
}

func (c *errStackCore) With(fields []zapcore.Field) zapcore.Core {
	return &errStackCore{
		c.Core.With(fields),
	}
}

func (c *errStackCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if !hasErrField(fields) {
		return c.Core.Write(ent, fields)
	}

	buf := bufferpool.GetBuffer()
	defer buf.Free()
	fields = extractErrStacks(buf, fields)

	if ent.Stack == "" {
		ent.Stack = "error: " + buf.String()
	} else {
		ent.Stack = ent.Stack + "\nerror: " + buf.String()
	}
	return c.Core.Write(ent, fields)
}

func (c *errStackCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func hasErrField(fields []zapcore.Field) bool {
	for _, field := range fields {
		if field.Type == zapcore.ErrorType {
			return true
		}
	}
	return false
}

// extractErrStacks renders every error field into buf and returns the
// remaining fields. The input slice is left untouched, other cores may
// still be holding it.
func extractErrStacks(buf *bufferpool.Buffer, fields []zapcore.Field) []zapcore.Field {
	kept := make([]zapcore.Field, 0, len(fields))
	for _, field := range fields {
		if field.Type != zapcore.ErrorType {
			kept = append(kept, field)
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		errs.ErrToStack(field.Interface.(error), buf, 0)
	}
	return kept
}
