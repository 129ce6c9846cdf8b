package log

import (
	"io"
	"time"

	"github.com/bytedance/sonic/encoder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	JSONEncoding    = "json"
	ConsoleEncoding = "console"

	DefaultLevel             = zap.InfoLevel
	DefaultIsDev             = false
	DefaultDisableCaller     = false
	DefaultDisableStacktrace = true // stack core extracts error stacks, zap's own capture is useless here

	DefaultEncoding                = ConsoleEncoding
	DefaultEncoderMessageKey       = "msg"
	DefaultEncoderLevelKey         = "lvl"
	DefaultEncoderNameKey          = "logger"
	DefaultEncoderTimeKey          = "ts"
	DefaultEncoderCallerKey        = "caller"
	DefaultEncoderFunctionKey      = ""
	DefaultEncoderStacktraceKey    = "stacktrace"
	DefaultEncoderLineEnding       = "\n"
	DefaultEncoderLevelEncoder     = "lowercase"
	DefaultEncoderTimeEncoder      = "2006-01-02 15:04:05.000000"
	DefaultEncoderDurationEncoder  = "string"
	DefaultEncoderCallerEncoder    = "short"
	DefaultEncoderNameEncoder      = "full"
	DefaultEncoderConsoleSeparator = "\t"
)

var (
	DefaultOutputPath      = []string{"stdout"}
	DefaultErrorOutputPath = []string{"stderr"}
)

// buildTimeEncoder treats enc as a time layout when it starts with a digit,
// otherwise as one of zapcore's named encoders.
func buildTimeEncoder(enc string) zapcore.TimeEncoder {
	var te zapcore.TimeEncoder
	if enc[0] >= '0' && enc[0] <= '9' {
		te = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(ts.Format(enc))
		}
	} else {
		_ = te.UnmarshalText([]byte(enc))
	}

	return te
}

// HandleZapFields converts alternating key-value args to zap fields.
// A string at an even index is a key for the following value, a zap.Field
// is passed through, anything else becomes a !BADKEY field.
func HandleZapFields(args []any, additional ...zap.Field) []zap.Field {
	if len(args) == 0 {
		return additional
	}

	fields := make([]zap.Field, 0, len(args)/2+len(additional))
	for i := 0; i < len(args); i += 2 {
		switch k := args[i].(type) {
		case string:
			if i == len(args)-1 {
				fields = append(fields, zap.String("!BADKEY", k))
			} else {
				switch a := args[i+1].(type) {
				case []byte:
					fields = append(fields, zap.ByteString(k, a))
				default:
					fields = append(fields, zap.Any(k, args[i+1]))
				}
			}
		case zap.Field:
			fields = append(fields, k)
			i--
		default:
			fields = append(fields, zap.Any("!BADKEY", k))
			i--
		}
	}

	return append(fields, additional...)
}

func DefaultEncoderConfig() zapcore.EncoderConfig {
	var le zapcore.LevelEncoder
	_ = le.UnmarshalText([]byte(DefaultEncoderLevelEncoder))

	te := buildTimeEncoder(DefaultEncoderTimeEncoder)

	var de zapcore.DurationEncoder
	_ = de.UnmarshalText([]byte(DefaultEncoderDurationEncoder))

	var ce zapcore.CallerEncoder
	_ = ce.UnmarshalText([]byte(DefaultEncoderCallerEncoder))

	var ne zapcore.NameEncoder
	_ = ne.UnmarshalText([]byte(DefaultEncoderNameEncoder))

	return zapcore.EncoderConfig{
		MessageKey:          DefaultEncoderMessageKey,
		LevelKey:            DefaultEncoderLevelKey,
		TimeKey:             DefaultEncoderTimeKey,
		NameKey:             DefaultEncoderNameKey,
		CallerKey:           DefaultEncoderCallerKey,
		FunctionKey:         DefaultEncoderFunctionKey,
		StacktraceKey:       DefaultEncoderStacktraceKey,
		LineEnding:          DefaultEncoderLineEnding,
		EncodeLevel:         le,
		EncodeTime:          te,
		EncodeDuration:      de,
		EncodeCaller:        ce,
		EncodeName:          ne,
		ConsoleSeparator:    DefaultEncoderConsoleSeparator,
		NewReflectedEncoder: sonicReflectEncoder,
	}
}

func sonicReflectEncoder(w io.Writer) zapcore.ReflectedEncoder {
	return encoder.NewStreamEncoder(w)
}

func DefaultConfig() *zap.Config {
	return &zap.Config{
		Level:             zap.NewAtomicLevelAt(DefaultLevel),
		Development:       DefaultIsDev,
		DisableCaller:     DefaultDisableCaller,
		DisableStacktrace: DefaultDisableStacktrace,
		Encoding:          DefaultEncoding,
		EncoderConfig:     DefaultEncoderConfig(),
		OutputPaths:       DefaultOutputPath,
		ErrorOutputPaths:  DefaultErrorOutputPath,
	}
}
