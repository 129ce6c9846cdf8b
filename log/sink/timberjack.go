package sink

import (
	"net/url"

	"github.com/DeRuina/timberjack"
	"github.com/bytedance/sonic"
	"github.com/donkeywon/dedup/errs"
	"go.uber.org/zap"
)

const DefaultCompression = "zstd"

func init() {
	// timberjack:///var/log/dedup.log?{"maxsize":100,"rotationinterval":3600000000000}
	_ = zap.RegisterSink("timberjack", newTimberjackSinkFromURL)
}

type timberjackSink struct {
	*timberjack.Logger
}

// Sync is a no-op, timberjack flushes on every write.
func (ts *timberjackSink) Sync() error {
	return nil
}

func newTimberjackSinkFromURL(u *url.URL) (zap.Sink, error) {
	l := &timberjack.Logger{
		MaxSize:     DefaultMaxFileSize,
		MaxAge:      DefaultMaxAge,
		MaxBackups:  DefaultMaxBackups,
		LocalTime:   true,
		Compression: DefaultCompression,
	}
	if u.RawQuery != "" {
		if err := sonic.Unmarshal([]byte(u.RawQuery), l); err != nil {
			return nil, errs.Wrap(err, "timberjack sink config invalid")
		}
	}
	l.Filename = u.Path
	return &timberjackSink{l}, nil
}
