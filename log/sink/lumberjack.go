// Package sink registers zap sinks for rotating log files. Importing it
// enables the lumberjack:// and timberjack:// output schemes.
package sink

import (
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/donkeywon/dedup/errs"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxFileSize = 100
	DefaultMaxBackups  = 30
	DefaultMaxAge      = 30
	DefaultCompress    = true
)

func init() {
	// lumberjack:///var/log/dedup.log?{"maxsize":100,"maxage":30,"maxbackups":30,"compress":true}
	_ = zap.RegisterSink("lumberjack", newLumberjackSinkFromURL)
}

type lumberjackSink struct {
	*lumberjack.Logger
}

// Sync is a no-op, lumberjack flushes on every write.
func (ls *lumberjackSink) Sync() error {
	return nil
}

func newLumberjackSinkFromURL(u *url.URL) (zap.Sink, error) {
	l := &lumberjack.Logger{
		MaxSize:    DefaultMaxFileSize,
		MaxAge:     DefaultMaxAge,
		MaxBackups: DefaultMaxBackups,
		LocalTime:  true,
		Compress:   DefaultCompress,
	}
	if u.RawQuery != "" {
		if err := sonic.Unmarshal([]byte(u.RawQuery), l); err != nil {
			return nil, errs.Wrap(err, "lumberjack sink config invalid")
		}
	}
	l.Filename = u.Path
	return &lumberjackSink{l}, nil
}
