package log

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/donkeywon/dedup"
	"github.com/donkeywon/dedup/errs"
	"github.com/donkeywon/dedup/log/core"
	_ "github.com/donkeywon/dedup/log/sink"
	"github.com/donkeywon/dedup/util"
	"github.com/donkeywon/dedup/util/jsons"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FilepathSplitter   = ","
	DefaultFilepath    = "stdout"
	DefaultMaxFileSize = 100
	DefaultMaxBackups  = 30
	DefaultMaxAge      = 30
	DefaultCompress    = true
)

type Cfg struct {
	Filepath    string        `json:"filepath"    yaml:"filepath"`
	Encoding    string        `json:"encoding"    yaml:"encoding"`
	MaxFileSize int           `json:"maxFileSize" yaml:"maxFileSize"`
	MaxBackups  int           `json:"maxBackups"  yaml:"maxBackups"`
	MaxAge      int           `json:"maxAge"      yaml:"maxAge"`
	Level       zapcore.Level `json:"level"       yaml:"level"`
	Compress    bool          `json:"compress"    yaml:"compress"`

	// RotateEvery switches file outputs from size-based to interval-based
	// rotation when set.
	RotateEvery time.Duration `json:"rotateEvery" yaml:"rotateEvery"`
}

func NewCfg() *Cfg {
	return &Cfg{
		Level:       DefaultLevel,
		Filepath:    DefaultFilepath,
		MaxFileSize: DefaultMaxFileSize,
		MaxBackups:  DefaultMaxBackups,
		MaxAge:      DefaultMaxAge,
		Compress:    DefaultCompress,
		Encoding:    DefaultEncoding,
	}
}

func (c *Cfg) Build(opts ...zap.Option) (*zap.Logger, error) {
	var err error
	cfg := DefaultConfig()
	cfg.Level = zap.NewAtomicLevelAt(c.Level)
	cfg.Encoding = c.Encoding
	cfg.OutputPaths, err = c.buildOutputs()
	if err != nil {
		return nil, err
	}
	return cfg.Build(append(opts, zap.WrapCore(core.NewStackExtractCore), zap.AddCaller(), zap.AddCallerSkip(1))...)
}

// buildOutputs maps the comma-separated Filepath to zap output URLs,
// dropping repeated paths. File paths become lumberjack or timberjack
// sink URLs carrying the rotation config as query JSON.
func (c *Cfg) buildOutputs() ([]string, error) {
	paths := dedup.Dedup(strings.Split(c.Filepath, FilepathSplitter))
	var outputs []string
	for _, fp := range paths {
		fp = strings.TrimSpace(fp)
		switch strings.ToLower(fp) {
		case "":
			continue
		case "stdout":
			outputs = append(outputs, "stdout")
		case "stderr":
			outputs = append(outputs, "stderr")
		default:
			// url.Parse would put a relative path into the host part.
			fp, err := filepath.Abs(fp)
			if err != nil {
				return nil, errs.Wrapf(err, "resolve log path fail: %s", fp)
			}
			if !util.DirExist(filepath.Dir(fp)) {
				return nil, errs.Errorf("log dir not exists: %s", fp)
			}
			output, err := c.fileOutput(fp)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, output)
		}
	}
	return outputs, nil
}

func (c *Cfg) fileOutput(fp string) (string, error) {
	if c.RotateEvery > 0 {
		tj := &timberjack.Logger{
			Filename:         fp,
			MaxSize:          c.MaxFileSize,
			MaxBackups:       c.MaxBackups,
			MaxAge:           c.MaxAge,
			LocalTime:        true,
			RotationInterval: c.RotateEvery,
		}
		if c.Compress {
			tj.Compression = "zstd"
		}
		cfg, err := jsons.MarshalString(tj)
		if err != nil {
			return "", errs.Wrap(err, "timberjack config invalid")
		}
		return "timberjack://" + fp + "?" + cfg, nil
	}

	lj := &lumberjack.Logger{
		Filename:   fp,
		MaxSize:    c.MaxFileSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
		LocalTime:  true,
	}
	cfg, err := jsons.MarshalString(lj)
	if err != nil {
		return "", errs.Wrap(err, "lumberjack config invalid")
	}
	return "lumberjack://" + fp + "?" + cfg, nil
}

// Default returns a logger built from the default config, swallowing any
// build error.
func Default(option ...zap.Option) *zap.Logger {
	l, _ := NewCfg().Build(option...)
	return l
}

// Debug returns a development logger at debug level that also stamps each
// entry with the writing goroutine's id.
func Debug(option ...zap.Option) *zap.Logger {
	lc := NewCfg()
	lc.Level = zap.DebugLevel
	l, _ := lc.Build(append(option, zap.Development(), zap.WrapCore(core.NewAddGoidCore))...)
	return l
}
