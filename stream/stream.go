// Package stream deduplicates line-oriented data from readers, keeping
// the first occurrence of every line.
package stream

import (
	"bufio"
	"errors"
	"io"

	"github.com/donkeywon/dedup/errs"
	"github.com/donkeywon/dedup/util/bytespool"
	"github.com/donkeywon/dedup/util/vtil"
)

const DefaultMaxLineSize = 1024 * 1024

// ErrLineTooLong is reported when an input line exceeds Cfg.MaxLineSize.
var ErrLineTooLong = errors.New("line too long")

var nl = []byte{'\n'}

type Cfg struct {
	// MaxLineSize bounds a single input line, in bytes.
	MaxLineSize int `json:"maxLineSize" yaml:"maxLineSize" validate:"gt=0"`

	// ByHash tracks 64-bit line hashes instead of the lines themselves.
	// Memory stays flat no matter how long the lines are, at the usual
	// risk of a hash collision silently dropping a distinct line.
	ByHash bool `json:"byHash" yaml:"byHash"`

	// KeepBlank passes blank lines through without deduplicating them.
	KeepBlank bool `json:"keepBlank" yaml:"keepBlank"`
}

func NewCfg() *Cfg {
	return &Cfg{
		MaxLineSize: DefaultMaxLineSize,
	}
}

// Stats describes one Dedup pass.
type Stats struct {
	Lines   int64 `json:"lines"`
	Written int64 `json:"written"`
}

type Deduper struct {
	cfg *Cfg
}

func NewDeduper(cfg *Cfg) (*Deduper, error) {
	if cfg == nil {
		cfg = NewCfg()
	}
	if err := vtil.Struct(cfg); err != nil {
		return nil, errs.Wrap(err, "invalid deduper cfg")
	}
	return &Deduper{cfg: cfg}, nil
}

// Dedup copies the first occurrence of every line in rs, in order, to w.
// A single seen set spans all readers and is dropped when Dedup returns,
// separate calls are independent.
func (d *Deduper) Dedup(w io.Writer, rs ...io.Reader) (Stats, error) {
	var stats Stats

	t := d.newTracker()
	buf := bytespool.GetN(d.cfg.MaxLineSize)
	defer buf.Free()

	for _, r := range rs {
		s := bufio.NewScanner(r)
		// The scanner's real limit is the larger of max and cap(buf),
		// and a recycled pool buffer can be bigger than MaxLineSize.
		s.Buffer(buf.B()[:0:d.cfg.MaxLineSize], d.cfg.MaxLineSize)
		for s.Scan() {
			stats.Lines++
			line := s.Bytes()

			keep := len(line) == 0 && d.cfg.KeepBlank
			if !keep && !t.first(line) {
				continue
			}

			stats.Written++
			if err := writeLine(w, line); err != nil {
				return stats, err
			}
		}
		if err := s.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return stats, errs.Wrapf(ErrLineTooLong, "line exceeds %d bytes", d.cfg.MaxLineSize)
			}
			return stats, errs.Wrap(err, "read line fail")
		}
	}

	return stats, nil
}

func (d *Deduper) newTracker() tracker {
	if d.cfg.ByHash {
		return newHashTracker()
	}
	return newExactTracker()
}

func writeLine(w io.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return errs.Wrap(err, "write line fail")
	}
	if _, err := w.Write(nl); err != nil {
		return errs.Wrap(err, "write line break fail")
	}
	return nil
}
