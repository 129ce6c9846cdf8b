package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedupLines(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out bytes.Buffer
	stats, err := d.Dedup(&out, strings.NewReader("a\nb\na\nc\nb\n"))
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\n", out.String())
	require.Equal(t, int64(5), stats.Lines)
	require.Equal(t, int64(3), stats.Written)
}

func TestDedupAcrossReaders(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = d.Dedup(&out, strings.NewReader("a\nb\n"), strings.NewReader("b\nc\n"))
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\n", out.String())
}

func TestDedupCallsIndependent(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out1, out2 bytes.Buffer
	_, err = d.Dedup(&out1, strings.NewReader("a\na\n"))
	require.NoError(t, err)
	_, err = d.Dedup(&out2, strings.NewReader("a\n"))
	require.NoError(t, err)

	require.Equal(t, "a\n", out1.String())
	require.Equal(t, "a\n", out2.String())
}

func TestDedupByHashMatchesExact(t *testing.T) {
	in := "x\ny\nx\nz\ny\n"

	exact, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	cfg := NewCfg()
	cfg.ByHash = true
	hashed, err := NewDeduper(cfg)
	require.NoError(t, err)

	var outExact, outHashed bytes.Buffer
	_, err = exact.Dedup(&outExact, strings.NewReader(in))
	require.NoError(t, err)
	_, err = hashed.Dedup(&outHashed, strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, "x\ny\nz\n", outExact.String())
	require.Equal(t, outExact.String(), outHashed.String())
}

func TestKeepBlank(t *testing.T) {
	cfg := NewCfg()
	cfg.KeepBlank = true
	d, err := NewDeduper(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = d.Dedup(&out, strings.NewReader("a\n\nb\n\na\n"))
	require.NoError(t, err)
	require.Equal(t, "a\n\nb\n\n", out.String())
}

func TestBlankDedupedByDefault(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = d.Dedup(&out, strings.NewReader("a\n\nb\n\n"))
	require.NoError(t, err)
	require.Equal(t, "a\n\nb\n", out.String())
}

func TestLineTooLong(t *testing.T) {
	cfg := NewCfg()
	cfg.MaxLineSize = 8
	d, err := NewDeduper(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = d.Dedup(&out, strings.NewReader(strings.Repeat("x", 9)+"\n"))
	require.ErrorIs(t, err, ErrLineTooLong)
}

func TestLineTooLongWithRecycledBuffer(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = d.Dedup(&out, strings.NewReader("warm\n"))
	require.NoError(t, err)

	cfg := NewCfg()
	cfg.MaxLineSize = 8
	small, err := NewDeduper(cfg)
	require.NoError(t, err)

	out.Reset()
	_, err = small.Dedup(&out, strings.NewReader(strings.Repeat("x", 100)+"\n"))
	require.ErrorIs(t, err, ErrLineTooLong)
	require.Zero(t, out.Len())
}

func TestInvalidCfg(t *testing.T) {
	_, err := NewDeduper(&Cfg{MaxLineSize: 0})
	require.Error(t, err)
}

func TestNilCfgUsesDefaults(t *testing.T) {
	d, err := NewDeduper(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxLineSize, d.cfg.MaxLineSize)
}

func TestNoTrailingLineBreak(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	var out bytes.Buffer
	stats, err := d.Dedup(&out, strings.NewReader("a\nb"))
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", out.String())
	require.Equal(t, int64(2), stats.Lines)
}
