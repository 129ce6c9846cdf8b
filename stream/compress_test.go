package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

const compressCorpus = "a\nb\na\nc\n"

func gzipData(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := pgzip.NewWriter(&buf)
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func snappyData(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterSnappyCompat())
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdData(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func lz4Data(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestWrapReader(t *testing.T) {
	for typ, data := range map[CompressType][]byte{
		CompressTypeNop:    []byte(compressCorpus),
		CompressTypeGzip:   gzipData(t, compressCorpus),
		CompressTypeSnappy: snappyData(t, compressCorpus),
		CompressTypeZstd:   zstdData(t, compressCorpus),
		CompressTypeLz4:    lz4Data(t, compressCorpus),
	} {
		r, err := WrapReader(bytes.NewReader(data), typ)
		require.NoError(t, err, typ)

		got, err := io.ReadAll(r)
		require.NoError(t, err, typ)
		require.Equal(t, compressCorpus, string(got), typ)
		require.NoError(t, r.Close(), typ)
	}
}

func TestWrapReaderUnknown(t *testing.T) {
	_, err := WrapReader(strings.NewReader(""), "bzip2")
	require.Error(t, err)
}

func TestDedupCompressedInput(t *testing.T) {
	d, err := NewDeduper(NewCfg())
	require.NoError(t, err)

	r, err := WrapReader(bytes.NewReader(gzipData(t, compressCorpus)), CompressTypeGzip)
	require.NoError(t, err)
	defer r.Close()

	var out bytes.Buffer
	_, err = d.Dedup(&out, r)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\n", out.String())
}
