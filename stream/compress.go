package stream

import (
	"io"

	"github.com/donkeywon/dedup/errs"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

// CompressType selects the decompressor applied to an input stream.
type CompressType string

const (
	CompressTypeNop    CompressType = "nop"
	CompressTypeGzip   CompressType = "gzip"
	CompressTypeSnappy CompressType = "snappy"
	CompressTypeZstd   CompressType = "zstd"
	CompressTypeLz4    CompressType = "lz4"
)

// WrapReader wraps r with the decompressor for typ. The returned closer
// releases decompressor state only, it never closes r.
func WrapReader(r io.Reader, typ CompressType) (io.ReadCloser, error) {
	switch typ {
	case CompressTypeNop, "":
		return io.NopCloser(r), nil
	case CompressTypeGzip:
		gr, err := pgzip.NewReader(r)
		if err != nil {
			return nil, errs.Wrap(err, "create gzip reader fail")
		}
		return gr, nil
	case CompressTypeSnappy:
		return io.NopCloser(s2.NewReader(r)), nil
	case CompressTypeZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errs.Wrap(err, "create zstd reader fail")
		}
		return &zstdReader{zr}, nil
	case CompressTypeLz4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, errs.Errorf("unknown compress type: %s", typ)
	}
}

// zstdReader adapts Decoder.Close, which returns nothing, to io.Closer.
type zstdReader struct {
	*zstd.Decoder
}

func (z *zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}
