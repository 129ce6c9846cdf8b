package yamls

import (
	"io"

	"github.com/donkeywon/dedup/util/conv"
	"github.com/goccy/go-yaml"
)

type YAMLDecoder interface {
	Decode(any) error
}

type YAMLEncoder interface {
	Encode(any) error
}

var (
	Unmarshal = yaml.Unmarshal
	Marshal   = yaml.Marshal

	UnmarshalString = func(buf string, val any) error {
		return Unmarshal(conv.String2Bytes(buf), val)
	}
	MarshalString = func(val any) (string, error) {
		bs, err := Marshal(val)
		if err != nil {
			return "", err
		}

		return conv.Bytes2String(bs), nil
	}

	NewEncoder = func(w io.Writer) YAMLEncoder {
		return yaml.NewEncoder(w)
	}
	NewDecoder = func(r io.Reader) YAMLDecoder {
		return yaml.NewDecoder(r)
	}
)
