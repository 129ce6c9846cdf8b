package jsons

import (
	"io"

	"github.com/donkeywon/dedup/util/conv"
	json "github.com/goccy/go-json"
)

type JSONDecoder interface {
	Decode(v any) error
	UseNumber()
	DisallowUnknownFields()
	Buffered() io.Reader
	More() bool
}

type JSONEncoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
	SetEscapeHTML(on bool)
}

var (
	Unmarshal = json.Unmarshal
	Marshal   = json.Marshal

	UnmarshalString = func(buf string, val any) error { return Unmarshal(conv.String2Bytes(buf), val) }
	MarshalString   = func(val any) (string, error) {
		bs, err := Marshal(val)
		if err != nil {
			return "", err
		}
		return conv.Bytes2String(bs), nil
	}

	NewEncoder = func(w io.Writer) JSONEncoder {
		return json.NewEncoder(w)
	}
	NewDecoder = func(r io.Reader) JSONDecoder {
		return json.NewDecoder(r)
	}
)
