package conv

import "unsafe"

// Bytes2String reinterprets bs as a string without copying.
// The caller must not mutate bs afterwards.
func Bytes2String(bs []byte) string {
	return unsafe.String(unsafe.SliceData(bs), len(bs))
}

// String2Bytes reinterprets s as a byte slice without copying.
// The result is read-only.
func String2Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
