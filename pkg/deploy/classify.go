package deploy

import "unicode/utf8"

// Kind tells the two classification outcomes apart
type Kind int

const (
	// KindText means the bytes decoded as UTF-8
	KindText Kind = iota
	// KindBinary means decoding failed; the bytes are copied untouched
	KindBinary
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Content is the result of one decode attempt. Exactly one of Text or Bytes
// is meaningful, selected by Kind.
type Content struct {
	Kind  Kind
	Text  string
	Bytes []byte
}

// Classify attempts to decode data as UTF-8.
//
// The check is purely on decodability: binary data that happens to be valid
// UTF-8 is reported as text.
func Classify(data []byte) Content {
	if utf8.Valid(data) {
		return Content{Kind: KindText, Text: string(data)}
	}
	return Content{Kind: KindBinary, Bytes: data}
}
