// Package charset converts between raw terminal bytes and Go strings
// for the handful of encodings the command line accepts.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownCharset = errors.New("unknown charset")

var charsets = map[string]encoding.Encoding{ // nolint: gochecknoglobals
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

func Lookup(name string) (encoding.Encoding, error) {
	enc, ok := charsets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

func Decode(enc encoding.Encoding, raw []byte) (string, error) {
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode fails if the text holds a character the charset cannot represent.
func Encode(enc encoding.Encoding, text string) ([]byte, error) {
	encoded, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, err
	}
	return []byte(encoded), nil
}
