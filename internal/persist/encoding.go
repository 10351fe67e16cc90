package persist

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ResolveEncoding looks up a character encoding by IANA name.
// Empty names and the UTF-8 aliases resolve to nil, meaning no
// transformation is applied.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// encodeWriter wraps w so that written UTF-8 text is converted to the
// named encoding.
func encodeWriter(w io.Writer, name string) (io.Writer, error) {
	enc, err := ResolveEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return w, nil
	}
	return enc.NewEncoder().Writer(w), nil
}

// decodeReader wraps r so that text in the named encoding is converted
// to UTF-8.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := ResolveEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return enc.NewDecoder().Reader(r), nil
}
