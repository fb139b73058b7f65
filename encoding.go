package inifile

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported text codecs. The codec is an injected dependency of the handle;
// any encoding.Encoding works. ShiftJIS is the default, matching the legacy
// files this package is typically pointed at.
var (
	ShiftJIS encoding.Encoding = japanese.ShiftJIS
	UTF8     encoding.Encoding = unicode.UTF8
)

func defaultEncoding(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return ShiftJIS
	}

	return enc
}

// decodeText converts raw file bytes into UTF-8 text.
func decodeText(raw []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode config: %w", err)
	}

	return string(out), nil
}

// encodeText converts UTF-8 text into the file's byte encoding.
func encodeText(text string, enc encoding.Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return out, nil
}
