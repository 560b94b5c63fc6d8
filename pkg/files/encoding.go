// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the character encoding of file content.
// Only encodings that can be recognized from content are supported.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding looks at the byte order mark; content without one is UTF-8.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF8BOM:
		return "UTF-8 with BOM"
	case EncodingUTF16LE:
		return "UTF-16LE"
	case EncodingUTF16BE:
		return "UTF-16BE"
	default:
		return "unknown"
	}
}

// Decode returns text without byte order mark.
func (e Encoding) Decode(data []byte) (string, error) {
	if e == EncodingUTF8 {
		// invalid UTF-8 is left for the YAML parser to report
		return string(data), nil
	}

	enc, err := e.encoding()
	if err != nil {
		return "", err
	}

	result, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("Decoding %s content: %s", e, err)
	}

	return string(result), nil
}

// Encode returns text encoded with the byte order mark (if any) restored.
func (e Encoding) Encode(text string) ([]byte, error) {
	if e == EncodingUTF8 {
		return []byte(text), nil
	}

	enc, err := e.encoding()
	if err != nil {
		return nil, err
	}

	result, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("Encoding %s content: %s", e, err)
	}

	return result, nil
}

func (e Encoding) encoding() (encoding.Encoding, error) {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM, nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	default:
		return nil, fmt.Errorf("Unknown encoding %d", e)
	}
}
