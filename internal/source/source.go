// Package source reads program text for the interpreter, detecting the
// source file's byte-order mark so UTF-8, UTF-16LE, and UTF-16BE scripts
// all decode to the UTF-8 string the lexer expects. Adapted from the
// teacher's detectAndDecodeFile.
package source

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads path and decodes it to a UTF-8 string, detecting a
// leading BOM for UTF-8, UTF-16LE, or UTF-16BE. A file with no BOM is
// taken as UTF-8 when it is valid UTF-8, and as Latin-1 otherwise.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data)
}

// Decode applies the same BOM detection as ReadFile to an in-memory
// buffer.
func Decode(data []byte) (string, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Fallback: treat as Latin-1 bytes and promote to runes.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()

	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}

	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}
	result := string(utf8Data)
	result = string(bytes.TrimPrefix([]byte(result), []byte{0xEF, 0xBB, 0xBF}))
	return result, nil
}
