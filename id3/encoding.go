package id3

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encoding indicators defined by ID3v2.3.
const (
	encISO88591 byte = 0x00
	encUTF16    byte = 0x01
	encUTF16BE  byte = 0x02
	encUTF8     byte = 0x03
)

// decodeTextFrame decodes the data portion of a text frame: one
// encoding indicator byte followed by the encoded payload. Some
// taggers omit the indicator so that the data starts directly with a
// UTF-16 byte-order mark; that case is detected and decoded as such.
// Decoding never fails; invalid sequences come back as the Unicode
// replacement character. Trailing NULs are stripped.
func decodeTextFrame(data []byte) string {
	return strings.TrimRight(decodeTextPayload(data), "\x00")
}

func decodeTextPayload(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if data[0] == 0xFF || data[0] == 0xFE {
		// Indicator byte missing, the data opens with a BOM.
		if s, ok := decodeUTF16BOM(data); ok {
			return s
		}
		return decodeISO88591(data)
	}

	indicator, payload := data[0], data[1:]
	switch indicator {
	case encUTF16:
		if s, ok := decodeUTF16BOM(payload); ok {
			return s
		}
		return decodeUTF16(payload, unicode.LittleEndian)
	case encUTF16BE:
		return decodeUTF16(payload, unicode.BigEndian)
	case encUTF8:
		return strings.ToValidUTF8(string(payload), "�")
	default:
		// encISO88591, and unknown indicators are treated the same.
		return decodeISO88591(payload)
	}
}

// decodeUTF16BOM decodes UTF-16 data led by a byte-order mark. A
// duplicated BOM, another known tagger quirk, is skipped. ok is false
// when the data carries no BOM at all.
func decodeUTF16BOM(b []byte) (string, bool) {
	var endian unicode.Endianness
	switch {
	case len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE:
		endian = unicode.LittleEndian
	case len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF:
		endian = unicode.BigEndian
	default:
		return "", false
	}
	b = b[2:]
	if len(b) >= 2 && (b[0] == 0xFF && b[1] == 0xFE || b[0] == 0xFE && b[1] == 0xFF) {
		b = b[2:]
	}
	return decodeUTF16(b, endian), true
}

func decodeUTF16(b []byte, endian unicode.Endianness) string {
	out, _ := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	return string(out)
}

func decodeISO88591(b []byte) string {
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}

// encodeTextFrame encodes s as ID3v2.3 text frame data. Pure-ASCII
// strings become ISO-8859-1 with a single trailing NUL; everything
// else becomes UTF-16 with a big-endian BOM and a NUL pair. The
// returned bytes include the indicator and the terminator.
// Unrepresentable input is replaced, never an error.
func encodeTextFrame(s string) []byte {
	s = strings.ToValidUTF8(s, "�")

	if isASCII(s) {
		out := make([]byte, 0, len(s)+2)
		out = append(out, encISO88591)
		out = append(out, s...)
		return append(out, 0x00)
	}

	payload, _ := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	out := make([]byte, 0, len(payload)+3)
	out = append(out, encUTF16)
	out = append(out, payload...)
	return append(out, 0x00, 0x00)
}

// encodeISO88591 converts s to ISO-8859-1 bytes, substituting
// characters outside the charset.
func encodeISO88591(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
