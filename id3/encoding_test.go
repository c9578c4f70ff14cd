package id3

import (
	"bytes"
	"testing"
)

const utf16Want = "Just a test: äüö 日本語"

var (
	utf16BEBytes = []byte{0, 74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97, 0, 32,
		0, 116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228, 0, 252, 0,
		246, 0, 32, 101, 229, 103, 44, 138, 158}
	utf16LEBytes = []byte{74, 0, 117, 0, 115, 0, 116, 0, 32, 0, 97, 0, 32, 0,
		116, 0, 101, 0, 115, 0, 116, 0, 58, 0, 32, 0, 228, 0, 252, 0, 246,
		0, 32, 0, 229, 101, 44, 103, 158, 138}

	isoBytes = []byte("Ein etwas k\xFCrzerer Text mit wenigen Umlauten: \xE4\xF6\xFC\xDF")
	isoWant  = "Ein etwas kürzerer Text mit wenigen Umlauten: äöüß"
)

func concatBytes(bs ...[]byte) []byte {
	var out []byte
	for _, b := range bs {
		out = append(out, b...)
	}
	return out
}

func TestDecodeTextFrame(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"iso", concatBytes([]byte{encISO88591}, isoBytes), isoWant},
		{"iso trailing nuls", concatBytes([]byte{encISO88591}, isoBytes, []byte{0, 0}), isoWant},
		{"utf16 be bom", concatBytes([]byte{encUTF16, 0xFE, 0xFF}, utf16BEBytes), utf16Want},
		{"utf16 le bom", concatBytes([]byte{encUTF16, 0xFF, 0xFE}, utf16LEBytes), utf16Want},
		{"utf16 no bom defaults le", concatBytes([]byte{encUTF16}, utf16LEBytes), utf16Want},
		{"utf16 doubled bom", concatBytes([]byte{encUTF16, 0xFF, 0xFE, 0xFF, 0xFE}, utf16LEBytes), utf16Want},
		{"utf16 trailing nul pair", concatBytes([]byte{encUTF16, 0xFE, 0xFF}, utf16BEBytes, []byte{0, 0}), utf16Want},
		{"utf16be no bom", concatBytes([]byte{encUTF16BE}, utf16BEBytes), utf16Want},
		{"utf8", concatBytes([]byte{encUTF8}, []byte(utf16Want)), utf16Want},
		{"utf8 invalid bytes", []byte{encUTF8, 'A', 0xFF, 'B'}, "A�B"},
		{"unknown indicator", concatBytes([]byte{0x09}, isoBytes), isoWant},
		{"missing indicator be bom", concatBytes([]byte{0xFE, 0xFF}, utf16BEBytes), utf16Want},
		{"missing indicator le bom", concatBytes([]byte{0xFF, 0xFE}, utf16LEBytes), utf16Want},
		{"empty", nil, ""},
	}

	for _, test := range tests {
		if got := decodeTextFrame(test.in); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestDecodeTextFrameMissingIndicatorNoBOM(t *testing.T) {
	// 0xFF first but no BOM pair: falls back to ISO-8859-1, where
	// 0xFF is ÿ.
	in := []byte{0xFF, 'a', 'b'}
	if got := decodeTextFrame(in); got != "ÿab" {
		t.Errorf("got %q, want %q", got, "ÿab")
	}
}

func TestEncodeTextFrameASCII(t *testing.T) {
	got := encodeTextFrame("Blue Train")
	want := append([]byte{encISO88591}, "Blue Train\x00"...)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeTextFrameUTF16(t *testing.T) {
	got := encodeTextFrame("Sigur Rós")
	if got[0] != encUTF16 {
		t.Fatalf("indicator = %#x, want %#x", got[0], encUTF16)
	}
	if got[1] != 0xFE || got[2] != 0xFF {
		t.Errorf("BOM = % x, want FE FF", got[1:3])
	}
	if got[len(got)-2] != 0 || got[len(got)-1] != 0 {
		t.Errorf("missing trailing NUL pair: % x", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain ascii",
		"Ein etwas kürzerer Text mit wenigen Umlauten: äöüß",
		"日本語のタイトル",
		"mixed ascii и кириллица",
	}

	for _, s := range tests {
		if got := decodeTextFrame(encodeTextFrame(s)); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func BenchmarkDecodeUTF16(b *testing.B) {
	data := concatBytes([]byte{encUTF16, 0xFE, 0xFF}, utf16BEBytes)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = decodeTextFrame(data)
	}
}

func BenchmarkDecodeISO88591(b *testing.B) {
	data := concatBytes([]byte{encISO88591}, isoBytes)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = decodeTextFrame(data)
	}
}
