package id3

import (
	"bytes"
	"os"
	"strings"
)

const v1TagSize = 128

var v1Magic = []byte("TAG")

// V1Tag is the fixed-width record stored in the last 128 bytes of the
// file. Year holds the four ASCII characters as written. Track and
// Genre are clamped to [0,255] when written; genre 255 means unset.
type V1Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment string
	Track   int
	Genre   int
}

// ReadV1 reads the trailing 128-byte record. ok is false when the
// file is shorter than 128 bytes or does not end in a TAG marker.
func (e Editor) ReadV1(path string) (*V1Tag, bool) {
	f, err := os.Open(path)
	if err != nil {
		e.Log.Println("id3v1 read:", err)
		return nil, false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.Size() < v1TagSize {
		return nil, false
	}
	block := make([]byte, v1TagSize)
	if _, err := f.ReadAt(block, fi.Size()-v1TagSize); err != nil {
		return nil, false
	}
	return parseV1(block)
}

func parseV1(block []byte) (*V1Tag, bool) {
	if !bytes.Equal(block[:3], v1Magic) {
		return nil, false
	}

	t := &V1Tag{
		Title:  trimV1(block[3:33]),
		Artist: trimV1(block[33:63]),
		Album:  trimV1(block[63:93]),
		Year:   trimV1(block[93:97]),
		Genre:  int(block[127]),
	}

	// The v1.1 convention: a NUL at byte 28 of the comment region
	// marks byte 29 as a binary track number.
	comment := block[97:127]
	if comment[28] == 0 {
		t.Comment = trimV1(comment[:28])
		t.Track = int(comment[29])
	} else {
		t.Comment = trimV1(comment)
	}
	return t, true
}

func trimV1(b []byte) string {
	return strings.Trim(decodeISO88591(b), "\x00 ")
}

// UpdateV1 merges defaults, fallback, the existing record and attrs,
// in that order with later layers winning, then rewrites the trailing
// block. A field only participates in a layer when it is set:
// non-empty for strings, positive for Track, and neither 0 nor the
// unset value 255 for Genre.
func (e Editor) UpdateV1(path string, attrs, fallback V1Tag) error {
	rec := V1Tag{Year: "0000", Genre: 255}
	rec.layer(fallback)
	if existing, ok := e.ReadV1(path); ok {
		rec.layer(*existing)
	}
	rec.layer(attrs)
	return e.writeV1(path, rec)
}

func (t *V1Tag) layer(src V1Tag) {
	if src.Title != "" {
		t.Title = src.Title
	}
	if src.Artist != "" {
		t.Artist = src.Artist
	}
	if src.Album != "" {
		t.Album = src.Album
	}
	if src.Year != "" {
		t.Year = src.Year
	}
	if src.Comment != "" {
		t.Comment = src.Comment
	}
	if src.Track > 0 {
		t.Track = src.Track
	}
	if src.Genre > 0 && src.Genre != 255 {
		t.Genre = src.Genre
	}
}

// writeV1 serializes rec into the fixed 128-byte layout and writes it
// over an existing trailing tag, or appends one when the file has
// none. Bytes before the trailing block are never touched.
func (e Editor) writeV1(path string, rec V1Tag) error {
	block := make([]byte, v1TagSize)
	copy(block, v1Magic)
	copyPadded(block[3:33], rec.Title)
	copyPadded(block[33:63], rec.Artist)
	copyPadded(block[63:93], rec.Album)
	copyPadded(block[93:97], rec.Year)
	copyPadded(block[97:125], rec.Comment)
	block[125] = 0
	block[126] = clampByte(rec.Track)
	block[127] = clampByte(rec.Genre)

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	offset := fi.Size()
	if fi.Size() >= v1TagSize {
		marker := make([]byte, 3)
		if _, err := f.ReadAt(marker, fi.Size()-v1TagSize); err == nil && bytes.Equal(marker, v1Magic) {
			offset = fi.Size() - v1TagSize
		}
	}

	_, err = f.WriteAt(block, offset)
	return err
}

// copyPadded truncates s to the destination width; dst is zeroed, so
// shorter values come out NUL-padded.
func copyPadded(dst []byte, s string) {
	copy(dst, encodeISO88591(s))
}

func clampByte(n int) byte {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return byte(n)
}
