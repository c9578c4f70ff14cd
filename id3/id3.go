package id3

import (
	"errors"
	"fmt"
	"log"
)

const (
	tagHeaderSize   = 10
	frameHeaderSize = 10
)

var v2Magic = []byte("ID3")

// Attrs is a set of pending text-frame values keyed by frame id,
// e.g. "TPE1" or "TALB". It is consumed by a single update call and
// never stored.
type Attrs map[string]string

// RawFrame is a frame kept as an opaque blob: either a non-text frame
// or a text frame that decoded to nothing. It is written back
// byte-identical to how it was read.
type RawFrame struct {
	Flags [2]byte
	Data  []byte
}

// Tag is the decoded form of an ID3v2.3 tag: text frames by id, plus
// every other frame preserved verbatim.
type Tag struct {
	Fields map[string]string
	Raw    map[string]RawFrame
}

// NewTag returns an empty tag.
func NewTag() *Tag {
	return &Tag{
		Fields: make(map[string]string),
		Raw:    make(map[string]RawFrame),
	}
}

// LogFlag enables logging of codec details when true.
type LogFlag bool

func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

// Editor performs tag operations on files. The zero value is ready to
// use and silent; set Log to get a trace of what reads and writes
// decide.
type Editor struct {
	Log LogFlag
}

// ErrNothingToWrite is returned by updates that would produce a tag
// with no frames at all.
var ErrNothingToWrite = errors.New("id3: no frames to write")

// AudioNotFoundError is returned when the tag on disk declares a size
// past the end of the file and no MPEG frame sync pattern could be
// located. Writing anyway could truncate audio data, so the file is
// left unmodified.
type AudioNotFoundError struct {
	Declared int
	FileSize int
}

func (e AudioNotFoundError) Error() string {
	return fmt.Sprintf("id3: declared tag size %d exceeds file size %d and no MPEG sync pattern found", e.Declared, e.FileSize)
}

var frameNames = map[string]string{
	"APIC": "Attached picture",
	"COMM": "Comments",
	"MCDI": "Music CD identifier",
	"PRIV": "Private frame",
	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDRC": "Recording time",
	"TENC": "Encoded by",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TOPE": "Original artist(s)/performer(s)",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPOS": "Part of a set",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TXXX": "User defined text information frame",
	"TYER": "Year",
	"UFID": "Unique file identifier",
	"USLT": "Unsynchronised lyric/text transcription",
	"WXXX": "User defined URL link frame",
}

// FrameName returns a human-readable description for well-known frame
// ids, and the id itself for everything else.
func FrameName(id string) string {
	if v, ok := frameNames[id]; ok {
		return v
	}
	return id
}
