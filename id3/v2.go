package id3

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// ReadV2 reads and decodes the ID3v2 tag at the start of the named
// file. ok is false when the file carries no readable tag; read
// failures of any kind count as absence, never as an error.
func (e Editor) ReadV2(path string) (*Tag, bool) {
	f, err := os.Open(path)
	if err != nil {
		e.Log.Println("id3v2 read:", err)
		return nil, false
	}
	defer f.Close()

	header := make([]byte, tagHeaderSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, false
	}
	if !bytes.Equal(header[:3], v2Magic) {
		return nil, false
	}

	size := desynchsafeBytes([4]byte{header[6], header[7], header[8], header[9]})
	body := make([]byte, size)
	if _, err := io.ReadFull(f, body); err != nil {
		e.Log.Println("id3v2 read: truncated tag body:", err)
		return nil, false
	}

	tag, ok := parseFrames(body)
	if !ok {
		e.Log.Println("id3v2 read: frame overruns tag body")
		return nil, false
	}
	return tag, true
}

// UpdateV2 merges attrs over fallback over the file's current text
// frames and rewrites the tag in place. Fallback values apply only to
// frame ids absent from attrs. Raw frames the update does not
// supersede are carried over byte-for-byte.
func (e Editor) UpdateV2(path string, attrs, fallback Attrs) error {
	merged := make(Attrs)
	raw := map[string]RawFrame{}
	if tag, ok := e.ReadV2(path); ok {
		for id, v := range tag.Fields {
			merged[id] = v
		}
		raw = tag.Raw
	}
	for id, v := range fallback {
		if _, ok := attrs[id]; !ok {
			merged[id] = v
		}
	}
	for id, v := range attrs {
		merged[id] = v
	}
	return e.writeV2(path, merged, raw)
}

// writeV2 splices a freshly built tag in front of the file's audio
// data and atomically replaces the file. When the existing tag's
// declared size points past the end of the file, the audio start is
// recovered by scanning for an MPEG frame sync; if none is found the
// write is aborted and the file left untouched.
func (e Editor) writeV2(path string, fields Attrs, raw map[string]RawFrame) error {
	tagBytes, err := buildTag(fields, raw)
	if err != nil {
		return err
	}

	orig, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	audio := orig
	if len(orig) >= tagHeaderSize && bytes.Equal(orig[:3], v2Magic) {
		declared := tagHeaderSize + int(desynchsafeBytes([4]byte{orig[6], orig[7], orig[8], orig[9]}))
		start := declared
		if declared > len(orig) {
			e.Log.Println("id3v2 write: declared tag size", declared, "exceeds file size", len(orig), "- scanning for audio")
			start = findAudioStart(orig, tagHeaderSize)
			if start < 0 {
				return AudioNotFoundError{Declared: declared, FileSize: len(orig)}
			}
			e.Log.Println("id3v2 write: audio recovered at offset", start)
		}
		audio = orig[start:]
	}

	out := make([]byte, 0, len(tagBytes)+len(audio))
	out = append(out, tagBytes...)
	out = append(out, audio...)
	return replaceFile(path, out)
}

// replaceFile swaps in new contents via a temp file in the same
// directory so the target is never observed half-written.
func replaceFile(path string, data []byte) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Chmod(name, mode); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
