package id3

import (
	"encoding/binary"
	"sort"
)

// compatOrder is the frame order the Windows Explorer details pane is
// known to be sensitive to. Frames outside this list follow sorted by
// id, which also keeps repeated identical updates byte-identical.
var compatOrder = []string{"TPE1", "TIT2", "TALB", "TYER", "TDRC", "TRCK", "TCON", "TPE2"}

// buildTag serializes the merged text fields plus the carried-over
// raw frames into a complete v2.3 tag, header included. A raw frame
// whose id was emitted as a text frame is superseded and dropped.
// Fields with empty values are not emitted; an entirely empty frame
// set is ErrNothingToWrite.
func buildTag(fields Attrs, raw map[string]RawFrame) ([]byte, error) {
	merged := make(Attrs, len(fields)+1)
	for id, v := range fields {
		merged[id] = v
	}
	// The album-artist frame mirrors the artist.
	if merged["TPE1"] != "" {
		merged["TPE2"] = merged["TPE1"]
	}

	emitted := make(map[string]bool, len(merged))
	var order []string
	for _, id := range compatOrder {
		if merged[id] != "" {
			order = append(order, id)
			emitted[id] = true
		}
	}
	var rest []string
	for id, v := range merged {
		if v != "" && !emitted[id] {
			rest = append(rest, id)
			emitted[id] = true
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	var frames []byte
	for _, id := range order {
		frames = append(frames, encodeFrame(id, encodeTextFrame(merged[id]), [2]byte{})...)
	}

	rawIDs := make([]string, 0, len(raw))
	for id := range raw {
		if !emitted[id] {
			rawIDs = append(rawIDs, id)
		}
	}
	sort.Strings(rawIDs)
	for _, id := range rawIDs {
		f := raw[id]
		frames = append(frames, encodeFrame(id, f.Data, f.Flags)...)
	}

	if len(frames) == 0 {
		return nil, ErrNothingToWrite
	}

	out := make([]byte, 0, tagHeaderSize+len(frames))
	out = append(out, 'I', 'D', '3', 3, 0, 0x00)
	size := synchsafeBytes(uint32(len(frames)))
	out = append(out, size[:]...)
	return append(out, frames...), nil
}

func encodeFrame(id string, data []byte, flags [2]byte) []byte {
	out := make([]byte, frameHeaderSize, frameHeaderSize+len(data))
	copy(out, id)
	binary.BigEndian.PutUint32(out[4:8], uint32(len(data)))
	out[8], out[9] = flags[0], flags[1]
	return append(out, data...)
}
