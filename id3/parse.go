package id3

import "encoding/binary"

// parseFrames walks the frame sequence of a v2.3 tag body. Text
// frames (id starting with 'T') are decoded into Fields; non-text
// frames and text frames that decode to nothing are preserved
// verbatim in Raw. A frame whose size overruns the body makes the
// whole tag count as absent, so ok is false rather than a partial
// result.
func parseFrames(body []byte) (tag *Tag, ok bool) {
	tag = NewTag()
	pos := 0
	for pos+frameHeaderSize <= len(body) {
		if body[pos] == 0 {
			// Padding reached.
			break
		}

		id := string(body[pos : pos+4])
		size := int(binary.BigEndian.Uint32(body[pos+4 : pos+8]))
		var flags [2]byte
		copy(flags[:], body[pos+8:pos+10])
		pos += frameHeaderSize

		if size < 0 || size > len(body)-pos {
			return nil, false
		}
		data := body[pos : pos+size]
		pos += size

		if id[0] == 'T' && len(data) > 1 {
			if text := decodeTextFrame(data); text != "" {
				tag.Fields[id] = text
				continue
			}
		}
		tag.Raw[id] = RawFrame{
			Flags: flags,
			Data:  append([]byte(nil), data...),
		}
	}
	return tag, true
}
