package id3

// syncScanWindow bounds the search for an MPEG frame header so that a
// degenerate size field on a large file cannot trigger a scan of the
// whole thing.
const syncScanWindow = 1 << 20

// findAudioStart returns the offset of the first MPEG frame sync
// pattern (a 0xFF byte followed by a byte with the top three bits
// set) at or after start, requiring at least one more byte after the
// pair. It returns -1 when no match occurs within the scan window.
func findAudioStart(data []byte, start int) int {
	end := start + syncScanWindow
	if end > len(data) {
		end = len(data)
	}
	for i := start; i+2 < end; i++ {
		if data[i] == 0xFF && data[i+1]&0xE0 == 0xE0 {
			return i
		}
	}
	return -1
}
