package id3

// A synchsafe integer carries 28 significant bits across four bytes,
// seven per byte with the top bit clear, so a size field can never
// contain a byte sequence that looks like an MPEG frame sync.

// synchsafeBytes encodes n, which must fit in 28 bits, most
// significant group first.
func synchsafeBytes(n uint32) [4]byte {
	return [4]byte{
		byte(n >> 21 & 0x7f),
		byte(n >> 14 & 0x7f),
		byte(n >> 7 & 0x7f),
		byte(n & 0x7f),
	}
}

// desynchsafeBytes reads the low seven bits of each byte.
func desynchsafeBytes(b [4]byte) uint32 {
	return uint32(b[0]&0x7f)<<21 |
		uint32(b[1]&0x7f)<<14 |
		uint32(b[2]&0x7f)<<7 |
		uint32(b[3]&0x7f)
}
