package bytebuffer

// split derives the byte index and the bit-within-byte index addressed by an
// absolute bit offset. Bit indices count from the most significant bit of the
// byte, so bit 0 of byte 0 is the very first bit of the buffer.
func split(offset int) (byteIndex, bitIndex int) {
	return offset / 8, offset % 8
}

// join combines a byte index and a bit count into an absolute bit offset.
// bitIndex values of 8 or more are valid inputs and simply fold over into the
// byte index, which is what makes it usable for combining counts.
func join(byteIndex, bitIndex int) int {
	return byteIndex*8 + bitIndex
}
