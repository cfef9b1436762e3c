package bytebuffer

// BitReader is similar to io.Reader, but it allows reading amounts of data
// less than a single byte.
type BitReader interface {
	ReadBit() (byte, error)
	ReadBool() (bool, error)
	ReadBits(numBits uint) (uint64, error)
	ReadUint8(numBits uint) (uint8, error)
	ReadUint16(numBits uint) (uint16, error)
	ReadUint32(numBits uint) (uint32, error)
	ReadUint64(numBits uint) (uint64, error)
	ReadByte() (byte, error)
	ReadBytes(n int) ([]byte, error)
	PeekBits(numBits uint) (uint64, error)
	PeekByte() (byte, error)
}

// BitWriter is similar to io.Writer, but it allows writing amounts of data
// less than a single byte.
type BitWriter interface {
	WriteBit(bit byte) error
	WriteBool(b bool) error
	WriteBits(v uint64, numBits uint) error
	WriteUint8(v uint8, numBits uint) error
	WriteUint16(v uint16, numBits uint) error
	WriteUint32(v uint32, numBits uint) error
	WriteUint64(v uint64, numBits uint) error
	WriteByte(b byte) error
	WriteBytes(p []byte) error
}

// Seeker repositions a cursor in bit or byte units relative to the start, the
// current position, or the end of the buffer. The whence values are the
// io.SeekStart, io.SeekCurrent and io.SeekEnd constants.
type Seeker interface {
	Seek(offsetBits int64, whence int) (int64, error)
	SeekBits(offsetBits int64, whence int) (int64, error)
	SeekBytes(offsetBytes int64, whence int) (int64, error)
}

// A fixed cursor is used through BitReader and Seeker; a growable cursor adds
// BitWriter. *Cursor satisfies all three.
