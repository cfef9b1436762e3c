package bytebuffer

import "github.com/pkg/errors"

// ReadBit reads the single bit at the current position, MSB first, and
// advances the position by 1. It returns 0 or 1, or ErrEOF at the end of the
// buffer.
func (c *Cursor) ReadBit() (byte, error) {
	if c.pos >= c.Len() {
		return 0, errors.Wrapf(ErrEOF, "position %v at the end of a %v bit buffer", c.pos, c.Len())
	}

	byteIndex, bitIndex := split(c.pos)
	bit, err := c.store.Bit(byteIndex, bitIndex)
	if err != nil {
		return 0, err
	}

	c.pos++
	return bit, nil
}

// ReadBool reads a single bit and returns it as a bool.
func (c *Cursor) ReadBool() (bool, error) {
	bit, err := c.ReadBit()
	return bit != 0, err
}

// ReadBits reads the next numBits (1 to 64) as an unsigned integer,
// accumulated MSB first, and advances the position by numBits as a single
// step.
//
// If fewer than numBits remain it fails with ErrEOF and the position does not
// change. Each bit independently derives its byte and bit index from the
// absolute offset, so ranges spanning byte boundaries need no special case.
func (c *Cursor) ReadBits(numBits uint) (uint64, error) {
	if numBits < 1 || numBits > 64 {
		return 0, errors.Wrapf(ErrInvalidWidth, "%v bits requested, supported widths are 1 to 64", numBits)
	}

	n := int(numBits)
	if c.pos+n > c.Len() {
		return 0, errors.Wrapf(ErrEOF, "%v bits requested with %v remaining", n, c.Remaining())
	}

	var v uint64
	for i := 0; i < n; i++ {
		bit, err := c.store.Bit(split(c.pos + i))
		if err != nil {
			return 0, err
		}
		v = v<<1 | uint64(bit)
	}

	c.pos += n
	return v, nil
}

// ReadUint8 reads numBits (1 to 8) as a uint8.
func (c *Cursor) ReadUint8(numBits uint) (uint8, error) {
	if numBits < 1 || numBits > 8 {
		return 0, errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint8", numBits)
	}

	v, err := c.ReadBits(numBits)
	return uint8(v), err
}

// ReadUint16 reads numBits (1 to 16) as a uint16.
func (c *Cursor) ReadUint16(numBits uint) (uint16, error) {
	if numBits < 1 || numBits > 16 {
		return 0, errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint16", numBits)
	}

	v, err := c.ReadBits(numBits)
	return uint16(v), err
}

// ReadUint32 reads numBits (1 to 32) as a uint32.
func (c *Cursor) ReadUint32(numBits uint) (uint32, error) {
	if numBits < 1 || numBits > 32 {
		return 0, errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint32", numBits)
	}

	v, err := c.ReadBits(numBits)
	return uint32(v), err
}

// ReadUint64 reads numBits (1 to 64) as a uint64.
func (c *Cursor) ReadUint64(numBits uint) (uint64, error) {
	return c.ReadBits(numBits)
}

// ReadByte reads the next 8 bits as a byte. Unlike ReadBits(8) it insists
// that the cursor sits on a byte boundary and fails with ErrMisaligned
// otherwise, so "byte" always means "8 bits starting at a byte boundary".
func (c *Cursor) ReadByte() (byte, error) {
	if !c.IsByteAligned() {
		_, bitIndex := split(c.pos)
		return 0, errors.Wrapf(ErrMisaligned, "cannot do a byte level read at bit %v of a byte", bitIndex)
	}

	v, err := c.ReadBits(8)
	return byte(v), err
}

// ReadBytes reads the next n bytes, committed atomically: either all n bytes
// are read and the position advances by n*8, or nothing changes. The cursor
// must be byte aligned.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidWidth, "%v bytes requested", n)
	}
	if !c.IsByteAligned() {
		_, bitIndex := split(c.pos)
		return nil, errors.Wrapf(ErrMisaligned, "cannot do a byte level read at bit %v of a byte", bitIndex)
	}
	if n*8 > c.Remaining() {
		return nil, errors.Wrapf(ErrEOF, "%v bytes requested with %v bits remaining", n, c.Remaining())
	}

	byteIndex, _ := split(c.pos)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := c.store.Byte(byteIndex + i)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}

	c.pos += n * 8
	return out, nil
}

// PeekBits reads numBits as ReadBits does, without advancing the position.
func (c *Cursor) PeekBits(numBits uint) (uint64, error) {
	cp := *c
	return cp.ReadBits(numBits)
}

// PeekByte reads the next aligned byte without advancing the position.
func (c *Cursor) PeekByte() (byte, error) {
	cp := *c
	return cp.ReadByte()
}
