package bytebuffer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ensureBits makes room for numBits at the current position. When the cursor
// is growable the shortfall is covered by appending whole zero bytes;
// otherwise the write fails with ErrOutOfBounds. Growth only happens once the
// whole write is guaranteed to succeed, so a failed write never leaves
// partially grown storage behind.
func (c *Cursor) ensureBits(numBits int) error {
	shortfall := c.pos + numBits - c.Len()
	if shortfall <= 0 {
		return nil
	}

	if !c.growable {
		return errors.Wrapf(ErrOutOfBounds, "%v bits needed past the end of a fixed %v bit buffer", shortfall, c.Len())
	}

	grow := (shortfall + 7) / 8
	for i := 0; i < grow; i++ {
		c.store.AppendZeroByte()
	}

	if logging {
		logger.Info("buffer grown",
			zap.String("module", "cursor"),
			zap.Int("appendedbytes", grow),
			zap.Int("lenbits", c.Len()),
		)
	}

	return nil
}

// WriteBit writes a single bit at the current position and advances the
// position by 1. A zero value clears the bit, any other value sets it. At the
// end of the buffer the write succeeds only on a growable cursor.
func (c *Cursor) WriteBit(bit byte) error {
	if err := c.ensureBits(1); err != nil {
		return err
	}

	byteIndex, bitIndex := split(c.pos)
	if err := c.store.SetBit(byteIndex, bitIndex, bit); err != nil {
		return err
	}

	c.pos++
	return nil
}

// WriteBool writes a single bit, 1 for true and 0 for false.
func (c *Cursor) WriteBool(b bool) error {
	if b {
		return c.WriteBit(1)
	}
	return c.WriteBit(0)
}

// WriteBits writes the low-order numBits (1 to 64) of v, MSB first, and
// advances the position by numBits as a single step. Either the whole write
// succeeds or nothing changes.
func (c *Cursor) WriteBits(v uint64, numBits uint) error {
	if numBits < 1 || numBits > 64 {
		return errors.Wrapf(ErrInvalidWidth, "%v bits requested, supported widths are 1 to 64", numBits)
	}

	n := int(numBits)
	if err := c.ensureBits(n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		bit := byte(v>>uint(n-1-i)) & 1
		byteIndex, bitIndex := split(c.pos + i)
		if err := c.store.SetBit(byteIndex, bitIndex, bit); err != nil {
			return err
		}
	}

	c.pos += n
	return nil
}

// WriteUint8 writes the low-order numBits (1 to 8) of v.
func (c *Cursor) WriteUint8(v uint8, numBits uint) error {
	if numBits < 1 || numBits > 8 {
		return errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint8", numBits)
	}
	return c.WriteBits(uint64(v), numBits)
}

// WriteUint16 writes the low-order numBits (1 to 16) of v.
func (c *Cursor) WriteUint16(v uint16, numBits uint) error {
	if numBits < 1 || numBits > 16 {
		return errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint16", numBits)
	}
	return c.WriteBits(uint64(v), numBits)
}

// WriteUint32 writes the low-order numBits (1 to 32) of v.
func (c *Cursor) WriteUint32(v uint32, numBits uint) error {
	if numBits < 1 || numBits > 32 {
		return errors.Wrapf(ErrInvalidWidth, "%v bits requested for a uint32", numBits)
	}
	return c.WriteBits(uint64(v), numBits)
}

// WriteUint64 writes the low-order numBits (1 to 64) of v.
func (c *Cursor) WriteUint64(v uint64, numBits uint) error {
	return c.WriteBits(v, numBits)
}

// WriteByte writes b as 8 bits starting at a byte boundary. It fails with
// ErrMisaligned when the cursor sits inside a byte, mirroring ReadByte.
func (c *Cursor) WriteByte(b byte) error {
	if !c.IsByteAligned() {
		_, bitIndex := split(c.pos)
		return errors.Wrapf(ErrMisaligned, "cannot do a byte level write at bit %v of a byte", bitIndex)
	}
	return c.WriteBits(uint64(b), 8)
}

// WriteBytes writes all of p, committed atomically: bounds and growth are
// validated up front, so either every byte lands and the position advances by
// len(p)*8, or nothing changes. The cursor must be byte aligned.
func (c *Cursor) WriteBytes(p []byte) error {
	if !c.IsByteAligned() {
		_, bitIndex := split(c.pos)
		return errors.Wrapf(ErrMisaligned, "cannot do a byte level write at bit %v of a byte", bitIndex)
	}
	if err := c.ensureBits(len(p) * 8); err != nil {
		return err
	}

	byteIndex, _ := split(c.pos)
	for i, b := range p {
		if err := c.store.SetByte(byteIndex+i, b); err != nil {
			return err
		}
	}

	c.pos += len(p) * 8
	return nil
}
