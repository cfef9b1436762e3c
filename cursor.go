package bytebuffer

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bbaldino/bytebuffer/bitstore"
)

// Cursor couples an owned byte store with a single position measured in bits.
//
// The position is the only mutable bit-level state; the byte index and the
// bit-within-byte index are derived from it on every access and are never
// stored. The invariant 0 <= Pos() <= Len() holds at all times.
//
// A Cursor is a plain in-memory value with no internal synchronization. If
// multiple goroutines must share one, the caller is responsible for mutual
// exclusion.
type Cursor struct {
	store    *bitstore.Store
	pos      int // absolute bit offset
	growable bool
}

// NewCursor returns a fixed-capacity cursor over the passed bytes, positioned
// at bit 0. The cursor takes ownership of the slice; writes within the
// existing length are allowed but the buffer will never grow.
func NewCursor(data []byte) *Cursor {
	return &Cursor{
		store: bitstore.NewSlice(data),
	}
}

// NewGrowableCursor returns an empty cursor that grows by appending zero
// bytes as sequential writes run past the current end.
func NewGrowableCursor() *Cursor {
	return &Cursor{
		store:    bitstore.Empty(),
		growable: true,
	}
}

// NewAppendCursor returns a growable cursor over the passed bytes, positioned
// at the end so the existing content is preserved and writes append after it.
func NewAppendCursor(data []byte) *Cursor {
	s := bitstore.NewSlice(data)
	return &Cursor{
		store:    s,
		pos:      s.LenBits(),
		growable: true,
	}
}

// Pos returns the current position of the cursor, in bits.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total size of the underlying buffer, in bits.
func (c *Cursor) Len() int { return c.store.LenBits() }

// Remaining returns the number of bits between the current position and the
// end of the buffer.
func (c *Cursor) Remaining() int { return c.Len() - c.pos }

// IsByteAligned reports whether the cursor sits on a byte boundary.
func (c *Cursor) IsByteAligned() bool {
	_, bitIndex := split(c.pos)
	return bitIndex == 0
}

// Growable reports whether writes past the current end append new bytes.
func (c *Cursor) Growable() bool { return c.growable }

// Bytes returns the underlying byte slice of the cursor. The slice is shared
// with the cursor, not copied.
func (c *Cursor) Bytes() []byte { return c.store.Bytes() }

// Take finalizes a write session: it returns ownership of the underlying
// bytes and leaves the cursor as an empty fixed buffer.
func (c *Cursor) Take() []byte {
	b := c.store.Bytes()

	c.store = bitstore.Empty()
	c.pos = 0
	c.growable = false

	if logging {
		logger.Info("storage taken from cursor",
			zap.String("module", "cursor"),
			zap.Int("bytes", len(b)),
		)
	}

	return b
}

// Seek sets the position of the cursor to offsetBits relative to whence,
// which is one of io.SeekStart, io.SeekCurrent or io.SeekEnd. It returns the
// new position in bits.
//
// A target outside [0, Len()] fails with ErrInvalidSeek and leaves the
// position unchanged. Growable cursors never grow on seek; growth happens
// only through sequential writes at the current end.
func (c *Cursor) Seek(offsetBits int64, whence int) (int64, error) {
	var base int64

	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(c.pos)
	case io.SeekEnd:
		base = int64(c.Len())
	default:
		return int64(c.pos), errors.Wrapf(ErrInvalidSeek, "unknown whence %v", whence)
	}

	target := base + offsetBits
	if target < 0 || target > int64(c.Len()) {
		return int64(c.pos), errors.Wrapf(ErrInvalidSeek, "target %v outside [0, %v]", target, c.Len())
	}

	c.pos = int(target)
	return target, nil
}

// SeekBits is Seek under its bit-granularity name, for symmetry with
// SeekBytes.
func (c *Cursor) SeekBits(offsetBits int64, whence int) (int64, error) {
	return c.Seek(offsetBits, whence)
}

// SeekBytes seeks by whole bytes, routing through the same validated Seek.
// The returned position is still in bits.
func (c *Cursor) SeekBytes(offsetBytes int64, whence int) (int64, error) {
	return c.Seek(offsetBytes*8, whence)
}
