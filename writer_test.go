package bytebuffer

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

// writing every byte of a sequence through the bit API and finalizing must
// reproduce the sequence bit for bit
func TestWriteRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xff},
		{0xde, 0xad, 0xbe, 0xef},
		{0x01, 0x80, 0x7f, 0xaa, 0x55},
	}

	for _, data := range cases {
		c := NewGrowableCursor()

		for _, b := range data {
			if err := c.WriteUint8(b, 8); err != nil {
				t.Error(err)
				return
			}
		}

		if got := c.Take(); !bytes.Equal(got, data) {
			t.Errorf("expected % x, got % x", data, got)
		}
	}
}

func TestWriteBitsPattern(t *testing.T) {
	c := NewGrowableCursor()

	writes := []struct {
		v       uint64
		numBits uint
	}{
		{0x08, 4},
		{0x07, 3},
		{0x05, 3},
		{0x15, 6},
	}

	for _, w := range writes {
		if err := c.WriteBits(w.v, w.numBits); err != nil {
			t.Error(err)
			return
		}
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0x8f, 0x55}) {
		t.Errorf("expected [8f 55], got % x", got)
	}
}

func TestWriteBitGrowth(t *testing.T) {
	c := NewGrowableCursor()

	// 9 set bits force the buffer across a byte boundary
	for i := 0; i < 9; i++ {
		if err := c.WriteBit(1); err != nil {
			t.Error(err)
			return
		}
	}

	if c.Len() != 16 {
		t.Errorf("expected 16 bits of storage, got %v", c.Len())
	}
	if c.Pos() != 9 {
		t.Errorf("expected position 9, got %v", c.Pos())
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0xff, 0x80}) {
		t.Errorf("expected [ff 80], got % x", got)
	}
}

func TestWriteBitClearsAndSets(t *testing.T) {
	c := NewCursor([]byte{0x0f})

	if err := c.WriteBit(1); err != nil {
		t.Error(err)
		return
	}
	if _, err := c.Seek(4, io.SeekStart); err != nil {
		t.Error(err)
		return
	}
	if err := c.WriteBit(0); err != nil {
		t.Error(err)
		return
	}

	if got := c.Bytes()[0]; got != 0x87 {
		t.Errorf("expected 0x87, got %#x", got)
	}
}

func TestFixedCursorDoesNotGrow(t *testing.T) {
	c := NewCursor([]byte{0x00})

	if _, err := c.Seek(0, io.SeekEnd); err != nil {
		t.Error(err)
		return
	}

	if err := c.WriteBit(1); errors.Cause(err) != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("fixed buffer grew to %v bits", c.Len())
	}
}

// a write that cannot fully fit leaves both position and storage untouched
func TestWriteAllOrNothing(t *testing.T) {
	c := NewCursor([]byte{0xab})

	if _, err := c.Seek(4, io.SeekStart); err != nil {
		t.Error(err)
		return
	}

	if err := c.WriteBits(0xff, 8); errors.Cause(err) != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if c.Pos() != 4 {
		t.Errorf("position changed on a failed write: %v", c.Pos())
	}
	if c.Bytes()[0] != 0xab {
		t.Errorf("storage mutated on a failed write: %#x", c.Bytes()[0])
	}
}

func TestWriteBitsAcrossByteBoundary(t *testing.T) {
	c := NewGrowableCursor()

	if err := c.WriteBits(0x0, 7); err != nil {
		t.Error(err)
		return
	}
	if err := c.WriteBits(0x3, 2); err != nil {
		t.Error(err)
		return
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0x01, 0x80}) {
		t.Errorf("expected [01 80], got % x", got)
	}
}

func TestWriteWidthValidation(t *testing.T) {
	cases := []struct {
		name string
		op   func(c *Cursor) error
	}{
		{"WriteBits(0)", func(c *Cursor) error { return c.WriteBits(0, 0) }},
		{"WriteBits(65)", func(c *Cursor) error { return c.WriteBits(0, 65) }},
		{"WriteUint8(9)", func(c *Cursor) error { return c.WriteUint8(0, 9) }},
		{"WriteUint16(17)", func(c *Cursor) error { return c.WriteUint16(0, 17) }},
		{"WriteUint32(33)", func(c *Cursor) error { return c.WriteUint32(0, 33) }},
		{"WriteUint64(0)", func(c *Cursor) error { return c.WriteUint64(0, 0) }},
	}

	for _, cs := range cases {
		c := NewGrowableCursor()

		if err := cs.op(c); errors.Cause(err) != ErrInvalidWidth {
			t.Errorf("%v: expected ErrInvalidWidth, got %v", cs.name, err)
		}
		if c.Len() != 0 {
			t.Errorf("%v: buffer grew on a rejected width", cs.name)
		}
	}
}

func TestWriteByteAlignment(t *testing.T) {
	c := NewGrowableCursor()

	if err := c.WriteBits(0x1, 1); err != nil {
		t.Error(err)
		return
	}

	if err := c.WriteByte(0xff); errors.Cause(err) != ErrMisaligned {
		t.Errorf("expected ErrMisaligned, got %v", err)
	}
	if err := c.WriteBytes([]byte{1, 2}); errors.Cause(err) != ErrMisaligned {
		t.Errorf("expected ErrMisaligned, got %v", err)
	}
	if c.Pos() != 1 {
		t.Errorf("position changed on a misaligned write: %v", c.Pos())
	}
}

func TestWriteBytes(t *testing.T) {
	c := NewGrowableCursor()

	if err := c.WriteBytes([]byte{0xca, 0xfe}); err != nil {
		t.Error(err)
		return
	}
	if c.Pos() != 16 {
		t.Errorf("expected position 16, got %v", c.Pos())
	}

	// overwrite in place within the existing length
	if _, err := c.Seek(8, io.SeekStart); err != nil {
		t.Error(err)
		return
	}
	if err := c.WriteBytes([]byte{0xba, 0xbe}); err != nil {
		t.Error(err)
		return
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0xca, 0xba, 0xbe}) {
		t.Errorf("expected [ca ba be], got % x", got)
	}
}

func TestWriteBytesFixedOverflow(t *testing.T) {
	c := NewCursor(make([]byte, 2))

	if err := c.WriteBytes([]byte{1, 2, 3}); errors.Cause(err) != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if c.Pos() != 0 {
		t.Errorf("position changed on a failed write: %v", c.Pos())
	}
	if c.Bytes()[0] != 0 || c.Bytes()[1] != 0 {
		t.Errorf("storage mutated on a failed write: % x", c.Bytes())
	}
}

func TestAppendCursor(t *testing.T) {
	c := NewAppendCursor([]byte{0xff})

	if err := c.WriteUint8(0x0f, 8); err != nil {
		t.Error(err)
		return
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0xff, 0x0f}) {
		t.Errorf("expected [ff 0f], got % x", got)
	}
}

func TestWriteBool(t *testing.T) {
	c := NewGrowableCursor()

	values := []bool{true, false, true, true, false, false, true, false}
	for _, v := range values {
		if err := c.WriteBool(v); err != nil {
			t.Error(err)
			return
		}
	}

	got := c.Take()
	if !bytes.Equal(got, []byte{0xb2}) { // 0b1011_0010
		t.Errorf("expected [b2], got % x", got)
	}
}

func TestWriteReadMixed(t *testing.T) {
	w := NewGrowableCursor()

	if err := w.WriteBits(0x9, 4); err != nil {
		t.Error(err)
		return
	}
	if err := w.WriteBool(true); err != nil {
		t.Error(err)
		return
	}
	if err := w.WriteBits(1337, 11); err != nil {
		t.Error(err)
		return
	}
	if err := w.WriteByte(0xab); err != nil {
		t.Error(err)
		return
	}

	r := NewCursor(w.Take())

	if v, err := r.ReadUint8(4); err != nil || v != 0x9 {
		t.Errorf("expected 0x9, got %#x (%v)", v, err)
	}
	if v, err := r.ReadBool(); err != nil || !v {
		t.Errorf("expected true, got %v (%v)", v, err)
	}
	if v, err := r.ReadUint16(11); err != nil || v != 1337 {
		t.Errorf("expected 1337, got %v (%v)", v, err)
	}
	if v, err := r.ReadByte(); err != nil || v != 0xab {
		t.Errorf("expected 0xab, got %#x (%v)", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected a fully consumed buffer, %v bits remain", r.Remaining())
	}
}
