// Package bitstore implements the byte storage that backs a bit cursor.
//
// A Store is an ordered, mutable sequence of bytes with bit-level get/set
// primitives. It only enforces raw index bounds; growth and alignment policy
// belong to the cursor that owns it. Within a byte, bit index 0 is the most
// significant bit.
package bitstore

import "github.com/pkg/errors"

// ErrOutOfRange is returned when a byte or bit index falls outside the store.
var ErrOutOfRange = errors.New("index out of range")

// Store is a wrapper over a byte slice exposing len*8 addressable bits. It is
// meant to be exclusively owned by a single cursor; nothing else should
// mutate it while the cursor holds it.
type Store struct {
	buffer []byte
}

// New creates a new Store of n zeroed bytes.
func New(n int) *Store {
	return &Store{
		buffer: make([]byte, n),
	}
}

// NewSlice creates a new Store using the passed slice.
func NewSlice(buffer []byte) *Store {
	return &Store{
		buffer: buffer,
	}
}

// Empty creates a new zero-length Store, the starting point of a growable
// write session.
func Empty() *Store {
	return &Store{}
}

// Len returns the length of the store in bytes.
func (s *Store) Len() int { return len(s.buffer) }

// LenBits returns the length of the store in bits.
func (s *Store) LenBits() int { return len(s.buffer) * 8 }

// Bytes returns the internal byte slice of the Store.
func (s *Store) Bytes() []byte { return s.buffer }

// Byte returns the byte at index i.
func (s *Store) Byte(i int) (byte, error) {
	if i < 0 || i >= len(s.buffer) {
		return 0, errors.Wrapf(ErrOutOfRange, "byte %v of %v", i, len(s.buffer))
	}
	return s.buffer[i], nil
}

// SetByte overwrites the byte at index i.
func (s *Store) SetByte(i int, b byte) error {
	if i < 0 || i >= len(s.buffer) {
		return errors.Wrapf(ErrOutOfRange, "byte %v of %v", i, len(s.buffer))
	}
	s.buffer[i] = b
	return nil
}

// Bit returns bit bitIndex of the byte at byteIndex as 0 or 1, where bit 0 is
// the most significant bit of the byte.
func (s *Store) Bit(byteIndex, bitIndex int) (byte, error) {
	b, err := s.Byte(byteIndex)
	if err != nil {
		return 0, err
	}
	if bitIndex < 0 || bitIndex > 7 {
		return 0, errors.Wrapf(ErrOutOfRange, "bit %v of a byte", bitIndex)
	}

	if b&(0x80>>uint(bitIndex)) != 0 {
		return 1, nil
	}
	return 0, nil
}

// SetBit mutates bit bitIndex of the byte at byteIndex in place. A zero value
// clears the bit, any other value sets it.
func (s *Store) SetBit(byteIndex, bitIndex int, v byte) error {
	if byteIndex < 0 || byteIndex >= len(s.buffer) {
		return errors.Wrapf(ErrOutOfRange, "byte %v of %v", byteIndex, len(s.buffer))
	}
	if bitIndex < 0 || bitIndex > 7 {
		return errors.Wrapf(ErrOutOfRange, "bit %v of a byte", bitIndex)
	}

	mask := byte(0x80) >> uint(bitIndex)
	if v != 0 {
		s.buffer[byteIndex] |= mask
	} else {
		s.buffer[byteIndex] &^= mask
	}
	return nil
}

// AppendZeroByte grows the store by one zero-initialized byte.
func (s *Store) AppendZeroByte() {
	s.buffer = append(s.buffer, 0)
}
