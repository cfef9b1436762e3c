// Package bitstats instruments a cursor with HDR histograms of the bit widths
// flowing through it.
//
// Codec authors tend to want to know how a format spends its bits: wrapping
// the cursor used by a decoder or encoder in a Recorder yields the width
// distribution of every successful read and write, with quantiles, without
// touching the codec itself.
package bitstats

import (
	"github.com/codahale/hdrhistogram"

	"github.com/bbaldino/bytebuffer"
)

// widths range from a single bit to whole multi-byte reads, so the histograms
// track anything up to a megabyte worth of bits per operation
const (
	minWidth = 1
	maxWidth = 1 << 23
	sigfigs  = 3
)

// Stats is a point-in-time summary of the widths recorded on one side of a
// Recorder.
type Stats struct {
	Count  int64
	Mean   float64
	Max    int64
	Median int64
	P99    int64
}

// Recorder wraps a cursor and records the bit width of every successful read
// and write operation. Failed operations record nothing, so the histograms
// describe exactly the bits that moved.
//
// Like the cursor itself, a Recorder is not safe for concurrent use.
type Recorder struct {
	c      *bytebuffer.Cursor
	reads  *hdrhistogram.Histogram
	writes *hdrhistogram.Histogram
}

// NewRecorder wraps the passed cursor.
func NewRecorder(c *bytebuffer.Cursor) *Recorder {
	return &Recorder{
		c:      c,
		reads:  hdrhistogram.New(minWidth, maxWidth, sigfigs),
		writes: hdrhistogram.New(minWidth, maxWidth, sigfigs),
	}
}

// Cursor returns the wrapped cursor, for operations that should not be
// recorded.
func (r *Recorder) Cursor() *bytebuffer.Cursor { return r.c }

func (r *Recorder) record(h *hdrhistogram.Histogram, bits int, err error) {
	if err != nil {
		return
	}
	// out of range widths are dropped rather than failing the operation
	_ = h.RecordValue(int64(bits))
}

// ReadBit reads a single bit through the wrapped cursor.
func (r *Recorder) ReadBit() (byte, error) {
	bit, err := r.c.ReadBit()
	r.record(r.reads, 1, err)
	return bit, err
}

// ReadBool reads a single bit as a bool through the wrapped cursor.
func (r *Recorder) ReadBool() (bool, error) {
	b, err := r.c.ReadBool()
	r.record(r.reads, 1, err)
	return b, err
}

// ReadBits reads numBits through the wrapped cursor.
func (r *Recorder) ReadBits(numBits uint) (uint64, error) {
	v, err := r.c.ReadBits(numBits)
	r.record(r.reads, int(numBits), err)
	return v, err
}

// ReadByte reads an aligned byte through the wrapped cursor.
func (r *Recorder) ReadByte() (byte, error) {
	b, err := r.c.ReadByte()
	r.record(r.reads, 8, err)
	return b, err
}

// ReadBytes reads n aligned bytes through the wrapped cursor.
func (r *Recorder) ReadBytes(n int) ([]byte, error) {
	p, err := r.c.ReadBytes(n)
	r.record(r.reads, n*8, err)
	return p, err
}

// WriteBit writes a single bit through the wrapped cursor.
func (r *Recorder) WriteBit(bit byte) error {
	err := r.c.WriteBit(bit)
	r.record(r.writes, 1, err)
	return err
}

// WriteBool writes a single bit through the wrapped cursor.
func (r *Recorder) WriteBool(b bool) error {
	err := r.c.WriteBool(b)
	r.record(r.writes, 1, err)
	return err
}

// WriteBits writes the low-order numBits of v through the wrapped cursor.
func (r *Recorder) WriteBits(v uint64, numBits uint) error {
	err := r.c.WriteBits(v, numBits)
	r.record(r.writes, int(numBits), err)
	return err
}

// WriteByte writes an aligned byte through the wrapped cursor.
func (r *Recorder) WriteByte(b byte) error {
	err := r.c.WriteByte(b)
	r.record(r.writes, 8, err)
	return err
}

// WriteBytes writes p through the wrapped cursor.
func (r *Recorder) WriteBytes(p []byte) error {
	err := r.c.WriteBytes(p)
	r.record(r.writes, len(p)*8, err)
	return err
}

func snapshot(h *hdrhistogram.Histogram) Stats {
	return Stats{
		Count:  h.TotalCount(),
		Mean:   h.Mean(),
		Max:    h.Max(),
		Median: h.ValueAtQuantile(50),
		P99:    h.ValueAtQuantile(99),
	}
}

// ReadStats returns a summary of the widths of all successful reads so far.
func (r *Recorder) ReadStats() Stats { return snapshot(r.reads) }

// WriteStats returns a summary of the widths of all successful writes so far.
func (r *Recorder) WriteStats() Stats { return snapshot(r.writes) }

// Reset clears both histograms.
func (r *Recorder) Reset() {
	r.reads.Reset()
	r.writes.Reset()
}
