// Package bitdump renders a bit-level view of a byte buffer
//
// it walks the buffer with a bytebuffer.Cursor and prints one line per group
// of bits, each line prefixed with the absolute bit offset it starts at, so
// the output can be compared directly against a format specification that
// talks in bit offsets
//
// the cli application around it lives in cmd/bitdump
package bitdump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/bbaldino/bytebuffer"
)

// Config controls how Fprint lays out its dump.
type Config struct {
	// GroupBits is the number of bits rendered per group, 1 to 64. Defaults
	// to 8, one byte per group.
	GroupBits int

	// Groups is the number of groups per line. Defaults to 4.
	Groups int

	// MaxBits truncates the dump after this many bits. 0 dumps everything.
	MaxBits int
}

func (c *Config) fill() error {
	if c.GroupBits == 0 {
		c.GroupBits = 8
	}
	if c.Groups == 0 {
		c.Groups = 4
	}

	if c.GroupBits < 1 || c.GroupBits > 64 {
		return errors.Errorf("invalid group size %v, supported range is 1 to 64", c.GroupBits)
	}
	if c.Groups < 1 {
		return errors.Errorf("invalid group count %v", c.Groups)
	}
	if c.MaxBits < 0 {
		return errors.Errorf("invalid bit limit %v", c.MaxBits)
	}
	return nil
}

// Fprint writes a dump of data to w.
func Fprint(w io.Writer, data []byte, c Config) error {
	if err := c.fill(); err != nil {
		return err
	}

	cur := bytebuffer.NewCursor(data)

	limit := cur.Len()
	if c.MaxBits != 0 && c.MaxBits < limit {
		limit = c.MaxBits
	}

	fmt.Fprintf(w, "Buffer    = %v bytes (%v bits)\n", len(data), cur.Len())
	fmt.Fprintf(w, "GroupBits = %v\n\n", c.GroupBits)

	for cur.Pos() < limit {
		fmt.Fprintf(w, "%8d ", cur.Pos())

		for g := 0; g < c.Groups && cur.Pos() < limit; g++ {
			n := c.GroupBits
			if rem := limit - cur.Pos(); rem < n {
				n = rem
			}

			v, err := cur.ReadBits(uint(n))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " %0*b", n, v)
		}

		fmt.Fprintf(w, "\n")
	}

	if cur.Remaining() > 0 {
		fmt.Fprintf(w, "\n(%v more bits)\n", cur.Remaining())
	}

	return nil
}

// Dump returns the dump of data as a string.
func Dump(data []byte, c Config) (string, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, data, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
