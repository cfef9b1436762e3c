package main

import (
	"flag"
	"os"

	"github.com/bbaldino/bytebuffer/bitdump"
	"github.com/bbaldino/bytebuffer/bitstore"
)

var (
	groupbits = flag.Int("groupbits", 8, "bits per group")
	groups    = flag.Int("groups", 4, "groups per line")
	max       = flag.Int("max", 0, "dump at most this many bits, 0 for everything")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		panic("Usage: bitdump <file>")
	}

	// the file is mapped read-only rather than read into a fresh slice,
	// large captures stay on the page cache
	store, err := bitstore.OpenMemoryMapped(flag.Arg(0))
	if err != nil {
		panic(err)
	}
	defer store.Unmap(false)

	err = bitdump.Fprint(os.Stdout, store.Bytes(), bitdump.Config{
		GroupBits: *groupbits,
		Groups:    *groups,
		MaxBits:   *max,
	})
	if err != nil {
		panic(err)
	}
}
