package bitstore

import (
	"os"
	"path"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedStore is a Store whose bytes are shared with a file mapping,
// so writes through a cursor are reflected in the backing file.
//
// A memory mapped store must only be used with a fixed-capacity cursor:
// appending would reallocate the slice and silently detach it from the
// mapping.
type MemoryMappedStore struct {
	*Store
	mapping mmap.MMap
	file    *os.File
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// NewMemoryMapped creates a file of the given size at loc, maps it into
// memory and returns a store over the mapping. An existing file at loc is
// replaced.
func NewMemoryMapped(loc string, size int) (*MemoryMappedStore, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	dir := path.Dir(loc)
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, err
	}
	if l < size {
		return nil, errors.Errorf("could not initialize %d bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &MemoryMappedStore{
		Store:   NewSlice(m),
		mapping: m,
		file:    f,
		loc:     loc,
		size:    size,
	}, nil
}

// OpenMemoryMapped maps an existing file read-only and returns a store over
// the mapping, for inspection tooling. Writes through the store will fault.
func OpenMemoryMapped(loc string) (*MemoryMappedStore, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &MemoryMappedStore{
		Store:   NewSlice(m),
		mapping: m,
		file:    f,
		loc:     loc,
		size:    len(m),
	}, nil
}

// Loc returns the location of the memory mapped file.
func (s *MemoryMappedStore) Loc() string { return s.loc }

// Flush synchronizes the mapping with the backing file.
func (s *MemoryMappedStore) Flush() error {
	return s.mapping.Flush()
}

// Unmap will manually delete the memory mapping of a mapped store
func (s *MemoryMappedStore) Unmap(removefile bool) error {
	if err := s.mapping.Unmap(); err != nil {
		return err
	}

	if err := s.file.Close(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(s.loc); err != nil {
			return err
		}
	}

	return nil
}
