// core/buffer/ring_fd_linux.go
//go:build linux
// +build linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scatter/gather descriptor I/O: one readv fills both free runs of the ring,
// one writev drains both used runs.

package buffer

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ReadFromFD fills the free space of r with a single readv(2) on fd.
// It returns ErrFull when there is no free space and (0, nil) at end of file.
func (r *Ring) ReadFromFD(fd int) (int, error) {
	iovs := r.freeChunks()
	if len(iovs) == 0 {
		return 0, ErrFull
	}
	n, err := unix.Readv(fd, iovs)
	if err != nil {
		return 0, errors.Wrap(err, "buffer: readv")
	}
	r.advance(n)
	return n, nil
}

// WriteToFD writes the stored bytes to fd with a single writev(2) and drops
// what the kernel accepted.
func (r *Ring) WriteToFD(fd int) (int, error) {
	if r.used == 0 {
		return 0, nil
	}
	first, second := r.usedChunks()
	iovs := [][]byte{first}
	if len(second) > 0 {
		iovs = append(iovs, second)
	}
	n, err := unix.Writev(fd, iovs)
	if err != nil {
		return 0, errors.Wrap(err, "buffer: writev")
	}
	r.Drop(n)
	return n, nil
}
