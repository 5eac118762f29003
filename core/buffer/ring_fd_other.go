// core/buffer/ring_fd_other.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/byteringbuffer/api"

// ReadFromFD is only implemented on Linux.
func (r *Ring) ReadFromFD(fd int) (int, error) {
	return 0, notSupported("readv", fd)
}

// WriteToFD is only implemented on Linux.
func (r *Ring) WriteToFD(fd int) (int, error) {
	return 0, notSupported("writev", fd)
}

func notSupported(op string, fd int) error {
	return api.NewError(api.ErrCodeNotSupported, "buffer: "+op+" requires linux").
		WithContext("fd", fd)
}
