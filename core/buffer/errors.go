// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions and precondition checks for the buffer module.

package buffer

import (
	"errors"

	"github.com/momentics/byteringbuffer/api"
)

var (
	// ErrFull indicates the ring had no room for the requested bytes.
	ErrFull = errors.New("ring buffer is full")
)

// checkRange panics unless [index, index+length) lies within a slice of len size.
func checkRange(size, index, length int) {
	if index < 0 || length < 0 || index > size || length > size-index {
		panic(api.NewError(api.ErrCodeOutOfRange, "buffer: index/length outside slice").
			WithContext("index", index).
			WithContext("length", length).
			WithContext("len", size))
	}
}

func checkCount(n int) {
	if n < 0 {
		panic(api.NewError(api.ErrCodeOutOfRange, "buffer: negative count").
			WithContext("n", n))
	}
}

func invalidArgument(msg string) *api.Error {
	return api.NewError(api.ErrCodeInvalidArgument, msg)
}
