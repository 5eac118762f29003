// Package api
// Author: momentics@gmail.com
//
// Byte ring buffer contracts shared by the buffer and protocol layers.

package api

// BorrowFunc receives a read-only view into ring storage.
// The chunk must not be modified or retained after the call returns.
type BorrowFunc func(chunk []byte)

// ByteRing is the fixed-capacity byte FIFO contract.
// Implementations are not safe for concurrent use; callers synchronize externally.
type ByteRing interface {
	// SizeTotal returns the fixed capacity in bytes.
	SizeTotal() int
	// SizeUsed returns the number of stored bytes.
	SizeUsed() int
	// SizeFree returns SizeTotal() - SizeUsed().
	SizeFree() int

	// AddRange copies up to length bytes of src[index:] without overwriting.
	// Returns the number of bytes accepted.
	AddRange(src []byte, index, length int) int
	// OverrunAddRange copies length bytes of src[index:], evicting the oldest bytes.
	OverrunAddRange(src []byte, index, length int)

	// PeekRange copies up to length of the oldest bytes into dst[index:].
	PeekRange(dst []byte, index, length int) int
	// PeekFunc lends the stored region to fn in at most two chunks, oldest first.
	PeekFunc(fn BorrowFunc)
	// PopRange is PeekRange followed by Drop of the bytes read.
	PopRange(dst []byte, index, length int) int

	// Drop discards up to n of the oldest bytes.
	Drop(n int)
	// Clear empties the ring.
	Clear()
}
