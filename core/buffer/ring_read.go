// File: core/buffer/ring_read.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/byteringbuffer/api"

// Window is a destination described by position and limit over Data,
// in the manner of a fixed-capacity I/O buffer. Peeks write into
// Data[Position:Limit] and leave Position unchanged.
type Window struct {
	Data     []byte
	Position int
	Limit    int
}

// NewWindow returns a window spanning all of data.
func NewWindow(data []byte) *Window {
	return &Window{Data: data, Limit: len(data)}
}

// Remaining returns Limit - Position.
func (w *Window) Remaining() int {
	return w.Limit - w.Position
}

func (w *Window) check() {
	if w.Position < 0 || w.Position > w.Limit || w.Limit > len(w.Data) {
		panic(api.NewError(api.ErrCodeOutOfRange, "buffer: window position/limit outside data").
			WithContext("position", w.Position).
			WithContext("limit", w.Limit).
			WithContext("len", len(w.Data)))
	}
}

// Peek copies the oldest bytes into dst, up to len(dst). Returns the count copied.
func (r *Ring) Peek(dst []byte) int {
	return r.PeekRange(dst, 0, len(dst))
}

// PeekFrom copies the oldest bytes into dst[index:].
func (r *Ring) PeekFrom(dst []byte, index int) int {
	return r.PeekRange(dst, index, len(dst)-index)
}

// PeekRange copies min(length, SizeUsed()) of the oldest bytes into
// dst[index:] without removing them.
func (r *Ring) PeekRange(dst []byte, index, length int) int {
	checkRange(len(dst), index, length)

	n := min(length, r.used)
	if n == 0 {
		return 0
	}
	first := min(n, len(r.data)-r.start)
	copy(dst[index:index+first], r.data[r.start:])
	if first < n {
		copy(dst[index+first:index+n], r.data[:n-first])
	}
	return n
}

// PeekN returns a copy of up to n of the oldest bytes.
func (r *Ring) PeekN(n int) []byte {
	checkCount(n)
	out := make([]byte, min(n, r.used))
	r.PeekRange(out, 0, len(out))
	return out
}

// PeekWindow copies the oldest bytes into w's remaining space.
func (r *Ring) PeekWindow(w *Window) int {
	if w == nil {
		panic(invalidArgument("buffer: nil window"))
	}
	return r.PeekWindowN(w, w.Remaining())
}

// PeekWindowN copies up to n of the oldest bytes into w starting at its
// position. n must not exceed w.Remaining().
func (r *Ring) PeekWindowN(w *Window, n int) int {
	if w == nil {
		panic(invalidArgument("buffer: nil window"))
	}
	w.check()
	if n < 0 || n > w.Remaining() {
		panic(api.NewError(api.ErrCodeOutOfRange, "buffer: length exceeds window remaining").
			WithContext("length", n).
			WithContext("remaining", w.Remaining()))
	}
	return r.PeekRange(w.Data, w.Position, n)
}

// PeekFunc lends the stored bytes to fn without copying. fn is called once
// when the stored region is contiguous (with an empty chunk if the ring is
// empty) and twice when it wraps past the end of storage, oldest bytes first.
// Chunks alias internal storage: fn must not modify the ring or the chunks,
// nor keep them after returning.
func (r *Ring) PeekFunc(fn api.BorrowFunc) {
	if fn == nil {
		panic(invalidArgument("buffer: nil peek callback"))
	}
	first, second := r.usedChunks()
	fn(first)
	if len(second) > 0 {
		fn(second)
	}
}

// Pop moves the oldest bytes into dst, up to len(dst). Returns the count removed.
func (r *Ring) Pop(dst []byte) int {
	return r.PopRange(dst, 0, len(dst))
}

// PopFrom moves the oldest bytes into dst[index:].
func (r *Ring) PopFrom(dst []byte, index int) int {
	return r.PopRange(dst, index, len(dst)-index)
}

// PopRange is PeekRange followed by Drop of the bytes read.
func (r *Ring) PopRange(dst []byte, index, length int) int {
	n := r.PeekRange(dst, index, length)
	r.Drop(n)
	return n
}

// PopN removes and returns up to n of the oldest bytes.
func (r *Ring) PopN(n int) []byte {
	out := r.PeekN(n)
	r.Drop(len(out))
	return out
}

// PopWindow moves the oldest bytes into w's remaining space.
func (r *Ring) PopWindow(w *Window) int {
	n := r.PeekWindow(w)
	r.Drop(n)
	return n
}
