// File: core/buffer/short_view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ShortView reads and writes the ring as 2-byte big-endian elements.
// It owns no storage; every operation routes through the Ring's byte API
// with a pooled scratch slice for the conversion.

package buffer

import (
	"encoding/binary"

	"github.com/momentics/byteringbuffer/pool"
)

// ShortView is a handle over a Ring. Sizes count whole shorts only, so a
// trailing odd byte left by byte-level operations is invisible to it.
type ShortView struct {
	r *Ring
}

// Ring returns the underlying byte ring.
func (v ShortView) Ring() *Ring { return v.r }

// SizeTotal returns the capacity in whole shorts.
func (v ShortView) SizeTotal() int { return v.r.SizeTotal() / 2 }

// SizeUsed returns the number of whole shorts stored.
func (v ShortView) SizeUsed() int { return v.r.SizeUsed() / 2 }

// SizeFree returns the number of whole shorts that fit.
func (v ShortView) SizeFree() int { return v.r.SizeFree() / 2 }

// Add appends as many shorts of src as fit. Returns the number of shorts copied.
func (v ShortView) Add(src []int16) int {
	return v.AddRange(src, 0, len(src))
}

// AddFrom appends src[index:], bounded by free space.
func (v ShortView) AddFrom(src []int16, index int) int {
	return v.AddRange(src, index, len(src)-index)
}

// Push appends the given shorts, bounded by free space.
func (v ShortView) Push(s ...int16) int {
	return v.AddRange(s, 0, len(s))
}

// AddRange appends up to length shorts of src starting at index without
// overwriting. Returns the number of shorts accepted.
func (v ShortView) AddRange(src []int16, index, length int) int {
	checkRange(len(src), index, length)
	length = min(length, v.SizeFree())
	if length == 0 {
		return 0
	}
	bp := pool.Scratch.Get(2 * length)
	defer pool.Scratch.Put(bp)
	scratch := *bp
	encodeShorts(scratch, src[index:index+length])
	return v.r.AddRange(scratch, 0, len(scratch)) / 2
}

// OverrunAdd appends src, evicting the oldest bytes when needed.
func (v ShortView) OverrunAdd(src []int16) {
	v.OverrunAddRange(src, 0, len(src))
}

// OverrunAddFrom appends src[index:], evicting the oldest bytes when needed.
func (v ShortView) OverrunAddFrom(src []int16, index int) {
	v.OverrunAddRange(src, index, len(src)-index)
}

// OverrunPush appends the given shorts, evicting the oldest bytes when needed.
func (v ShortView) OverrunPush(s ...int16) {
	v.OverrunAddRange(s, 0, len(s))
}

// OverrunAddRange appends length shorts of src starting at index, evicting
// the oldest bytes. At most SizeTotal() shorts are written, the newest ones.
func (v ShortView) OverrunAddRange(src []int16, index, length int) {
	checkRange(len(src), index, length)
	if total := v.SizeTotal(); length > total {
		index += length - total
		length = total
	}
	if length == 0 {
		return
	}
	bp := pool.Scratch.Get(2 * length)
	defer pool.Scratch.Put(bp)
	scratch := *bp
	encodeShorts(scratch, src[index:index+length])
	v.r.OverrunAddRange(scratch, 0, len(scratch))
}

// Peek copies up to len(dst) of the oldest shorts into dst.
func (v ShortView) Peek(dst []int16) int {
	return v.PeekRange(dst, 0, len(dst))
}

// PeekFrom copies the oldest shorts into dst[index:].
func (v ShortView) PeekFrom(dst []int16, index int) int {
	return v.PeekRange(dst, index, len(dst)-index)
}

// PeekRange copies up to length of the oldest whole shorts into dst[index:].
// dst is left untouched when no whole short is stored.
func (v ShortView) PeekRange(dst []int16, index, length int) int {
	return v.read(dst, index, length, v.r.PeekRange)
}

// PeekN returns a copy of up to n of the oldest shorts.
func (v ShortView) PeekN(n int) []int16 {
	checkCount(n)
	out := make([]int16, min(n, v.SizeUsed()))
	v.PeekRange(out, 0, len(out))
	return out
}

// Pop moves up to len(dst) of the oldest shorts into dst.
func (v ShortView) Pop(dst []int16) int {
	return v.PopRange(dst, 0, len(dst))
}

// PopFrom moves the oldest shorts into dst[index:].
func (v ShortView) PopFrom(dst []int16, index int) int {
	return v.PopRange(dst, index, len(dst)-index)
}

// PopRange moves up to length of the oldest whole shorts into dst[index:].
// A trailing odd byte is never removed.
func (v ShortView) PopRange(dst []int16, index, length int) int {
	return v.read(dst, index, length, v.r.PopRange)
}

// PopN removes and returns up to n of the oldest shorts.
func (v ShortView) PopN(n int) []int16 {
	checkCount(n)
	out := make([]int16, min(n, v.SizeUsed()))
	v.PopRange(out, 0, len(out))
	return out
}

// Drop discards up to n of the oldest whole shorts.
func (v ShortView) Drop(n int) {
	if n <= 0 {
		return
	}
	v.r.Drop(2 * min(n, v.SizeUsed()))
}

func (v ShortView) read(dst []int16, index, length int, fn func([]byte, int, int) int) int {
	checkRange(len(dst), index, length)
	length = min(length, v.SizeUsed())
	if length == 0 {
		return 0
	}
	bp := pool.Scratch.Get(2 * length)
	defer pool.Scratch.Put(bp)
	scratch := *bp
	n := fn(scratch, 0, len(scratch)) / 2
	decodeShorts(dst[index:index+n], scratch)
	return n
}

func encodeShorts(dst []byte, src []int16) {
	for i, s := range src {
		binary.BigEndian.PutUint16(dst[2*i:], uint16(s))
	}
}

func decodeShorts(dst []int16, src []byte) {
	for i := range dst {
		dst[i] = int16(binary.BigEndian.Uint16(src[2*i:]))
	}
}
