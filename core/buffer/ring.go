// File: core/buffer/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a fixed-capacity byte FIFO over one contiguous slice.
// The valid region is the used bytes starting at start, wrapping at len(data).

package buffer

import (
	"github.com/momentics/byteringbuffer/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Ring)(nil)

// Ring is a byte ring buffer. Not safe for concurrent use.
type Ring struct {
	data  []byte
	start int // index of the oldest stored byte
	used  int // number of stored bytes
}

// NewRing allocates a ring that holds up to capacity bytes.
// A zero capacity ring is valid and never accepts data.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		panic(invalidArgument("buffer: negative ring capacity").
			WithContext("capacity", capacity))
	}
	return &Ring{data: make([]byte, capacity)}
}

// SizeTotal returns the fixed capacity in bytes.
func (r *Ring) SizeTotal() int {
	return len(r.data)
}

// SizeUsed returns the number of stored bytes.
func (r *Ring) SizeUsed() int {
	return r.used
}

// SizeFree returns how many more bytes fit without overwriting.
func (r *Ring) SizeFree() int {
	return r.SizeTotal() - r.SizeUsed()
}

// IsEmpty reports whether no bytes are stored.
func (r *Ring) IsEmpty() bool {
	return r.used == 0
}

// IsFull reports whether SizeFree is zero.
func (r *Ring) IsFull() bool {
	return r.used == len(r.data)
}

// Drop discards up to n of the oldest bytes. Dropping more than SizeUsed
// empties the ring; n <= 0 is a no-op.
func (r *Ring) Drop(n int) {
	if n <= 0 || r.used == 0 {
		return
	}
	if n > r.used {
		n = r.used
	}
	r.start = (r.start + n) % len(r.data)
	r.used -= n
}

// Clear empties the ring. Storage is left untouched.
func (r *Ring) Clear() {
	r.start = 0
	r.used = 0
}

// ShortView returns a 2-byte element view backed by r.
func (r *Ring) ShortView() ShortView {
	return ShortView{r: r}
}

// nextOffset returns where the next byte is written.
func (r *Ring) nextOffset() int {
	if len(r.data) == 0 {
		return 0
	}
	return (r.start + r.used) % len(r.data)
}

// availableAfter returns the free bytes following offset up to the physical
// end of storage or up to start, whichever comes first.
func (r *Ring) availableAfter(offset int) int {
	if r.used == len(r.data) {
		return 0
	}
	if offset < r.start {
		// Used region wraps: free space ends where the oldest byte sits.
		return r.start - offset
	}
	return len(r.data) - offset
}

// advance accounts for n freshly written bytes. When the total would exceed
// capacity the oldest bytes are evicted by moving start forward.
func (r *Ring) advance(n int) {
	sum := r.used + n
	if sum > len(r.data) {
		overflow := sum - len(r.data)
		r.used = len(r.data)
		r.start = (r.start + overflow) % len(r.data)
		return
	}
	r.used = sum
}

// usedChunks returns the stored region as at most two slices, oldest first.
// The first slice is always present, possibly empty.
func (r *Ring) usedChunks() (first, second []byte) {
	n := min(r.used, len(r.data)-r.start)
	first = r.data[r.start : r.start+n : r.start+n]
	if rest := r.used - n; rest > 0 {
		second = r.data[:rest:rest]
	}
	return first, second
}

// freeChunks returns the free region as at most two slices, write order first.
func (r *Ring) freeChunks() [][]byte {
	free := r.SizeFree()
	if free == 0 {
		return nil
	}
	offset := r.nextOffset()
	n := r.availableAfter(offset)
	chunks := [][]byte{r.data[offset : offset+n]}
	if rest := free - n; rest > 0 {
		chunks = append(chunks, r.data[:rest])
	}
	return chunks
}
