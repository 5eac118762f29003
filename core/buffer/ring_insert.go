// File: core/buffer/ring_insert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

// Add appends as much of src as fits. Returns the number of bytes copied.
func (r *Ring) Add(src []byte) int {
	return r.AddRange(src, 0, len(src))
}

// AddFrom appends src[index:], bounded by free space.
func (r *Ring) AddFrom(src []byte, index int) int {
	return r.AddRange(src, index, len(src)-index)
}

// Push appends the given bytes, bounded by free space.
func (r *Ring) Push(b ...byte) int {
	return r.AddRange(b, 0, len(b))
}

// AddRange copies up to length bytes of src starting at index, stopping when
// the ring is full. Existing bytes are never overwritten, so the accepted
// bytes are always a prefix of the requested range.
func (r *Ring) AddRange(src []byte, index, length int) int {
	checkRange(len(src), index, length)

	remaining := length
	for remaining > 0 {
		offset := r.nextOffset()
		available := r.availableAfter(offset)
		if available == 0 {
			break
		}
		n := copy(r.data[offset:offset+min(remaining, available)], src[index:])
		r.advance(n)
		remaining -= n
		index += n
	}
	return length - remaining
}

// OverrunAdd appends all of src, evicting the oldest bytes when needed.
func (r *Ring) OverrunAdd(src []byte) {
	r.OverrunAddRange(src, 0, len(src))
}

// OverrunAddFrom appends src[index:], evicting the oldest bytes when needed.
func (r *Ring) OverrunAddFrom(src []byte, index int) {
	r.OverrunAddRange(src, index, len(src)-index)
}

// OverrunPush appends the given bytes, evicting the oldest bytes when needed.
func (r *Ring) OverrunPush(b ...byte) {
	r.OverrunAddRange(b, 0, len(b))
}

// OverrunAddRange appends length bytes of src starting at index. When the
// ring overflows the oldest bytes are evicted; if length exceeds the capacity
// only the last SizeTotal() bytes of the range are kept, in order.
func (r *Ring) OverrunAddRange(src []byte, index, length int) {
	checkRange(len(src), index, length)

	capacity := len(r.data)
	if capacity == 0 || length == 0 {
		return
	}
	if length > capacity {
		// Everything before the tail would be overwritten by the tail itself.
		// Skip it, but start the tail where writing it would have left it.
		skip := length - capacity
		r.start = (r.nextOffset() + skip) % capacity
		r.used = 0
		index += skip
		length = capacity
	}

	offset := r.nextOffset()
	if offset+length <= capacity {
		copy(r.data[offset:], src[index:index+length])
		r.advance(length)
		return
	}
	for length > 0 {
		offset = r.nextOffset()
		n := copy(r.data[offset:], src[index:index+length])
		r.advance(n)
		index += n
		length -= n
	}
}
