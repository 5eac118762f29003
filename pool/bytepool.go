// File: pool/bytepool.go
// Package pool implements size-classed scratch byte slices.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// Predefined (power-of-two) scratch size classes (bytes).
var sizeClasses = [...]int{
	64,          // 64B
	256,         // 256B
	1 * 1024,    // 1K
	4 * 1024,    // 4K
	16 * 1024,   // 16K
	64 * 1024,   // 64K
	256 * 1024,  // 256K
	1024 * 1024, // 1M
}

// classIndex returns the smallest class >= size, or -1 if size exceeds every class.
func classIndex(size int) int {
	for i, c := range sizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// BytePool hands out scratch slices from per-class sync.Pools.
// Safe for concurrent use.
type BytePool struct {
	classes [len(sizeClasses)]sync.Pool
}

// Scratch is the process-wide pool used for short-lived conversions.
var Scratch = NewBytePool()

// NewBytePool creates an empty pool.
func NewBytePool() *BytePool {
	p := &BytePool{}
	for i := range p.classes {
		size := sizeClasses[i]
		p.classes[i].New = func() any {
			buf := make([]byte, size)
			return &buf
		}
	}
	return p
}

// Get returns a pointer to a slice of length size. Contents are undefined.
// Requests above the largest class are allocated directly. The pointer is
// handed back to Put unchanged so the round trip does not allocate.
func (p *BytePool) Get(size int) *[]byte {
	if size <= 0 {
		return new([]byte)
	}
	idx := classIndex(size)
	if idx < 0 {
		buf := make([]byte, size)
		return &buf
	}
	bp := p.classes[idx].Get().(*[]byte)
	*bp = (*bp)[:size]
	return bp
}

// Put returns bp to its class. Slices not obtained from Get are ignored.
func (p *BytePool) Put(bp *[]byte) {
	if bp == nil {
		return
	}
	c := cap(*bp)
	idx := classIndex(c)
	if idx < 0 || sizeClasses[idx] != c {
		return
	}
	*bp = (*bp)[:c]
	p.classes[idx].Put(bp)
}
