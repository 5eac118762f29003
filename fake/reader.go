// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for stream consumers.

package fake

import (
	"io"
	"sync"
)

// Reader is a scripted io.Reader. Each Read returns at most one queued chunk
// (split if the caller's slice is smaller); after the script is exhausted it
// returns the configured terminal error, io.EOF by default.
type Reader struct {
	mu      sync.Mutex
	chunks  [][]byte
	readErr error
	reads   int
}

// NewReader creates a reader that yields chunks in order.
func NewReader(chunks ...[]byte) *Reader {
	r := &Reader{readErr: io.EOF}
	for _, c := range chunks {
		r.Enqueue(c)
	}
	return r
}

// Enqueue appends a chunk to the script. Empty chunks produce (0, nil) reads.
func (r *Reader) Enqueue(chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]byte, len(chunk))
	copy(cp, chunk)
	r.chunks = append(r.chunks, cp)
}

// SetReadError sets the error returned once the script is exhausted.
func (r *Reader) SetReadError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readErr = err
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if len(r.chunks) == 0 {
		return 0, r.readErr
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// Reads returns the number of Read calls made so far.
func (r *Reader) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

// Writer is an io.Writer that accepts at most Limit bytes per call (0 means
// unlimited) and records everything written.
type Writer struct {
	mu       sync.Mutex
	Limit    int
	WriteErr error
	written  []byte
	writes   int
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	if w.WriteErr != nil {
		return 0, w.WriteErr
	}
	n := len(p)
	if w.Limit > 0 && n > w.Limit {
		n = w.Limit
	}
	w.written = append(w.written, p[:n]...)
	return n, nil
}

// Bytes returns a copy of everything written.
func (w *Writer) Bytes() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]byte, len(w.written))
	copy(out, w.written)
	return out
}

// Writes returns the number of Write calls made so far.
func (w *Writer) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}
