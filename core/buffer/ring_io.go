// File: core/buffer/ring_io.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// io adapters: the ring fills straight from readers into free storage and
// drains straight from storage into writers, without intermediate copies.

package buffer

import (
	"io"

	"github.com/pkg/errors"
)

// maxConsecutiveEmptyReads bounds readers that return (0, nil) forever.
const maxConsecutiveEmptyReads = 100

var (
	_ io.Reader     = (*Ring)(nil)
	_ io.Writer     = (*Ring)(nil)
	_ io.ReaderFrom = (*Ring)(nil)
	_ io.WriterTo   = (*Ring)(nil)
)

// Write appends p without overwriting. A short write returns ErrFull.
func (r *Ring) Write(p []byte) (int, error) {
	n := r.AddRange(p, 0, len(p))
	if n < len(p) {
		return n, ErrFull
	}
	return n, nil
}

// Read pops into p. It returns io.EOF when the ring is empty.
func (r *Ring) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.used == 0 {
		return 0, io.EOF
	}
	return r.PopRange(p, 0, len(p)), nil
}

// Fill performs a single Read from src into the next contiguous free run.
// It returns ErrFull when there is no free space.
func (r *Ring) Fill(src io.Reader) (int, error) {
	offset := r.nextOffset()
	available := r.availableAfter(offset)
	if available == 0 {
		return 0, ErrFull
	}
	n, err := src.Read(r.data[offset : offset+available])
	if n < 0 || n > available {
		return 0, errors.Errorf("buffer: reader returned invalid count %d", n)
	}
	r.advance(n)
	return n, err
}

// ReadFrom reads from src until the ring is full, src returns io.EOF, or an
// error occurs. Reaching full is not an error unless the ring was full on entry.
func (r *Ring) ReadFrom(src io.Reader) (int64, error) {
	if r.IsFull() {
		return 0, ErrFull
	}
	var total int64
	empty := 0
	for !r.IsFull() {
		n, err := r.Fill(src)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, errors.Wrap(err, "buffer: read from source")
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxConsecutiveEmptyReads {
			return total, io.ErrNoProgress
		}
	}
	return total, nil
}

// WriteTo drains the ring into dst, dropping whatever dst accepted.
func (r *Ring) WriteTo(dst io.Writer) (int64, error) {
	var total int64
	for r.used > 0 {
		chunk, _ := r.usedChunks()
		n, err := dst.Write(chunk)
		if n < 0 || n > len(chunk) {
			return total, errors.Errorf("buffer: writer returned invalid count %d", n)
		}
		r.Drop(n)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "buffer: write to destination")
		}
		if n < len(chunk) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
