// Package buffer implements a fixed-capacity byte ring buffer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring stores bytes in a single slice allocated at construction and tracks
// the oldest byte (start) and the number of stored bytes (used). Insertion
// comes in two flavours: bounded (Add*, Push) which never overwrites and
// reports how much was accepted, and overrunning (OverrunAdd*, OverrunPush)
// which evicts the oldest bytes. Reads are non-destructive (Peek*) or
// destructive (Pop*), and Drop discards without copying.
//
// ShortView reinterprets the same storage as big-endian 2-byte elements.
//
// Neither Ring nor ShortView is safe for concurrent use. Callers sharing a
// Ring between goroutines must serialize access themselves.
//
// Exceeding free or used space is never an error: operations truncate.
// Passing an index or length outside the caller's own slice, a nil callback
// or a nil window panics with an *api.Error.
package buffer
