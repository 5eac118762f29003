// Package pool
// Author: momentics <momentics@gmail.com>
//
// Scratch memory for byteringbuffer. BytePool groups short-lived byte slices
// into power-of-two size classes backed by sync.Pool so conversions such as
// the ring's 2-byte view do not allocate on every call.
package pool
