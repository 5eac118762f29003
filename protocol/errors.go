// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Error definitions for frame decoding.

package protocol

import "errors"

var (
	// ErrIncomplete indicates more bytes are needed before a frame can be decoded.
	ErrIncomplete = errors.New("frame incomplete")

	// ErrFrameTooLarge indicates a frame exceeds the payload limit or the ring capacity.
	ErrFrameTooLarge = errors.New("frame payload exceeds maximum allowed size")

	// ErrInvalidFrame indicates a malformed frame header.
	ErrInvalidFrame = errors.New("invalid frame header")
)
