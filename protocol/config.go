// File: protocol/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"github.com/momentics/byteringbuffer/api"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config holds FrameReader parameters, fixed for the reader's life.
type Config struct {
	BufferSize      int         // Ring capacity in bytes; bounds the largest frame
	MaxFramePayload int64       // Largest accepted payload
	MaxQueuedFrames int         // Decoded frames held before decoding pauses
	Logger          *zap.Logger // Optional; nil disables logging
}

// DefaultConfig returns defaults sized for typical message traffic.
func DefaultConfig() *Config {
	return &Config{
		BufferSize:      64 * 1024,                   // 64 KiB ring
		MaxFramePayload: 64*1024 - MaxFrameHeaderLen, // largest frame that fits the ring
		MaxQueuedFrames: 64,                          // decoded frames awaiting Next
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.BufferSize < MaxFrameHeaderLen {
		return errors.Wrapf(api.ErrInvalidArgument, "BufferSize %d below minimum %d", c.BufferSize, MaxFrameHeaderLen)
	}
	if c.MaxFramePayload <= 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "MaxFramePayload %d must be positive", c.MaxFramePayload)
	}
	if c.MaxFramePayload > int64(c.BufferSize-MaxFrameHeaderLen) {
		return errors.Wrapf(api.ErrInvalidArgument, "MaxFramePayload %d does not fit BufferSize %d", c.MaxFramePayload, c.BufferSize)
	}
	if c.MaxQueuedFrames <= 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "MaxQueuedFrames %d must be positive", c.MaxQueuedFrames)
	}
	return nil
}
