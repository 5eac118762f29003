// File: protocol/frame_reader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FrameReader turns a byte stream into WebSocket frames. Reads land directly
// in a fixed ring; complete frames are decoded out of it into a FIFO, so a
// single read carrying several frames costs one syscall.

package protocol

import (
	"io"

	"github.com/eapache/queue"
	"github.com/momentics/byteringbuffer/core/buffer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxConsecutiveEmptyReads = 100

// FrameReader decodes frames from src. Not safe for concurrent use.
type FrameReader struct {
	src    io.Reader
	ring   *buffer.Ring
	frames *queue.Queue
	cfg    Config
	log    *zap.Logger
	eof    bool  // source returned io.EOF
	err    error // sticky; reported once queued frames are drained
}

// NewFrameReader creates a reader over src. A nil cfg selects DefaultConfig.
func NewFrameReader(src io.Reader, cfg *Config) (*FrameReader, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "frame reader config")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &FrameReader{
		src:    src,
		ring:   buffer.NewRing(cfg.BufferSize),
		frames: queue.New(),
		cfg:    *cfg,
		log:    log.Named("framereader"),
	}, nil
}

// Next returns the next frame, reading from the source as needed.
// At a clean end of stream it returns io.EOF; if the stream ends inside a
// frame it returns io.ErrUnexpectedEOF.
func (fr *FrameReader) Next() (*WSFrame, error) {
	empty := 0
	for fr.frames.Length() == 0 {
		if fr.err != nil {
			return nil, fr.err
		}
		fr.decodeBuffered()
		if fr.frames.Length() > 0 || fr.err != nil {
			continue
		}
		if fr.eof {
			fr.err = io.EOF
			if fr.ring.SizeUsed() > 0 {
				fr.log.Warn("stream ended inside a frame", zap.Int("buffered", fr.ring.SizeUsed()))
				fr.err = io.ErrUnexpectedEOF
			}
			continue
		}
		if fr.readMore() > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxConsecutiveEmptyReads && fr.err == nil {
			fr.err = io.ErrNoProgress
		}
	}
	return fr.frames.Remove().(*WSFrame), nil
}

// Buffered returns the number of undecoded bytes held in the ring.
func (fr *FrameReader) Buffered() int {
	return fr.ring.SizeUsed()
}

// Pending returns the number of decoded frames not yet returned by Next.
func (fr *FrameReader) Pending() int {
	return fr.frames.Length()
}

// decodeBuffered moves every complete buffered frame into the queue.
func (fr *FrameReader) decodeBuffered() {
	for fr.frames.Length() < fr.cfg.MaxQueuedFrames {
		f, err := DecodeFrameFromRing(fr.ring, fr.cfg.MaxFramePayload)
		if err == ErrIncomplete {
			return
		}
		if err != nil {
			fr.log.Warn("dropping stream after bad frame",
				zap.Error(err),
				zap.Int("buffered", fr.ring.SizeUsed()))
			fr.err = err
			return
		}
		fr.log.Debug("frame decoded",
			zap.Uint8("opcode", f.Opcode),
			zap.Int64("payload", f.PayloadLen),
			zap.Bool("fin", f.IsFinal))
		fr.frames.Add(f)
	}
}

// readMore performs one read into the ring and records terminal conditions.
func (fr *FrameReader) readMore() int {
	n, err := fr.ring.Fill(fr.src)
	if n > 0 {
		fr.log.Debug("read", zap.Int("bytes", n), zap.Int("buffered", fr.ring.SizeUsed()))
	}
	switch {
	case err == nil:
	case err == io.EOF:
		fr.eof = true
	case err == buffer.ErrFull:
		// Unreachable while DecodeFrameFromRing rejects frames larger than the ring.
		fr.err = errors.Wrap(ErrFrameTooLarge, "ring full without a complete frame")
	default:
		fr.err = errors.Wrap(err, "read frame data")
	}
	return n
}
