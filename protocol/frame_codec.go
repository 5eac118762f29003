// File: protocol/frame_codec.go
// Package protocol implements frame codec over byte slices and byte rings.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Implements WebSocket frame encoding/decoding with payload size limits
// to prevent resource exhaustion in high-load scenarios. Ring decoding peeks
// the header in place and only removes bytes once a whole frame is buffered.

package protocol

import (
	"encoding/binary"

	"github.com/momentics/byteringbuffer/api"
	"github.com/momentics/byteringbuffer/core/buffer"
	"github.com/pkg/errors"
)

// MaxFramePayload defines the default maximum payload size for a single frame.
const MaxFramePayload = 1 << 20 // 1 MiB

// DecodeFrameFromBytes parses the frame at the front of raw.
// Returns frame and consumed bytes; ErrIncomplete if raw holds a partial frame.
func DecodeFrameFromBytes(raw []byte, maxPayload int64) (*WSFrame, int, error) {
	h, err := parseHeader(raw)
	if err != nil {
		return nil, 0, err
	}
	if h.payloadLen > maxPayload {
		return nil, 0, errors.Wrapf(ErrFrameTooLarge, "payload %d, limit %d", h.payloadLen, maxPayload)
	}
	// Compared against what remains so a 63-bit length cannot overflow.
	if h.payloadLen > int64(len(raw)-h.size) {
		return nil, 0, ErrIncomplete
	}
	total := h.size + int(h.payloadLen)
	payload := make([]byte, h.payloadLen)
	copy(payload, raw[h.size:total])
	return h.frame(payload), total, nil
}

// DecodeFrameFromRing removes one complete frame from the front of r.
// Nothing is consumed unless the whole frame is buffered; ErrIncomplete
// reports that more bytes are needed. A frame that cannot fit in r even
// when empty yields ErrFrameTooLarge.
func DecodeFrameFromRing(r api.ByteRing, maxPayload int64) (*WSFrame, error) {
	var hdr [MaxFrameHeaderLen]byte
	n := r.PeekRange(hdr[:], 0, len(hdr))
	h, err := parseHeader(hdr[:n])
	if err != nil {
		return nil, err
	}
	if h.payloadLen > maxPayload {
		return nil, errors.Wrapf(ErrFrameTooLarge, "payload %d, limit %d", h.payloadLen, maxPayload)
	}
	if h.payloadLen > int64(r.SizeTotal()-h.size) {
		return nil, errors.Wrapf(ErrFrameTooLarge, "payload %d after %d byte header, ring capacity %d",
			h.payloadLen, h.size, r.SizeTotal())
	}
	if h.payloadLen > int64(r.SizeUsed()-h.size) {
		return nil, ErrIncomplete
	}
	r.Drop(h.size)
	payload := make([]byte, h.payloadLen)
	r.PopRange(payload, 0, len(payload))
	return h.frame(payload), nil
}

// EncodeFrameToBytes serializes WSFrame into []byte,
// enforcing maximum payload size.
func EncodeFrameToBytes(f *WSFrame) ([]byte, error) {
	return EncodeFrameToBytesWithMask(f, f.Masked)
}

// EncodeFrameToBytesWithMask serializes WSFrame into []byte with specific mask setting.
func EncodeFrameToBytesWithMask(f *WSFrame, mask bool) ([]byte, error) {
	return EncodeFrameToBufferWithMask(f, mask, nil)
}

// EncodeFrameToBufferWithMask serializes WSFrame into a caller-managed buffer,
// minimizing allocations. Returned slice aliases dst. When mask is set the
// frame's MaskKey is used.
func EncodeFrameToBufferWithMask(f *WSFrame, mask bool, dst []byte) ([]byte, error) {
	if f.PayloadLen > MaxFramePayload {
		return nil, ErrFrameTooLarge
	}
	if f.PayloadLen != int64(len(f.Payload)) {
		return nil, errors.Errorf("payload length %d does not match payload size %d", f.PayloadLen, len(f.Payload))
	}

	var b0 byte
	if f.IsFinal {
		b0 = FinBit
	}
	b0 |= (f.Opcode & 0x0F)

	var maskBit byte
	if mask {
		maskBit = MaskBit
	}

	plen := int(f.PayloadLen)
	var hdr [10]byte
	var header []byte

	switch {
	case plen <= 125:
		header = hdr[:2]
		header[1] = byte(plen) | maskBit
	case plen <= 0xFFFF:
		header = hdr[:4]
		header[1] = 126 | maskBit
		binary.BigEndian.PutUint16(header[2:], uint16(plen))
	default:
		header = hdr[:10]
		header[1] = 127 | maskBit
		binary.BigEndian.PutUint64(header[2:], uint64(plen))
	}
	header[0] = b0

	dst = append(dst[:0], header...)
	if mask {
		dst = append(dst, f.MaskKey[:]...)
	}

	start := len(dst)
	dst = append(dst, f.Payload...)
	if mask {
		for i := 0; i < plen; i++ {
			dst[start+i] ^= f.MaskKey[i%4]
		}
	}

	return dst, nil
}

// EncodeFrameToRing appends the encoded frame to r. The frame is written
// entirely or not at all; buffer.ErrFull reports insufficient free space.
func EncodeFrameToRing(r api.ByteRing, f *WSFrame, mask bool) error {
	raw, err := EncodeFrameToBytesWithMask(f, mask)
	if err != nil {
		return err
	}
	if len(raw) > r.SizeFree() {
		return errors.Wrapf(buffer.ErrFull, "frame %d bytes, free %d", len(raw), r.SizeFree())
	}
	r.AddRange(raw, 0, len(raw))
	return nil
}
