// Package protocol
// Author: momentics <momentics@gmail.com>
//
// WebSocket frame model and header parsing shared by the slice and ring decoders.

package protocol

import (
	"encoding/binary"
)

// WSFrame represents a decoded WebSocket frame.
type WSFrame struct {
	IsFinal    bool  // FIN bit
	Opcode     byte  // Operation code
	Masked     bool  // Whether the frame was masked
	PayloadLen int64 // Actual payload length
	MaskKey    [4]byte
	Payload    []byte // Unmasked payload, owned by the caller
}

// frameHeader is the parsed fixed part of a frame.
type frameHeader struct {
	fin        bool
	opcode     byte
	masked     bool
	maskKey    [4]byte
	payloadLen int64
	size       int // encoded header length in bytes
}

// parseHeader decodes the header at the front of raw.
// It returns ErrIncomplete if raw is shorter than the header.
func parseHeader(raw []byte) (frameHeader, error) {
	var h frameHeader
	if len(raw) < MinFrameHeaderLen {
		return h, ErrIncomplete
	}
	h.fin = raw[0]&FinBit != 0
	h.opcode = raw[0] & 0x0F
	h.masked = raw[1]&MaskBit != 0
	h.payloadLen = int64(raw[1] & 0x7F)
	h.size = MinFrameHeaderLen

	switch h.payloadLen {
	case 126:
		if len(raw) < h.size+2 {
			return h, ErrIncomplete
		}
		h.payloadLen = int64(binary.BigEndian.Uint16(raw[h.size:]))
		h.size += 2
	case 127:
		if len(raw) < h.size+8 {
			return h, ErrIncomplete
		}
		ext := binary.BigEndian.Uint64(raw[h.size:])
		if ext>>63 != 0 {
			return h, ErrInvalidFrame
		}
		h.payloadLen = int64(ext)
		h.size += 8
	}

	if h.opcode >= OpcodeClose && (h.payloadLen > MaxControlPayloadLen || !h.fin) {
		return h, ErrInvalidFrame
	}

	if h.masked {
		if len(raw) < h.size+4 {
			return h, ErrIncomplete
		}
		copy(h.maskKey[:], raw[h.size:h.size+4])
		h.size += 4
	}
	return h, nil
}

func (h frameHeader) frame(payload []byte) *WSFrame {
	if h.masked {
		unmaskInPlace(payload, h.maskKey)
	}
	return &WSFrame{
		IsFinal:    h.fin,
		Opcode:     h.opcode,
		Masked:     h.masked,
		PayloadLen: h.payloadLen,
		MaskKey:    h.maskKey,
		Payload:    payload,
	}
}

// unmaskInPlace applies XOR on payload using maskKey.
func unmaskInPlace(buf []byte, key [4]byte) {
	for i := 0; i < len(buf); i++ {
		buf[i] ^= key[i%4]
	}
}
