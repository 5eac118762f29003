// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for byteringbuffer components.

package benchmarks

import (
	"bytes"
	"io"
	"testing"

	"github.com/momentics/byteringbuffer/core/buffer"
	"github.com/momentics/byteringbuffer/pool"
	"github.com/momentics/byteringbuffer/protocol"
)

// BenchmarkScratchPoolAllocation tests scratch pool allocation performance.
func BenchmarkScratchPoolAllocation(b *testing.B) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			bp := pool.Scratch.Get(4096)
			pool.Scratch.Put(bp)
		}
	})
}

// BenchmarkRingThroughput pushes and pops across the storage end.
func BenchmarkRingThroughput(b *testing.B) {
	r := buffer.NewRing(1024)
	in := make([]byte, 700)
	out := make([]byte, 700)
	b.SetBytes(int64(len(in)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(in)
		r.Pop(out)
	}
}

// BenchmarkRingOverrun keeps the ring full and overwrites the oldest bytes.
func BenchmarkRingOverrun(b *testing.B) {
	r := buffer.NewRing(1024)
	in := make([]byte, 300)
	b.SetBytes(int64(len(in)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.OverrunAdd(in)
	}
}

// BenchmarkRingCopy streams a payload through a small ring.
func BenchmarkRingCopy(b *testing.B) {
	payload := bytes.Repeat([]byte("byteringbuffer"), 4096)
	b.SetBytes(int64(len(payload)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := buffer.NewRing(4096)
		src := bytes.NewReader(payload)
		for {
			if _, err := r.ReadFrom(io.LimitReader(src, 1500)); err != nil {
				b.Fatal(err)
			}
			if r.IsEmpty() {
				break
			}
			if _, err := r.WriteTo(io.Discard); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkWebSocketFrameEncoding tests WebSocket frame encoding into a ring.
func BenchmarkWebSocketFrameEncoding(b *testing.B) {
	r := buffer.NewRing(4096)
	f := &protocol.WSFrame{
		IsFinal:    true,
		Opcode:     protocol.OpcodeBinary,
		PayloadLen: 1024,
		Payload:    make([]byte, 1024),
	}
	b.SetBytes(f.PayloadLen)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := protocol.EncodeFrameToRing(r, f, false); err != nil {
			b.Fatal(err)
		}
		r.Clear()
	}
}

// BenchmarkFrameReader decodes a stream of masked frames.
func BenchmarkFrameReader(b *testing.B) {
	var stream bytes.Buffer
	for i := 0; i < 64; i++ {
		raw, err := protocol.EncodeFrameToBytesWithMask(&protocol.WSFrame{
			IsFinal:    true,
			Opcode:     protocol.OpcodeText,
			PayloadLen: 512,
			MaskKey:    [4]byte{1, 2, 3, 4},
			Payload:    bytes.Repeat([]byte{'x'}, 512),
		}, true)
		if err != nil {
			b.Fatal(err)
		}
		stream.Write(raw)
	}
	b.SetBytes(int64(stream.Len()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fr, err := protocol.NewFrameReader(bytes.NewReader(stream.Bytes()), nil)
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := fr.Next(); err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
	}
}
