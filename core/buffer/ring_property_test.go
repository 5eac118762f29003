// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_property_test.go: Randomized operations checked against a slice model.
package buffer_test

import (
	"math/rand"
	"testing"

	"github.com/momentics/byteringbuffer/core/buffer"
	"github.com/stretchr/testify/require"
)

// model is the reference FIFO: a plain slice, oldest byte first.
type model struct {
	capacity int
	data     []byte
}

func (m *model) add(src []byte) int {
	n := min(len(src), m.capacity-len(m.data))
	m.data = append(m.data, src[:n]...)
	return n
}

func (m *model) overrunAdd(src []byte) {
	m.data = append(m.data, src...)
	if extra := len(m.data) - m.capacity; extra > 0 {
		m.data = append([]byte{}, m.data[extra:]...)
	}
}

func (m *model) pop(n int) []byte {
	n = min(n, len(m.data))
	out := append([]byte{}, m.data[:n]...)
	m.data = append([]byte{}, m.data[n:]...)
	return out
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestRing_PropertyBased(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := rng.Intn(17)
		r := buffer.NewRing(capacity)
		m := &model{capacity: capacity}

		for i := 0; i < 2000; i++ {
			switch op := rng.Intn(6); op {
			case 0:
				src := randomBytes(rng, rng.Intn(2*capacity+2))
				require.Equal(t, m.add(src), r.Add(src), "seed %d step %d add", seed, i)
			case 1:
				src := randomBytes(rng, rng.Intn(3*capacity+2))
				m.overrunAdd(src)
				r.OverrunAdd(src)
			case 2:
				n := rng.Intn(capacity + 2)
				require.Equal(t, m.pop(n), r.PopN(n), "seed %d step %d pop", seed, i)
			case 3:
				n := rng.Intn(capacity + 2)
				m.pop(n)
				r.Drop(n)
			case 4:
				calls := 0
				var got []byte
				r.PeekFunc(func(chunk []byte) {
					calls++
					got = append(got, chunk...)
				})
				require.LessOrEqual(t, calls, 2)
				require.GreaterOrEqual(t, calls, 1)
				require.Equal(t, len(m.data), len(got))
				if len(m.data) > 0 {
					require.Equal(t, m.data, got)
				}
			case 5:
				if rng.Intn(20) == 0 {
					m.data = nil
					r.Clear()
				}
			}

			require.Equal(t, capacity, r.SizeTotal())
			require.Equal(t, len(m.data), r.SizeUsed())
			require.GreaterOrEqual(t, r.SizeUsed(), 0)
			require.LessOrEqual(t, r.SizeUsed(), r.SizeTotal())
			require.Equal(t, r.SizeTotal()-r.SizeUsed(), r.SizeFree())
		}
	}
}

func TestRing_AddKeepsFirstFreeBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		capacity := 1 + rng.Intn(32)
		r := buffer.NewRing(capacity)
		prefill := randomBytes(rng, rng.Intn(capacity+1))
		r.Add(prefill)
		r.Drop(rng.Intn(len(prefill) + 1))

		free := r.SizeFree()
		before := r.PeekN(capacity)
		src := randomBytes(rng, free+1+rng.Intn(8))

		require.Equal(t, free, r.Add(src))
		require.Equal(t, append(before, src[:free]...), r.PeekN(capacity))
	}
}

func TestRing_OverrunKeepsLastCapacityBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		capacity := 1 + rng.Intn(32)
		r := buffer.NewRing(capacity)
		r.OverrunAdd(randomBytes(rng, rng.Intn(2*capacity)))

		src := randomBytes(rng, capacity+1+rng.Intn(3*capacity))
		r.OverrunAdd(src)

		require.Equal(t, capacity, r.SizeUsed())
		require.Equal(t, src[len(src)-capacity:], r.PeekN(capacity))
	}
}
