package pool

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("BLM\x1a"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	_, _ = bb.Write([]byte{0x00, 0x07})
	assert.Equal(t, []byte("BLM\x1a\x00\x07"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("12345678"))
		bb.Grow(1)
		assert.Equal(t, 8+MapBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * MapBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * MapBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*MapBufferDefaultSize)
	})
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	data := bytes.Repeat([]byte("wall"), 100_000) // larger than the default size

	t.Run("whole reader", func(t *testing.T) {
		bb := NewByteBuffer(64)
		n, err := bb.ReadFrom(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, int64(len(data)), n)
		assert.Equal(t, data, bb.Bytes())
	})

	t.Run("one byte at a time", func(t *testing.T) {
		bb := NewByteBuffer(0)
		_, err := bb.ReadFrom(iotest.OneByteReader(bytes.NewReader(data[:1000])))
		require.NoError(t, err)
		assert.Equal(t, data[:1000], bb.Bytes())
	})

	t.Run("appends", func(t *testing.T) {
		bb := NewByteBuffer(0)
		_, _ = bb.Write([]byte("head:"))
		_, err := bb.ReadFrom(bytes.NewReader([]byte("tail")))
		require.NoError(t, err)
		assert.Equal(t, []byte("head:tail"), bb.Bytes())
	})

	t.Run("error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		bb := NewByteBuffer(0)
		r := io.MultiReader(bytes.NewReader([]byte("abc")), iotest.ErrReader(boom))
		n, err := bb.ReadFrom(r)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, []byte("abc"), bb.Bytes())
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffers", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		bb = p.Get()
		assert.Equal(t, 0, bb.Len())
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := p.Get()
		bb.Grow(1024)
		_, _ = bb.Write([]byte("x"))
		p.Put(bb)
		assert.Equal(t, 1, bb.Len(), "dropped buffer is not reset")
	})

	t.Run("nil put", func(t *testing.T) {
		assert.NotPanics(t, func() { PutMapBuffer(nil) })
	})
}

func TestMapBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := GetMapBuffer()
			defer PutMapBuffer(bb)

			payload := bytes.Repeat([]byte{byte(i)}, 1000)
			_, _ = bb.Write(payload)
			assert.Equal(t, payload, bb.Bytes())
		}()
	}
	wg.Wait()
}

func BenchmarkMapBuffer_ReadFrom(b *testing.B) {
	data := bytes.Repeat([]byte("sector"), 40_000)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		bb := GetMapBuffer()
		_, _ = bb.ReadFrom(bytes.NewReader(data))
		PutMapBuffer(bb)
	}
}
