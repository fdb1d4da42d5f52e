package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 1024, bb.Cap())
}

func TestByteBufferMustWrite(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWrite([]byte("provides "))
	bb.MustWrite([]byte("requires"))

	require.Equal(t, []byte("provides requires"), bb.Bytes())
	require.Equal(t, 17, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 17, "MustWrite grows past the initial capacity")
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some payload"))
	capBefore := bb.Cap()

	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap(), "Reset keeps the allocation")
}

func TestByteBufferPoolReuse(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	bb.MustWrite([]byte("record"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	small := p.Get()
	small.MustWrite(make([]byte, 32))
	p.Put(small) // retained: capacity under threshold

	big := p.Get()
	big.MustWrite(make([]byte, 1024))
	p.Put(big) // discarded: grown past the threshold

	next := p.Get()
	require.LessOrEqual(t, next.Cap(), 64, "oversized buffer must not come back from the pool")
}

func TestByteBufferPoolPutNil(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestBundleBufferDefaults(t *testing.T) {
	bb := GetBundleBuffer()
	defer PutBundleBuffer(bb)

	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), BundleBufferDefaultSize)
}

func TestByteBufferPoolConcurrent(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				bb.MustWrite(make([]byte, i*8+1))
				p.Put(bb)
			}
		}(i)
	}
	wg.Wait()
}
