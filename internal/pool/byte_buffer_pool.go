package pool

import "sync"

// Sizing for the default bundle-payload pool: a buffer accumulates one
// bundle's worth of length-prefixed set-string records before
// compression, so it starts big and is discarded rather than retained
// when a pathological bundle grows it past the threshold.
const (
	BundleBufferDefaultSize  = 1024 * 256        // 256KiB
	BundleBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a reusable append-grown byte buffer. B is exported so
// callers can hand the accumulated bytes straight to a compressor
// without a copy.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes accumulated so far.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the underlying slice.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool is a sync.Pool of ByteBuffers. Buffers grown past
// maxThreshold are dropped on Put instead of retained, so one oversized
// bundle doesn't pin its worst-case allocation for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers start at
// defaultSize capacity. maxThreshold <= 0 disables the retention limit.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var bundleDefaultPool = NewByteBufferPool(BundleBufferDefaultSize, BundleBufferMaxThreshold)

// GetBundleBuffer retrieves a ByteBuffer from the default bundle pool,
// sized for a whole multi-entry payload section.
func GetBundleBuffer() *ByteBuffer {
	return bundleDefaultPool.Get()
}

// PutBundleBuffer returns a ByteBuffer to the default bundle pool.
func PutBundleBuffer(bb *ByteBuffer) {
	bundleDefaultPool.Put(bb)
}
