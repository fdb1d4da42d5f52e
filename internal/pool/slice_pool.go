package pool

import "sync"

// uint32SlicePool reuses the scratch vectors setcmp borrows while
// downsampling one side of a comparison to the other side's bpp.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves a uint32 slice of exactly the requested
// length from the pool, allocating a fresh one if the pooled slice is
// too small. The caller must invoke the returned cleanup function
// (typically with defer) to return the slice to the pool, and must not
// use the slice afterward.
//
// Example:
//
//	values, cleanup := pool.GetUint32Slice(1000)
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}
