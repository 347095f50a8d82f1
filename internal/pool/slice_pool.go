package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 scratch slice of length size.
//
// The slice contents are unspecified. The caller must invoke the returned
// cleanup function, typically with defer, once the slice is no longer used.
//
// Example:
//
//	sorted, cleanup := pool.GetFloat64Slice(len(values))
//	defer cleanup()
//	copy(sorted, values)
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
