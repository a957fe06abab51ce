package vector

import (
	"fmt"
	"math"
)

// alloc returns a buffer of exactly n elements.
//
// Requests the runtime refuses with a recoverable panic (length out of range)
// are reported as ErrAllocation. Exhausting the heap is fatal to the process
// and can not be caught here.
func alloc[T any](n uint64) (e []T, err error) {
	if n > math.MaxInt {
		return nil, fmt.Errorf("%w: %d elements", ErrAllocation, n)
	}
	defer func() {
		if r := recover(); r != nil {
			e = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, int(n)), nil
}
