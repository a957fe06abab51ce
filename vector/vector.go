package vector

import "fmt"

// Vector is a contiguous growable array of T.
type Vector[T any] struct {
	// len(e) is the allocated capacity, size counts the populated prefix
	e           []T
	size        uint64
	fixed       bool
	initialized bool
}

// New returns an initialized, empty vector
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.Init()
	return v
}

// NewWithCap returns an empty vector with capacity for n elements. The vector
// grows as normal once n is exceeded.
func NewWithCap[T any](n uint64) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.InitWithCap(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFixed returns an empty vector whose capacity is exactly n and never
// changes. Add fails with ErrFull once n elements are present.
func NewFixed[T any](n uint64) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.InitFixed(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Init resets v to an empty, initialized vector with no buffer.
func (v *Vector[T]) Init() {
	v.e = nil
	v.size = 0
	v.fixed = false
	v.initialized = true
}

// InitWithCap resets v to an empty vector with capacity for n elements.
// On failure v is left untouched.
func (v *Vector[T]) InitWithCap(n uint64) error {
	e, err := alloc[T](n)
	if err != nil {
		return err
	}
	v.e = e
	v.size = 0
	v.fixed = false
	v.initialized = true
	return nil
}

// InitFixed resets v to an empty vector with a fixed capacity of exactly n.
// On failure v is left untouched.
func (v *Vector[T]) InitFixed(n uint64) error {
	if err := v.InitWithCap(n); err != nil {
		return err
	}
	v.fixed = true
	return nil
}

func (v *Vector[T]) Initialized() bool { return v != nil && v.initialized }
func (v *Vector[T]) Fixed() bool       { return v != nil && v.fixed }

// Size returns the number of elements in v. It is 0 for a nil or
// uninitialized vector.
func (v *Vector[T]) Size() uint64 {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the allocated capacity of v. It is 0 for a nil or
// uninitialized vector.
func (v *Vector[T]) Cap() uint64 {
	if v == nil {
		return 0
	}
	return uint64(len(v.e))
}

// grow replaces the buffer with one of exactly ncap elements, copying the
// populated prefix. Addresses previously obtained from Index are invalidated.
func (v *Vector[T]) grow(ncap uint64) error {
	e, err := alloc[T](ncap)
	if err != nil {
		return err
	}
	copy(e, v.e[:v.size])
	v.e = e
	return nil
}

// Add appends value, doubling the capacity when v is full. An uninitialized
// vector is initialized first.
func (v *Vector[T]) Add(value T) error {
	if !v.initialized {
		v.Init()
	}
	if v.size >= uint64(len(v.e)) {
		if v.fixed {
			return fmt.Errorf("%w: capacity %d", ErrFull, len(v.e))
		}
		ncap := uint64(1)
		if len(v.e) != 0 {
			ncap = uint64(len(v.e)) * 2
		}
		if err := v.grow(ncap); err != nil {
			return err
		}
	}
	v.e[v.size] = value
	v.size++
	return nil
}

// SetSize changes the number of elements in v. Elements exposed by growing
// the size are zero valued. If n exceeds the capacity, the buffer is
// reallocated to exactly n, unless v is fixed, in which case ErrFull is
// returned.
func (v *Vector[T]) SetSize(n uint64) error {
	if !v.Initialized() {
		return ErrNotInitialized
	}
	if n > uint64(len(v.e)) {
		if v.fixed {
			return fmt.Errorf("%w: size %d exceeds capacity %d", ErrFull, n, len(v.e))
		}
		if err := v.grow(n); err != nil {
			return err
		}
	}
	// Elements dropped by a shrink are cleared so they can be collected and
	// so they read as zero if the size is later grown over them.
	var zero T
	for i := n; i < v.size; i++ {
		v.e[i] = zero
	}
	v.size = n
	return nil
}

// SetCap reallocates v to a capacity of exactly n. n may not be smaller than
// the current size.
func (v *Vector[T]) SetCap(n uint64) error {
	if !v.Initialized() {
		return ErrNotInitialized
	}
	if v.fixed {
		return ErrFixedCapacity
	}
	if n < v.size {
		return fmt.Errorf("%w: capacity %d below size %d", ErrOutOfRange, n, v.size)
	}
	if n == uint64(len(v.e)) {
		return nil
	}
	return v.grow(n)
}

// Index returns a reference to element i. The reference remains valid until
// v next grows, or forever if v is fixed.
func (v *Vector[T]) Index(i uint64) (*T, error) {
	if i >= v.Size() {
		return nil, fmt.Errorf("%w: %d, size %d", ErrOutOfRange, i, v.Size())
	}
	return &v.e[i], nil
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i uint64) (T, error) {
	p, err := v.Index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces element i. It can not be used to extend v.
func (v *Vector[T]) Set(i uint64, value T) error {
	p, err := v.Index(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (v *Vector[T]) First() (*T, error) {
	if v.Size() == 0 {
		return nil, ErrEmpty
	}
	return &v.e[0], nil
}

func (v *Vector[T]) Last() (*T, error) {
	if v.Size() == 0 {
		return nil, ErrEmpty
	}
	return &v.e[v.size-1], nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v.Size() == 0 {
		return zero, ErrEmpty
	}
	v.size--
	value := v.e[v.size]
	v.e[v.size] = zero
	return value, nil
}

// Buffer returns the populated prefix of the underlying buffer. The slice
// aliases v, writes through it are visible to v.
func (v *Vector[T]) Buffer() []T {
	if v == nil {
		return nil
	}
	return v.e[:v.size:v.size]
}

// Free releases the buffer and returns v to the uninitialized state. It is
// safe to call more than once.
func (v *Vector[T]) Free() {
	if v == nil {
		return
	}
	v.e = nil
	v.size = 0
	v.fixed = false
	v.initialized = false
}
