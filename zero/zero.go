package zero

import (
	"fmt"
	"iter"

	"github.com/forestrie/go-tiered/tiers"
	"github.com/forestrie/go-tiered/vector"
)

// Zero is an append only array of T whose elements never move once stored.
type Zero[T any] struct {
	// dir holds one fixed capacity block per tier. dir itself is an ordinary
	// growable vector: growing it relocates the block handles, never the
	// blocks.
	dir   vector.Vector[*vector.Vector[T]]
	gsize uint64
	freed bool
	opts  Options

	// newBlock allocates tier storage. nil means vector.NewFixed
	newBlock func(capacity uint64) (*vector.Vector[T], error)
}

func New[T any](opts ...Option) *Zero[T] {
	return &Zero[T]{opts: NewOptions(opts...)}
}

// Init empties z, releasing any tiers it holds. Options are retained. Init
// is how a freed structure is made usable again.
func (z *Zero[T]) Init() {
	z.release()
	z.dir.Init()
	z.gsize = 0
	z.freed = false
}

// Size returns the number of elements appended.
func (z *Zero[T]) Size() uint64 { return z.gsize }

// Tiers returns the number of tiers allocated.
func (z *Zero[T]) Tiers() uint64 { return z.dir.Size() }

// Cap returns the number of elements z can hold before it must allocate
// another tier.
func (z *Zero[T]) Cap() uint64 { return tiers.TotalCapacity(z.dir.Size()) }

func (z *Zero[T]) Freed() bool { return z.freed }

// Append adds value at logical index Size().
//
// When all allocated tiers are full, exactly one new tier of capacity 2^n is
// allocated first, n being the current tier count. If that fails z is left
// unchanged and the error wraps ErrCapacityExhausted.
func (z *Zero[T]) Append(value T) error {
	if z.freed {
		return ErrFreed
	}

	n := z.dir.Size()
	if tiers.NeedsTier(z.gsize, n) {
		if err := z.addTier(n); err != nil {
			return err
		}
	}

	last, err := z.dir.Last()
	if err != nil {
		return err
	}
	if err = (*last).Add(value); err != nil {
		return err
	}
	z.gsize++
	return nil
}

// addTier allocates tier n. The block is only linked into the directory once
// it has been allocated.
func (z *Zero[T]) addTier(n uint64) error {
	if n >= z.opts.maxTiers() {
		return fmt.Errorf("%w: %d tiers holding %d elements", ErrCapacityExhausted, n, z.gsize)
	}

	capacity := tiers.Capacity(n)
	if !tiers.IsPow2(capacity) {
		return fmt.Errorf("%w: tier %d capacity %d", ErrCapacityExhausted, n, capacity)
	}

	alloc := z.newBlock
	if alloc == nil {
		alloc = vector.NewFixed[T]
	}
	block, err := alloc(capacity)
	if err == nil {
		err = z.dir.Add(block)
	}
	if err != nil {
		if z.opts.Log != nil {
			z.opts.Log.Infof("tier %d, capacity %d, allocation failed: %v", n, capacity, err)
		}
		return fmt.Errorf("%w: tier %d: %w", ErrCapacityExhausted, n, err)
	}

	if z.opts.Log != nil {
		z.opts.Log.Debugf("tier %d allocated: capacity=%d, size=%d", n, capacity, z.gsize)
	}
	return nil
}

// Index returns a reference to the element at logical index i. The
// reference is valid, and refers to the same element, until z is freed.
func (z *Zero[T]) Index(i uint64) (*T, error) {
	if z.freed {
		return nil, ErrFreed
	}
	if i >= z.gsize {
		return nil, fmt.Errorf("%w: %d, size %d", ErrOutOfRange, i, z.gsize)
	}

	tier, offset := tiers.Locate(i)
	block, err := z.dir.Get(tier)
	if err != nil {
		return nil, err
	}
	return block.Index(offset)
}

// Get returns a copy of the element at logical index i.
func (z *Zero[T]) Get(i uint64) (T, error) {
	p, err := z.Index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the element at logical index i. It never changes the size or
// the tier count.
func (z *Zero[T]) Set(i uint64, value T) error {
	p, err := z.Index(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (z *Zero[T]) FirstRef() (*T, error) {
	if z.freed {
		return nil, ErrFreed
	}
	if z.gsize == 0 {
		return nil, ErrEmpty
	}
	return z.Index(0)
}

func (z *Zero[T]) LastRef() (*T, error) {
	if z.freed {
		return nil, ErrFreed
	}
	if z.gsize == 0 {
		return nil, ErrEmpty
	}
	return z.Index(z.gsize - 1)
}

func (z *Zero[T]) First() (T, error) {
	return deref(z.FirstRef())
}

func (z *Zero[T]) Last() (T, error) {
	return deref(z.LastRef())
}

// Tier returns the elements currently held by tier l. The slice aliases the
// tier's storage.
func (z *Zero[T]) Tier(l uint64) ([]T, error) {
	if z.freed {
		return nil, ErrFreed
	}
	block, err := z.dir.Get(l)
	if err != nil {
		return nil, fmt.Errorf("%w: tier %d of %d", ErrOutOfRange, l, z.dir.Size())
	}
	return block.Buffer(), nil
}

// All yields the logical index and value of every element in append order.
func (z *Zero[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		if z.freed {
			return
		}
		var i uint64
		for _, block := range z.dir.Buffer() {
			for _, value := range block.Buffer() {
				if !yield(i, value) {
					return
				}
				i++
			}
		}
	}
}

// Free releases every tier and the directory. z must not be used again
// until Init is called. Free is safe on an empty or already freed structure.
func (z *Zero[T]) Free() {
	if z.freed {
		return
	}
	z.release()
	z.dir.Free()
	z.gsize = 0
	z.freed = true
}

func (z *Zero[T]) release() {
	for _, block := range z.dir.Buffer() {
		block.Free()
	}
}

func deref[T any](p *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}
