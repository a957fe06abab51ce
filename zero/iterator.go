package zero

// Iterator is a cursor over the logical index space of a Zero. It does not
// own the structure and is not a snapshot: Done compares the cursor with the
// live size.
type Iterator[T any] struct {
	z       *Zero[T]
	current uint64
}

func NewIterator[T any](z *Zero[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.Init(z)
	return it
}

// Init binds it to z and rewinds it.
func (it *Iterator[T]) Init(z *Zero[T]) {
	it.z = z
	it.current = 0
}

// Done is true once the cursor reaches the size of the bound structure, or
// when nothing is bound.
func (it *Iterator[T]) Done() bool {
	if it.z == nil {
		return true
	}
	return it.current >= it.z.Size()
}

func (it *Iterator[T]) CurrentIndex() uint64 { return it.current }

func (it *Iterator[T]) Iterable() *Zero[T] { return it.z }

// PeekRef returns a reference to the element at the cursor.
func (it *Iterator[T]) PeekRef() (*T, error) {
	if it.Done() {
		return nil, ErrIteratorDone
	}
	return it.z.Index(it.current)
}

// NextRef returns a reference to the element at the cursor and advances.
func (it *Iterator[T]) NextRef() (*T, error) {
	p, err := it.PeekRef()
	if err != nil {
		return nil, err
	}
	it.current++
	return p, nil
}

func (it *Iterator[T]) Peek() (T, error) {
	return deref(it.PeekRef())
}

func (it *Iterator[T]) Next() (T, error) {
	return deref(it.NextRef())
}

// Reset rewinds the cursor to the first element.
func (it *Iterator[T]) Reset() {
	it.current = 0
}
