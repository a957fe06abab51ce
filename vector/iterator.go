package vector

// Iterator is a cursor over a Vector. It does not own the vector and is not a
// snapshot: Done is evaluated against the live size of the vector.
type Iterator[T any] struct {
	v       *Vector[T]
	current uint64
}

func NewIterator[T any](v *Vector[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.Init(v)
	return it
}

// Init binds it to v and rewinds it.
func (it *Iterator[T]) Init(v *Vector[T]) {
	it.v = v
	it.current = 0
}

// Done is true when the cursor has passed the last element, or there is no
// vector bound.
func (it *Iterator[T]) Done() bool {
	if it.v == nil {
		return true
	}
	return it.current >= it.v.Size()
}

func (it *Iterator[T]) CurrentIndex() uint64 { return it.current }

// Iterable returns the vector the iterator is bound to.
func (it *Iterator[T]) Iterable() *Vector[T] { return it.v }

// NextRef returns a reference to the current element and advances.
func (it *Iterator[T]) NextRef() (*T, error) {
	if it.Done() {
		return nil, ErrIteratorDone
	}
	p, err := it.v.Index(it.current)
	if err != nil {
		return nil, err
	}
	it.current++
	return p, nil
}

// Next returns a copy of the current element and advances.
func (it *Iterator[T]) Next() (T, error) {
	p, err := it.NextRef()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Peek returns a copy of the current element without advancing.
func (it *Iterator[T]) Peek() (T, error) {
	var zero T
	if it.Done() {
		return zero, ErrIteratorDone
	}
	return it.v.Get(it.current)
}

// PeekFirst returns the first element of the vector regardless of the cursor.
func (it *Iterator[T]) PeekFirst() (T, error) {
	var zero T
	p, err := it.v.First()
	if err != nil {
		return zero, err
	}
	return *p, nil
}

// PeekLast returns the last element of the vector regardless of the cursor.
func (it *Iterator[T]) PeekLast() (T, error) {
	var zero T
	p, err := it.v.Last()
	if err != nil {
		return zero, err
	}
	return *p, nil
}

func (it *Iterator[T]) Reset() {
	it.current = 0
}
