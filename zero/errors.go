package zero

import "errors"

var (
	ErrOutOfRange        = errors.New("zero: index out of range")
	ErrEmpty             = errors.New("zero: empty")
	ErrFreed             = errors.New("zero: use after free")
	ErrCapacityExhausted = errors.New("zero: capacity exhausted")
	ErrIteratorDone      = errors.New("zero: iterator done")
)
