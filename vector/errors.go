package vector

import "errors"

var (
	ErrNotInitialized = errors.New("vector: not initialized")
	ErrOutOfRange     = errors.New("vector: index out of range")
	ErrEmpty          = errors.New("vector: empty")
	ErrFull           = errors.New("vector: fixed capacity exhausted")
	ErrFixedCapacity  = errors.New("vector: capacity is fixed")
	ErrAllocation     = errors.New("vector: allocation failed")
	ErrIteratorDone   = errors.New("vector: iterator done")
)
