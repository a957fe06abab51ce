// Package vector provides a generic, contiguous, growable array.
//
// A Vector grows geometrically (0, 1, 2, 4, ...) by allocating a new buffer
// and copying the old one, so the address of an element may change whenever
// the vector grows. Vectors created with NewFixed or InitFixed have an exact
// capacity that never changes, which makes their element addresses stable
// for the life of the vector. The tiered array in package zero relies on this.
//
// The zero value is an uninitialized vector: its size and capacity are 0 and
// calls that would need an existing buffer report ErrNotInitialized. Add
// initializes the vector on demand.
//
// Vectors are not safe for concurrent use.
package vector
