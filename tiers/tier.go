package tiers

import (
	"math"
	"math/bits"
)

// MaxTiers is the largest number of tiers whose combined capacity can be
// counted in a uint64 element count.
const MaxTiers = 63

// Log2Uint64 computes floor(log2(num)). num must not be 0.
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// IsPow2 is true when size is a perfect power of 2, as every tier capacity is.
func IsPow2(size uint64) bool {
	return size != 0 && bits.OnesCount64(size) == 1
}

// Tier returns the tier holding the zero based logical index i.
//
// It is floor(log2(i + 1)). See doc.go
func Tier(i uint64) uint64 {
	return Log2Uint64(i + 1)
}

// Offset returns the position of the logical index i within its tier.
func Offset(i uint64) uint64 {
	pos := i + 1
	return pos - (uint64(1) << Log2Uint64(pos))
}

// Locate translates the logical index i to its (tier, offset) pair.
//
// For example,
//
//	Locate(0)  = (0, 0)
//	Locate(2)  = (1, 1)
//	Locate(11) = (3, 4)
func Locate(i uint64) (tier uint64, offset uint64) {
	pos := i + 1
	tier = Log2Uint64(pos)
	return tier, pos - (uint64(1) << tier)
}

// Capacity returns the fixed capacity of the given tier, 2^tier.
func Capacity(tier uint64) uint64 {
	return uint64(1) << tier
}

// TotalCapacity returns the combined capacity, 2^n - 1, of a directory of n
// tiers. It saturates at math.MaxUint64.
func TotalCapacity(n uint64) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << n) - 1
}

// FirstIndex returns the logical index of the first element stored in tier.
func FirstIndex(tier uint64) uint64 {
	return (uint64(1) << tier) - 1
}

// LastIndex returns the logical index of the last element tier can hold.
func LastIndex(tier uint64) uint64 {
	return (uint64(2) << tier) - 2
}

// Count returns the number of tiers allocated by a structure holding size
// elements. Tiers are only allocated on demand, so this is the bit length of
// size: 2^(n-1) - 1 < size <= 2^n - 1.
func Count(size uint64) uint64 {
	return uint64(bits.Len64(size))
}

// NeedsTier is the growth trigger. It is true when a structure holding size
// elements in n tiers must allocate tier n before accepting another element.
func NeedsTier(size uint64, n uint64) bool {
	return size >= TotalCapacity(n)
}
