package zero

/*

# Zero: a growable array that never moves its elements

Zero stores its elements in a directory of fixed capacity blocks, one per tier,
where tier i holds exactly 2^i elements:

	tier 0: [ 0 ]
	tier 1: [ 1  2 ]
	tier 2: [ 3  4  5  6 ]
	tier 3: [ 7  8  9 10 11 12 13 14 ]

A tier is allocated, at its final size, only when every earlier tier is full.
Existing tiers are never grown or copied, so a reference obtained from Index
stays valid, and keeps pointing at the same element, for as long as the
structure lives. Appends remain O(1) amortized because the tier sizes double.

Translating a logical index to a (tier, offset) pair is a single bit scan.
See package tiers for the arithmetic.

The zero value of Zero is an empty structure ready for use. After Free every
operation reports ErrFreed until Init is called.

Zero is not safe for concurrent use. Callers needing concurrent access must
synchronize externally.

*/
