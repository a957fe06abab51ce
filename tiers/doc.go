package tiers

/*

# Tier arithmetic for append only tiered arrays

A tiered array stores its elements in a directory of blocks. Block (tier) i
has a capacity of exactly 2^i elements and is allocated once, at the moment
every earlier tier is full. Blocks are never grown, copied or moved, so the
address of an element is fixed from the moment it is appended.

With n tiers allocated the total capacity is

	1 + 2 + 4 + ... + 2^(n-1) = 2^n - 1

which is the 'all ones' number of bit length n. The growth rule follows
directly: a new tier is needed exactly when the element count reaches 2^n - 1.

## Locating an element

Laying out the logical indices of the first four tiers, and their one based
positions in binary,

	tier 0:  0                         1
	tier 1:  1  2                     10   11
	tier 2:  3  4  5  6              100  101  110  111
	tier 3:  7  8  9 10 11 12 13 14  1000 ...  1111

The tier holding index i is the bit length of the position i+1, minus 1. The
offset within the tier is the position with its most significant bit cleared.
So, for index 11, the position is 1100, the tier is 3 and the offset is 100 = 4.

This makes lookup a single bit scan, regardless of how many tiers exist, and
is the same trick used to navigate post order binary trees by position.

As with the rest of the low level arithmetic in this stack, these functions
place a burden of knowledge on the caller: nothing here checks that an index
is inside the populated range of any particular structure.

*/
