package zero

import (
	"testing"

	"github.com/forestrie/go-tiered/tiers"
	"github.com/forestrie/go-tiered/zerotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToEmptyAllocatesTierZero(t *testing.T) {
	var z Zero[int]
	assert.Equal(t, uint64(0), z.Tiers())
	assert.Equal(t, uint64(0), z.Cap())

	require.NoError(t, z.Append(7))
	assert.Equal(t, uint64(1), z.Tiers())
	assert.Equal(t, uint64(1), z.Cap())
	assert.Equal(t, uint64(1), z.Size())

	tier0, err := z.Tier(0)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, tier0)
}

func TestAppendCapacityInvariant(t *testing.T) {
	z := New[uint64]()
	for m := uint64(1); m <= 5000; m++ {
		require.NoError(t, z.Append(m))

		// 2^(n-1) - 1 < m <= 2^n - 1
		n := z.Tiers()
		require.Less(t, tiers.TotalCapacity(n-1), m, "m=%d", m)
		require.LessOrEqual(t, m, tiers.TotalCapacity(n), "m=%d", m)
		require.Equal(t, tiers.TotalCapacity(n), z.Cap())
	}
}

func TestAppendOnlyLastTierPartial(t *testing.T) {
	z := New[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, z.Append(i))

		n := z.Tiers()
		for l := uint64(0); l+1 < n; l++ {
			block, err := z.Tier(l)
			require.NoError(t, err)
			require.Len(t, block, int(tiers.Capacity(l)), "tier %d not full", l)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	tc := zerotesting.NewTestContext(t, zerotesting.TestConfig{
		Seed: 1698342521, TestLabelPrefix: "TestIndexRoundTrip"})

	values := tc.RandomValues(3000)
	z := New[uint64](WithLogger(tc.GetLog()))
	zerotesting.Populate(t, z, values)

	require.Equal(t, uint64(len(values)), z.Size())
	for i, want := range values {
		got, err := z.Get(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}
}

func TestIndexStableAcrossGrowth(t *testing.T) {
	z := New[uint64]()
	refs := make([]*uint64, 0, 100)
	for i := uint64(0); i < 100; i++ {
		require.NoError(t, z.Append(i))
		p, err := z.Index(i)
		require.NoError(t, err)
		refs = append(refs, p)
	}
	tiersBefore := z.Tiers()

	zerotesting.PopulateNumbered(t, z, 10000)
	require.Greater(t, z.Tiers(), tiersBefore)

	for i, p := range refs {
		again, err := z.Index(uint64(i))
		require.NoError(t, err)
		require.Same(t, p, again, "index %d moved", i)
		require.Equal(t, uint64(i), *p)
	}

	// writes through an old reference are visible through the structure
	*refs[42] = 4242
	got, err := z.Get(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(4242), got)
}

func TestSet(t *testing.T) {
	z := New[string]()
	zerotesting.Populate(t, z, []string{"a", "b", "c", "d"})
	tiersBefore, sizeBefore := z.Tiers(), z.Size()

	require.NoError(t, z.Set(3, "D"))
	require.NoError(t, z.Set(0, "A"))

	first, err := z.First()
	require.NoError(t, err)
	assert.Equal(t, "A", first)
	last, err := z.Last()
	require.NoError(t, err)
	assert.Equal(t, "D", last)

	assert.Equal(t, tiersBefore, z.Tiers())
	assert.Equal(t, sizeBefore, z.Size())
}

func TestBoundaries(t *testing.T) {
	z := New[int]()

	_, err := z.First()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = z.Last()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = z.FirstRef()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = z.Get(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, z.Set(0, 1), ErrOutOfRange)

	for i := 0; i < 5; i++ {
		require.NoError(t, z.Append(i))
	}
	// tiers 0..2 are allocated, the last has room, but index 5 is not populated
	assert.Equal(t, uint64(7), z.Cap())
	_, err = z.Get(5)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, z.Set(5, 1), ErrOutOfRange)
	_, err = z.Index(1 << 40)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = z.Tier(3)
	require.ErrorIs(t, err, ErrOutOfRange)

	first, err := z.First()
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	last, err := z.LastRef()
	require.NoError(t, err)
	assert.Equal(t, 4, *last)
}

func TestMaxTiersExhaustion(t *testing.T) {
	z := New[int](WithMaxTiers(3))
	for i := 0; i < 7; i++ {
		require.NoError(t, z.Append(i))
	}

	err := z.Append(7)
	require.ErrorIs(t, err, ErrCapacityExhausted)

	// a failed append leaves the structure as it was
	assert.Equal(t, uint64(7), z.Size())
	assert.Equal(t, uint64(3), z.Tiers())
	last, err := z.Last()
	require.NoError(t, err)
	assert.Equal(t, 6, last)
}

func TestWithMaxTiersClamps(t *testing.T) {
	o := NewOptions(WithMaxTiers(200))
	assert.Equal(t, uint64(tiers.MaxTiers), o.MaxTiers)
	assert.Equal(t, uint64(tiers.MaxTiers), NewOptions().maxTiers())
}

func TestFree(t *testing.T) {
	z := New[int]()
	zerotesting.Populate(t, z, []int{1, 2, 3, 4, 5, 6})

	z.Free()
	assert.True(t, z.Freed())
	assert.Equal(t, uint64(0), z.Size())
	assert.Equal(t, uint64(0), z.Tiers())

	require.ErrorIs(t, z.Append(7), ErrFreed)
	_, err := z.Get(0)
	require.ErrorIs(t, err, ErrFreed)
	require.ErrorIs(t, z.Set(0, 1), ErrFreed)
	_, err = z.First()
	require.ErrorIs(t, err, ErrFreed)
	_, err = z.Last()
	require.ErrorIs(t, err, ErrFreed)
	_, err = z.Tier(0)
	require.ErrorIs(t, err, ErrFreed)
	for range z.All() {
		t.Fatal("a freed structure yields nothing")
	}

	// freeing again is harmless
	z.Free()

	z.Init()
	assert.False(t, z.Freed())
	require.NoError(t, z.Append(9))
	got, err := z.First()
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestFreeEmpty(t *testing.T) {
	var z Zero[int]
	z.Free()
	assert.True(t, z.Freed())
	z.Init()
	require.NoError(t, z.Append(1))
}

func TestInitDiscardsContent(t *testing.T) {
	z := New[int](WithMaxTiers(4))
	zerotesting.Populate(t, z, []int{1, 2, 3})
	z.Init()
	assert.Equal(t, uint64(0), z.Size())
	assert.Equal(t, uint64(0), z.Tiers())

	// options survive Init
	for i := 0; i < 15; i++ {
		require.NoError(t, z.Append(i))
	}
	require.ErrorIs(t, z.Append(15), ErrCapacityExhausted)
}

func TestAll(t *testing.T) {
	z := New[uint64]()
	zerotesting.PopulateNumbered(t, z, 100)

	var want uint64
	for i, v := range z.All() {
		require.Equal(t, want, i)
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, uint64(100), want)

	var seen int
	for range z.All() {
		seen++
		if seen == 10 {
			break
		}
	}
	assert.Equal(t, 10, seen)
}

func TestAppendMillion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1e6 element scenario in short mode")
	}

	const count = 1000000
	z := New[uint64]()
	zerotesting.PopulateNumbered(t, z, count)

	require.Equal(t, uint64(count), z.Size())
	require.Equal(t, tiers.Count(count), z.Tiers())

	tier, err := z.Tier(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, tier)
	tier, err = z.Tier(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, tier)
	tier, err = z.Tier(2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 4, 5, 6}, tier)

	// tier L holds the logical indices [2^L - 1, 2^(L+1) - 2]
	for l := uint64(0); l < z.Tiers(); l++ {
		tier, err = z.Tier(l)
		require.NoError(t, err)
		require.NotEmpty(t, tier)
		require.Equal(t, tiers.FirstIndex(l), tier[0])
		if l+1 < z.Tiers() {
			require.Equal(t, tiers.LastIndex(l), tier[len(tier)-1])
		}
	}

	got, err := z.Get(999999)
	require.NoError(t, err)
	assert.Equal(t, uint64(999999), got)
	last, err := z.Last()
	require.NoError(t, err)
	assert.Equal(t, uint64(999999), last)
}
