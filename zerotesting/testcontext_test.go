package zerotesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceAppender[T any] struct{ values []T }

func (s *sliceAppender[T]) Append(v T) error {
	s.values = append(s.values, v)
	return nil
}

func TestRandomValuesAreSeeded(t *testing.T) {
	cfg := TestConfig{Seed: 1698342521, TestLabelPrefix: "TestRandomValuesAreSeeded"}
	a := NewTestContext(t, cfg)
	b := NewTestContext(t, cfg)
	require.NotNil(t, a.GetLog())

	assert.Equal(t, a.RandomValues(64), b.RandomValues(64))
}

func TestPopulate(t *testing.T) {
	var s sliceAppender[uint64]
	PopulateNumbered(t, &s, 5)
	assert.Equal(t, NumberedValues(5), s.values)

	var strs sliceAppender[string]
	Populate[string](t, &strs, []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, strs.values)
}
