package zerotesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

// Appender is satisfied by the tiered array and by anything else tests want
// to populate the same way.
type Appender[T any] interface {
	Append(value T) error
}

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// Seed for the value generator. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// LogLevel defaults to "NOOP"
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NumberedValues returns [0, 1, ..., n-1]
func NumberedValues(n uint64) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i)
	}
	return values
}

// RandomValues returns n values from the context's seeded generator.
func (c *TestContext) RandomValues(n uint64) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = c.rng.Uint64()
	}
	return values
}

// Populate appends every value to a, failing the test on the first error.
func Populate[T any](t *testing.T, a Appender[T], values []T) {
	t.Helper()
	for i, v := range values {
		require.NoError(t, a.Append(v), "append %d", i)
	}
}

// PopulateNumbered appends [0, n) to a.
func PopulateNumbered(t *testing.T, a Appender[uint64], n uint64) {
	t.Helper()
	for i := uint64(0); i < n; i++ {
		require.NoError(t, a.Append(i), "append %d", i)
	}
}
