package zero

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-tiered/tiers"
)

type Options struct {
	// MaxTiers bounds the number of tiers, and so the capacity, to
	// 2^MaxTiers - 1 elements. Zero means tiers.MaxTiers.
	MaxTiers uint64
	// Log receives tier allocation diagnostics. nil disables logging.
	Log logger.Logger
}

type Option func(*Options)

// WithMaxTiers limits growth to n tiers. Appends beyond 2^n - 1 elements fail
// with ErrCapacityExhausted. n is clamped to tiers.MaxTiers.
func WithMaxTiers(n uint64) Option {
	return func(o *Options) {
		o.MaxTiers = min(n, tiers.MaxTiers)
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) maxTiers() uint64 {
	if o.MaxTiers == 0 {
		return tiers.MaxTiers
	}
	return o.MaxTiers
}
