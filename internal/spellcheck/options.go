package spellcheck

import "lexibloom/internal/filter"

type Options struct {
	UseBloomFilter bool
	ErrorRate      float64
	SecondaryHash  filter.HashFunc[string]
}

var DefaultOptions = Options{
	UseBloomFilter: true,
	ErrorRate:      0.01,
}

type Option func(*Options)

func WithBloomFilter(enabled bool) Option {
	return func(o *Options) {
		o.UseBloomFilter = enabled
	}
}

func WithErrorRate(p float64) Option {
	return func(o *Options) {
		o.ErrorRate = p
	}
}

// WithSecondaryHash overrides the default Jenkins secondary hash.
func WithSecondaryHash(h filter.HashFunc[string]) Option {
	return func(o *Options) {
		o.SecondaryHash = h
	}
}
