// Package spellcheck answers whether a word appears in a dictionary, using
// either a bloom filter or an exact set.
package spellcheck

import (
	"fmt"

	"lexibloom/internal/filter"
)

const (
	ModeBloom = "bloom"
	ModeExact = "exact"
)

// Checker holds a dictionary. It is not safe for concurrent use.
type Checker struct {
	opts  Options
	words filter.Filter[string]
	bloom *filter.BloomFilter[string] // nil in exact mode
	count int
}

// New builds a checker over words. In bloom mode the filter is sized for
// len(words) at the configured error rate, so words must not be empty.
func New(words []string, optFns ...Option) (*Checker, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Checker{opts: opts}
	if opts.UseBloomFilter {
		bf, err := filter.NewWithErrorRate(len(words), opts.SecondaryHash, opts.ErrorRate)
		if err != nil {
			return nil, fmt.Errorf("spellcheck: size bloom filter: %w", err)
		}
		c.bloom = bf
		c.words = bf
	} else {
		c.words = filter.NewExactFilter[string]()
	}

	for _, w := range words {
		if err := c.Add(w); err != nil {
			return nil, err
		}
	}
	log.Infof("%s dictionary ready with %d words", c.Mode(), len(words))
	return c, nil
}

// Add inserts word into the dictionary.
func (c *Checker) Add(word string) error {
	if err := c.words.Add(word); err != nil {
		return fmt.Errorf("spellcheck: add %q: %w", word, err)
	}
	c.count++
	return nil
}

// IsWordValid returns true if word is considered correctly spelled. In bloom
// mode a misspelled word is occasionally accepted.
func (c *Checker) IsWordValid(word string) bool {
	// String items are never nil, so Contains cannot fail here.
	ok, err := c.words.Contains(word)
	if err != nil {
		log.Errorf("lookup %q: %v", word, err)
		return false
	}
	return ok
}

// Mode returns ModeBloom or ModeExact.
func (c *Checker) Mode() string {
	if c.bloom != nil {
		return ModeBloom
	}
	return ModeExact
}

// Bloom returns the underlying bloom filter, or nil in exact mode.
func (c *Checker) Bloom() *filter.BloomFilter[string] {
	return c.bloom
}

// WordCount returns the number of Add calls that succeeded, duplicates
// included.
func (c *Checker) WordCount() int {
	return c.count
}
