package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"lexibloom/internal/common"
	"lexibloom/internal/filter"
	"lexibloom/internal/spellcheck"
)

type config struct {
	WordLists []string `short:"w" long:"wordlist" description:"word list file, one word per line; may be specified multiple times"`
	ErrorRate float64  `short:"p" long:"errorrate" description:"target false positive rate of the bloom filter"`
	Hash      string   `long:"hash" description:"secondary hash (jenkins, fnv, murmur3, xxhash)"`
	Exact     bool     `long:"exact" description:"keep words in an exact set instead of a bloom filter"`
	LogLevel  string   `long:"loglevel" description:"logging level (trace, debug, info, warn, error, critical, off)"`
	NoHistory bool     `long:"nohistory" description:"do not read or write the command history file"`
}

func loadConfig() (*config, error) {
	cfg := config{
		ErrorRate: spellcheck.DefaultOptions.ErrorRate,
		Hash:      "jenkins",
		LogLevel:  "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}
	if len(args) != 0 {
		parser.WriteHelp(os.Stderr)
		return nil, fmt.Errorf("unexpected arguments: %v", args)
	}
	if len(cfg.WordLists) == 0 {
		cfg.WordLists = []string{common.DefaultWordListPath}
	}
	if _, ok := filter.LookupStringHash(cfg.Hash); !ok {
		return nil, fmt.Errorf("unknown hash %q", cfg.Hash)
	}
	return &cfg, nil
}

// checkerOptions translates the command line into spellcheck options.
func (cfg *config) checkerOptions() []spellcheck.Option {
	h, _ := filter.LookupStringHash(cfg.Hash)
	return []spellcheck.Option{
		spellcheck.WithBloomFilter(!cfg.Exact),
		spellcheck.WithErrorRate(cfg.ErrorRate),
		spellcheck.WithSecondaryHash(h),
	}
}
