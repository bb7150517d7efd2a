package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	flags "github.com/jessevdk/go-flags"

	"lexibloom/internal/benchmark"
	"lexibloom/internal/common"
	"lexibloom/internal/filter"
	"lexibloom/internal/spellcheck"
	"lexibloom/internal/wordlist"
)

type config struct {
	WordLists  []string `short:"w" long:"wordlist" description:"word list file, one word per line; may be specified multiple times"`
	Iterations int      `short:"n" long:"iterations" description:"number of random words to query"`
	Length     int      `short:"l" long:"length" description:"length of each random word"`
	ErrorRate  float64  `short:"p" long:"errorrate" description:"target false positive rate of the bloom filter"`
	Seed       int64    `long:"seed" description:"random seed"`
	Hash       string   `long:"hash" description:"secondary hash (jenkins, fnv, murmur3, xxhash)"`
	LogLevel   string   `long:"loglevel" description:"logging level (trace, debug, info, warn, error, critical, off)"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func main() {
	cfg := config{
		Iterations: benchmark.DefaultConfig.Iterations,
		Length:     benchmark.DefaultConfig.WordLength,
		ErrorRate:  spellcheck.DefaultOptions.ErrorRate,
		Seed:       time.Now().UnixNano(),
		Hash:       "jenkins",
		LogLevel:   "warn",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(cfg.WordLists) == 0 {
		cfg.WordLists = []string{common.DefaultWordListPath}
	}
	secondary, ok := filter.LookupStringHash(cfg.Hash)
	if !ok {
		fatalf("unknown hash %q\n", cfg.Hash)
	}

	if err := common.SetLogLevel(cfg.LogLevel); err != nil {
		fatalf("%v\n", err)
	}
	filter.UseLogger(common.NewLogger("FLTR"))
	wordlist.UseLogger(common.NewLogger("WORD"))
	spellcheck.UseLogger(common.NewLogger("SPEL"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	words, err := wordlist.LoadFiles(ctx, cfg.WordLists...)
	if err != nil {
		fatalf("failed to load word list: %v\n", err)
	}
	bloom, err := spellcheck.New(words,
		spellcheck.WithErrorRate(cfg.ErrorRate), spellcheck.WithSecondaryHash(secondary))
	if err != nil {
		fatalf("failed to build bloom dictionary: %v\n", err)
	}
	exact, err := spellcheck.New(words, spellcheck.WithBloomFilter(false))
	if err != nil {
		fatalf("failed to build exact dictionary: %v\n", err)
	}
	common.LogDuration(start, "loaded %d words", len(words))

	start = time.Now()
	res, err := benchmark.Run(ctx, bloom, exact, benchmark.Config{
		Iterations: cfg.Iterations,
		WordLength: cfg.Length,
		Seed:       cfg.Seed,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fatalf("benchmark failed: %v\n", err)
	}
	common.LogDuration(start, "ran %d queries", res.Iterations)

	bf := bloom.Bloom()
	fmt.Println()
	fmt.Printf("Filter: m=%d k=%d target=%g\n", bf.BitCount(), bf.HashFunctionCount(), bf.ErrorRate())
	fmt.Printf("Number of iterations: %d\n", res.Iterations)
	fmt.Printf("Number of False Positives: %d\n", res.FalsePositives)
	fmt.Printf("False positive rate: %v\n", res.Rate())
}
