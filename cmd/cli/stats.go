package main

import (
	"fmt"

	"lexibloom/internal/spellcheck"
)

func printStats(checker *spellcheck.Checker) {
	fmt.Printf("mode: %s\n", checker.Mode())
	fmt.Printf("words added: %d\n", checker.WordCount())

	bf := checker.Bloom()
	if bf == nil {
		fmt.Println()
		return
	}

	m := bf.BitCount()
	set := bf.SetBitCount()
	fmt.Printf("capacity: %d\n", bf.Capacity())
	fmt.Printf("bits (m): %d (%d bytes)\n", m, (m+7)/8)
	fmt.Printf("hash functions (k): %d\n", bf.HashFunctionCount())
	fmt.Printf("bits set: %d (%.2f%%)\n", set, 100*float64(set)/float64(m))
	fmt.Printf("target error rate: %g\n", bf.ErrorRate())
	fmt.Printf("estimated error rate: %.4f\n", bf.EstimatedFalsePositiveRate(checker.WordCount()))
	fmt.Println()
}
