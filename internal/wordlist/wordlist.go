// Package wordlist loads dictionaries stored one word per line.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFiles bounds how many files LoadFiles reads at once.
const maxConcurrentFiles = 8

// Read returns the words in r, one per line. Surrounding whitespace is
// trimmed and blank lines are skipped. Order is preserved.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFile reads the word list at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	start := time.Now()
	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	log.Debugf("read %d words from %s in %v", len(words), path, time.Since(start))
	return words, nil
}

// LoadFiles reads several word lists concurrently and concatenates them in
// argument order. The first failure cancels the remaining reads.
func LoadFiles(ctx context.Context, paths ...string) ([]string, error) {
	results := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			words, err := LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, words := range results {
		total += len(words)
	}
	all := make([]string, 0, total)
	for _, words := range results {
		all = append(all, words...)
	}
	log.Infof("loaded %d words from %d files", total, len(paths))
	return all, nil
}
