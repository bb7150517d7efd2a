package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"lexibloom/internal/common"
	"lexibloom/internal/spellcheck"
	"lexibloom/internal/wordlist"
)

var commands = []string{"check", "add", "stats", "history", "help", "exit", "quit"}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if err := initLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	start := time.Now()
	words, err := wordlist.LoadFiles(context.Background(), cfg.WordLists...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load word list: %v\n", err)
		return 1
	}
	checker, err := spellcheck.New(words, cfg.checkerOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build dictionary: %v\n", err)
		return 1
	}
	common.LogDuration(start, "loaded %d words into %s dictionary", len(words), checker.Mode())

	fmt.Println("lexibloom - bloom filter spell checker")
	fmt.Println("commands: check <word> | add <word> | stats | history [n] | exit")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var out []string
		for _, c := range commands {
			if strings.HasPrefix(c, strings.ToLower(prefix)) {
				out = append(out, c)
			}
		}
		return out
	})

	var history *History
	if !cfg.NoHistory {
		history, err = newHistory(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			}
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if history != nil {
			history.add(input)
		}

		if !execute(checker, history, strings.Fields(input)) {
			break
		}
	}

	if history != nil {
		if err := history.save(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save history: %v\n", err)
		}
	}
	return 0
}

// execute runs one command line and reports whether the loop should continue.
func execute(checker *spellcheck.Checker, history *History, parts []string) bool {
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "check":
		if len(parts) != 2 {
			fmt.Println("usage: check <word>")
			return true
		}
		printVerdict(checker, parts[1])
	case "add":
		if len(parts) != 2 {
			fmt.Println("usage: add <word>")
			return true
		}
		if err := checker.Add(parts[1]); err != nil {
			fmt.Printf("add error: %v\n", err)
			return true
		}
		fmt.Println("ok")
	case "stats":
		printStats(checker)
	case "history":
		if history == nil {
			fmt.Println("history is disabled")
			return true
		}
		n := 0
		if len(parts) == 2 {
			v, err := strconv.Atoi(parts[1])
			if err != nil || v < 1 {
				fmt.Println("history: n must be a positive integer")
				return true
			}
			n = v
		}
		for i, c := range history.list(n) {
			fmt.Printf("%4d  %s\n", i+1, c)
		}
	case "help":
		fmt.Println("commands: check <word> | add <word> | stats | history [n] | exit")
	case "exit", "quit":
		return false
	default:
		// A lone word is checked directly.
		if len(parts) == 1 {
			printVerdict(checker, parts[0])
			return true
		}
		fmt.Println("unknown command")
	}
	return true
}

func printVerdict(checker *spellcheck.Checker, word string) {
	if checker.IsWordValid(word) {
		fmt.Printf("Given word %s has correct spelling\n", word)
	} else {
		fmt.Printf("Given word %s does not have correct spelling\n", word)
	}
}
