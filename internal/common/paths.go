package common

import (
	"os"
	"path/filepath"
)

// DefaultWordListPath is the dictionary loaded when no path is configured.
const DefaultWordListPath = "misc/wordlist.txt"

const historyFileName = ".lexibloom_history"

// HistoryPath returns the path of the interactive command history file in
// the user's home directory.
func HistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, historyFileName), nil
}
