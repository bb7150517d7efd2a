package main

import (
	"lexibloom/internal/common"
	"lexibloom/internal/filter"
	"lexibloom/internal/spellcheck"
	"lexibloom/internal/wordlist"
)

func initLogging(level string) error {
	if err := common.SetLogLevel(level); err != nil {
		return err
	}
	filter.UseLogger(common.NewLogger("FLTR"))
	wordlist.UseLogger(common.NewLogger("WORD"))
	spellcheck.UseLogger(common.NewLogger("SPEL"))
	return nil
}
