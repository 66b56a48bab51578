// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate localizes human-facing messages.
package translate

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV overrides the detected locales, as a comma separated list.
const LANG_ENV = "BITRANGE_LANG"

var printer = sync.OnceValue(func() *message.Printer {
	return message.NewPrinter(message.MatchLanguage(Locales()...))
})

// Locales returns the preferred locales, most preferred first.
func Locales() (locales []string) {
	if env := os.Getenv(LANG_ENV); len(env) != 0 {
		for _, tag := range strings.Split(env, ",") {
			tag = strings.TrimSpace(tag)
			if len(tag) != 0 {
				locales = append(locales, tag)
			}
		}
		if len(locales) != 0 {
			return
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bitrange: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
//
// Only human-facing text goes through here. Rendered specs and evaluated
// literals must stay machine readable, so they use fmt directly.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}
