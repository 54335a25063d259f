package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Printer is safe for concurrent use.
var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,024.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// Plural returns "1 employee" or "3 employees".
func Plural(n int, noun string) string {
	if n == 1 {
		return FormatCount(n) + " " + noun
	}
	return FormatCount(n) + " " + noun + "s"
}
