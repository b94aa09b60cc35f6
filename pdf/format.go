package pdf

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale-fixed USD formatting; en-US grouping via x/text.
var usd = message.NewPrinter(language.AmericanEnglish)

func money(v float64) string {
	return usd.Sprintf("$%.2f", v)
}

func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func longDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return longDate(*t)
}

// pinCreationDate keeps output byte-identical across runs: the embedded
// creation date comes from the document's own timestamps, never the clock.
func pinCreationDate(times ...time.Time) time.Time {
	for _, t := range times {
		if !t.IsZero() {
			return t.UTC()
		}
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
}

// Shared palette (matches the web invoice detail view).
var (
	colPrimary  = rgb{37, 99, 235}
	colText     = rgb{51, 51, 51}
	colMuted    = rgb{102, 102, 102}
	colRowLine  = rgb{221, 221, 221}
	colHeaderBg = rgb{248, 249, 250}
	colDue      = rgb{229, 62, 62}
	colSettled  = rgb{56, 161, 105}
)

type rgb struct{ r, g, b int }
