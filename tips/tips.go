// Package tips picks a deterministic tip of the day: the same calendar
// date always yields the same tip, with no persisted state.
package tips

import (
	"time"

	c "expense-tracker-tui/constants"
)

var tips = []string{
	"Record expenses the day they happen - small ones add up fastest.",
	"Give every recurring bill its own category to see where the money goes.",
	"Review your balance at the end of each week, not each purchase.",
	"Enter income as positive amounts and expenses as negative ones.",
	"A category with a suspiciously round total usually hides a guess.",
	"Clear out test entries before trusting the totals.",
	"Set aside savings first, then track what remains.",
	"If a purchase needs a justification, it belongs in the ledger.",
}

// ForDate returns the tip for an ISO date string. The index is the sum of
// the date's character codes modulo the number of tips.
func ForDate(date string) string {
	sum := 0
	for _, b := range []byte(date) {
		sum += int(b)
	}

	return tips[sum%len(tips)]
}

// ForToday returns the tip for the current calendar date.
func ForToday() string {
	return ForDate(time.Now().Format(c.ISODateFormat))
}
