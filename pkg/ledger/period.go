package ledger

import "time"

// Period is the (month, year) bucket that scopes budgets, categories,
// expenses and reports. Month is 1-12.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ResolvePeriod derives the effective period for an event: from the explicit
// date when one was supplied, otherwise from now.
func ResolvePeriod(explicit *time.Time, now time.Time) Period {
	t := now
	if explicit != nil {
		t = *explicit
	}
	return Period{Month: int(t.Month()), Year: t.Year()}
}
