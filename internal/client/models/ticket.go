package models

import "time"

// DateLayout is the calendar-date format used for ticket dates, both on the
// wire and in the local preference store.
const DateLayout = "2006-01-02"

// TicketState is the daily meal-ticket claim status for the current session.
//
// LastTicketDate is a local calendar date in DateLayout format; empty means
// "never claimed". UsedToday is a cached flag that must never be presented
// as true while LastTicketDate differs from the current local date.
type TicketState struct {
	UsedToday      bool
	LastTicketDate string
}

// Day formats t as a local calendar date in DateLayout format.
func Day(t time.Time) string {
	return t.Local().Format(DateLayout)
}
