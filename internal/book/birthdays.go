package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// UpcomingEntry is one result of the upcoming-birthday query.
type UpcomingEntry struct {
	// Name is the contact's name.
	Name string

	// Congratulate is the day the birthday should be celebrated: the next
	// occurrence of the birthday, rolled forward to Monday when it lands
	// on a weekend.
	Congratulate time.Time
}

// DateString formats the congratulation date in the display layout.
func (e UpcomingEntry) DateString() string {
	return e.Congratulate.Format(config.DateFormatDisplay)
}

// Upcoming returns the contacts whose next birthday occurrence falls within
// the standard one-week window from today.
func (b *AddressBook) Upcoming(today time.Time) []UpcomingEntry {
	return b.UpcomingWithin(today, config.DefaultWindowDays)
}

// UpcomingWithin returns the contacts whose next birthday occurrence falls
// within windowDays (inclusive) from today, in collection iteration order.
//
// For every record with a birthday the day/month is projected onto today's
// year; a date already passed is advanced to next year. The entry is kept
// when 0 <= days-until <= windowDays, counting in whole days. An occurrence
// on Saturday or Sunday is rolled forward to the following Monday; the
// stored birthday itself is never changed.
//
// A Feb 29 birthday projected onto a non-leap year normalizes to March 1
// (time.Date behavior); the March 1 occurrence then participates in the
// window and the weekend roll like any other date.
func (b *AddressBook) UpcomingWithin(today time.Time, windowDays int) []UpcomingEntry {
	// Dates are rebuilt in UTC so that day arithmetic is exact multiples
	// of 24h regardless of the caller's zone or DST transitions.
	y, m, d := today.Date()
	todayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var upcoming []UpcomingEntry
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}
		born := rec.Birthday.Date()

		next := time.Date(todayStart.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(todayStart) {
			next = time.Date(todayStart.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
		}

		days := int(next.Sub(todayStart).Hours() / 24)
		if days < 0 || days > windowDays {
			continue
		}

		upcoming = append(upcoming, UpcomingEntry{
			Name:         rec.Name,
			Congratulate: rollForward(next),
		})
	}
	return upcoming
}

// rollForward shifts a weekend date to the following Monday.
func rollForward(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}
