package storage

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// BuildCalendar renders the birthdays in the book as an iCalendar object.
// Each contact with a birthday yields full-day events for the previous,
// current and next year, so the events stay visible when a calendar app
// scrolls across a year boundary. No event is generated before the person
// is born. reminderTrigger, when non-empty, attaches a DISPLAY alarm with
// that ISO8601 offset to every event.
func BuildCalendar(b *book.AddressBook, clock book.Clock, reminderTrigger string) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local time drives the event dates; UTC is only for the stamp.
	// A birthday is a local calendar date, not an absolute instant.
	now := clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	withBirthday := 0
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}
		withBirthday++

		// Deterministic UID generation for stability across exports.
		born := rec.Birthday.Date()
		input := fmt.Sprintf(config.FormatHashInput, rec.Name, rec.Birthday.Value(), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		for _, e := range birthdayEvents(rec.Name, born, reminderTrigger, now, uidBase) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	slog.Info(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyRecords, b.Len(),
		config.LogKeyCount, withBirthday,
	)

	if len(cal.Children) == 0 {
		// A bare VCALENDAR stub keeps the output valid for clients even
		// when there is nothing to announce.
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// WriteCalendar renders the calendar and writes it to path.
func WriteCalendar(b *book.AddressBook, clock book.Clock, reminderTrigger, path string) error {
	data, err := BuildCalendar(b, clock, reminderTrigger)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, config.FilePermExport)
}

// birthdayEvents generates the events for the previous, current and next
// year relative to now, skipping years before the person was born.
func birthdayEvents(name string, born time.Time, reminderTrigger string, now time.Time, uidBase string) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	var events []*ical.Event
	for _, y := range targetYears {
		if y < born.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - born.Year()
		summary := fmt.Sprintf(config.FormatEventSummary, name, age)
		if age == 0 {
			summary = fmt.Sprintf(config.FormatEventSummaryBirth, name)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to March 1 in non-leap years, matching the
		// upcoming-birthday query.
		eventDate := time.Date(y, born.Month(), born.Day(), 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
