package icalendar

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const (
	productID     = "-//planner-backend//EN"
	propCompleted = "X-PLANNER-COMPLETED"
)

// Entry is a timed calendar entry as exchanged with other calendar apps.
type Entry struct {
	UID       string
	Summary   string
	Start     time.Time
	End       time.Time
	Category  string
	Completed bool
}

// Encode writes entries as a single VCALENDAR.
func Encode(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		// The encoder rejects calendars without components.
		_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:"+productID+"\r\nEND:VCALENDAR\r\n")
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := time.Now().UTC()
	for _, e := range entries {
		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, e.UID)
		ve.Props.SetText(ical.PropSummary, e.Summary)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		setFloating(ve, ical.PropDateTimeStart, e.Start)
		setFloating(ve, ical.PropDateTimeEnd, e.End)
		if e.Category != "" {
			ve.Props.SetText(ical.PropCategories, e.Category)
		}
		if e.Completed {
			ve.Props.SetText(propCompleted, "TRUE")
		}
		cal.Children = append(cal.Children, ve)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// setFloating stores t as a floating DATE-TIME (no zone), which is how
// wall-clock entries are kept.
func setFloating(comp *ical.Component, name string, t time.Time) {
	prop := ical.NewProp(name)
	prop.Value = t.Format("20060102T150405")
	comp.Props.Set(prop)
}

// Decode reads every timed VEVENT from r. Start and end are converted to loc.
// All-day events and events without a start are skipped; a missing end
// becomes start + 1h.
func Decode(r io.Reader, loc *time.Location) ([]Entry, error) {
	decoder := ical.NewDecoder(r)
	var entries []Entry
	var skipped int

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			entry, ok := parseEvent(comp, loc)
			if !ok {
				skipped++
				continue
			}
			entries = append(entries, entry)
		}
	}

	if skipped > 0 {
		log.Printf("[ICS] Skipped %d all-day or untimed events", skipped)
	}
	return entries, nil
}

func parseEvent(comp *ical.Component, loc *time.Location) (Entry, bool) {
	var entry Entry

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil || startProp.ValueType() == ical.ValueDate {
		return entry, false
	}
	start, err := startProp.DateTime(loc)
	if err != nil {
		return entry, false
	}
	entry.Start = start.In(loc)
	entry.End = entry.Start.Add(time.Hour)

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if end, err := endProp.DateTime(loc); err == nil {
			entry.End = end.In(loc)
		}
	}

	if uid := comp.Props.Get(ical.PropUID); uid != nil {
		entry.UID = uid.Value
	}
	if summary := comp.Props.Get(ical.PropSummary); summary != nil {
		if text, err := summary.Text(); err == nil {
			entry.Summary = text
		} else {
			entry.Summary = summary.Value
		}
	}
	if categories := comp.Props.Get(ical.PropCategories); categories != nil {
		// First category wins
		entry.Category = strings.ToLower(strings.TrimSpace(strings.Split(categories.Value, ",")[0]))
	}
	if completed := comp.Props.Get(propCompleted); completed != nil {
		entry.Completed = strings.EqualFold(completed.Value, "TRUE")
	}

	return entry, true
}
