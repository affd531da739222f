package usecase

import (
	"fmt"
	"io"
	"log"
	"time"

	"planner-backend/internal/event/domain"
	"planner-backend/internal/event/repository"
	"planner-backend/pkg/datatypes"
	"planner-backend/pkg/icalendar"
)

const clockLayout = "15:04"

func (u *eventUsecase) ExportICS(userID string, w io.Writer) error {
	events, err := u.eventRepo.FindByUserID(userID, repository.EventFilter{})
	if err != nil {
		return err
	}

	entries := make([]icalendar.Entry, 0, len(events))
	for _, event := range events {
		entry, err := entryFromEvent(event)
		if err != nil {
			log.Printf("[ICS] Skipping event %s: %v", event.ID, err)
			continue
		}
		entries = append(entries, entry)
	}
	return icalendar.Encode(w, entries)
}

func (u *eventUsecase) ImportICS(userID string, r io.Reader) ([]*domain.Event, error) {
	entries, err := icalendar.Decode(r, time.Local)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	events := make([]*domain.Event, 0, len(entries))
	for _, entry := range entries {
		events = append(events, eventFromEntry(userID, entry))
	}

	if err := u.eventRepo.CreateBatch(events); err != nil {
		return nil, err
	}
	log.Printf("[ICS] Imported %d events for user %s", len(events), userID)
	return events, nil
}

func entryFromEvent(event *domain.Event) (icalendar.Entry, error) {
	start, err := time.Parse(clockLayout, event.StartTime)
	if err != nil {
		return icalendar.Entry{}, fmt.Errorf("start_time %q is not HH:MM", event.StartTime)
	}
	startAt := event.Date.At(start.Hour(), start.Minute(), time.Local)

	endAt := startAt.Add(time.Hour)
	if end, err := time.Parse(clockLayout, event.EndTime); err == nil {
		endAt = event.Date.At(end.Hour(), end.Minute(), time.Local)
	}

	return icalendar.Entry{
		UID:       event.ID,
		Summary:   event.Title,
		Start:     startAt,
		End:       endAt,
		Category:  string(event.Category),
		Completed: event.Completed,
	}, nil
}

func eventFromEntry(userID string, entry icalendar.Entry) *domain.Event {
	title := entry.Summary
	if title == "" {
		title = defaultEventTitle
	}
	if runes := []rune(title); len(runes) > domain.MaxTitleLength {
		title = string(runes[:domain.MaxTitleLength])
	}

	category := domain.Category(entry.Category)
	if !category.Valid() {
		category = domain.CategoryWork
	}

	return &domain.Event{
		UserID:    userID,
		Title:     title,
		Date:      datatypes.DateOf(entry.Start),
		StartTime: entry.Start.Format(clockLayout),
		EndTime:   entry.End.Format(clockLayout),
		Category:  category,
		Completed: entry.Completed,
	}
}
