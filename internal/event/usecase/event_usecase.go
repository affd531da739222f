package usecase

import (
	"strconv"

	"planner-backend/internal/event/domain"
	"planner-backend/internal/event/repository"
	"planner-backend/pkg/datatypes"
	"planner-backend/pkg/fuzzy"
)

// eventUsecase implements EventUsecase interface
type eventUsecase struct {
	eventRepo repository.EventRepository
}

// NewEventUsecase creates a new instance of eventUsecase
func NewEventUsecase(eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
	}
}

func (u *eventUsecase) ListEvents(userID string, query ListQuery) ([]*domain.Event, error) {
	filter, err := query.filter()
	if err != nil {
		return nil, err
	}

	events, err := u.eventRepo.FindByUserID(userID, filter)
	if err != nil {
		return nil, err
	}
	if query.Search == "" {
		return events, nil
	}

	matched := make([]*domain.Event, 0, len(events))
	for _, event := range events {
		if fuzzy.Match(query.Search, event.Title) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func (u *eventUsecase) GetEvent(userID, eventID string) (*domain.Event, error) {
	event, err := u.eventRepo.FindByID(userID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (u *eventUsecase) CreateEvent(userID string, req EventCreateRequest) (*domain.Event, error) {
	date, err := datatypes.ParseDate(req.Date)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	category := domain.CategoryWork
	if req.Category != "" {
		category = domain.Category(req.Category)
		if !category.Valid() {
			return nil, invalidInput("unknown category %q", req.Category)
		}
	}

	if req.Title == "" {
		return nil, invalidInput("%v", domain.ErrTitleRequired)
	}

	event := &domain.Event{
		UserID:    userID,
		Title:     req.Title,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  category,
		Completed: req.Completed,
		Color:     req.Color,
	}
	if err := event.Validate(); err != nil {
		return nil, invalidInput("%v", err)
	}

	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) UpdateEvent(userID, eventID string, updates EventUpdateRequest) (*domain.Event, error) {
	event, err := u.GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if *updates.Title == "" {
			return nil, invalidInput("%v", domain.ErrTitleRequired)
		}
		event.Title = *updates.Title
	}
	if updates.Date != nil {
		date, err := datatypes.ParseDate(*updates.Date)
		if err != nil {
			return nil, invalidInput("%v", err)
		}
		event.Date = date
	}
	if updates.StartTime != nil {
		event.StartTime = *updates.StartTime
	}
	if updates.EndTime != nil {
		event.EndTime = *updates.EndTime
	}
	if updates.Category != nil {
		category := domain.Category(*updates.Category)
		if !category.Valid() {
			return nil, invalidInput("unknown category %q", *updates.Category)
		}
		event.Category = category
	}
	if updates.Completed != nil {
		event.Completed = *updates.Completed
	}
	if updates.Color != nil {
		if *updates.Color == "" {
			event.Color = nil
		} else {
			event.Color = updates.Color
		}
	}

	if err := event.Validate(); err != nil {
		return nil, invalidInput("%v", err)
	}
	if err := u.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) DeleteEvent(userID, eventID string) error {
	deleted, err := u.eventRepo.Delete(userID, eventID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

func (q ListQuery) filter() (repository.EventFilter, error) {
	var filter repository.EventFilter

	dates := []struct {
		raw  string
		dest **datatypes.Date
	}{
		{q.Date, &filter.Date},
		{q.From, &filter.From},
		{q.To, &filter.To},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		parsed, err := datatypes.ParseDate(d.raw)
		if err != nil {
			return filter, invalidInput("%v", err)
		}
		*d.dest = &parsed
	}

	if q.Category != "" {
		category := domain.Category(q.Category)
		if !category.Valid() {
			return filter, invalidInput("unknown category %q", q.Category)
		}
		filter.Category = &category
	}

	if q.Completed != "" {
		completed, err := strconv.ParseBool(q.Completed)
		if err != nil {
			return filter, invalidInput("completed must be true or false")
		}
		filter.Completed = &completed
	}

	return filter, nil
}
