package usecase

import (
	"context"
	"errors"
	"log"

	"planner-backend/internal/event/domain"
	"planner-backend/internal/event/repository"
	"planner-backend/pkg/ai"
	"planner-backend/pkg/datatypes"
)

const msgNoQuery = "No query provided"

// chatUsecase implements ChatUsecase interface
type chatUsecase struct {
	eventRepo repository.EventRepository
	extractor Extractor
}

// NewChatUsecase creates a new instance of chatUsecase
func NewChatUsecase(eventRepo repository.EventRepository, extractor Extractor) ChatUsecase {
	return &chatUsecase{
		eventRepo: eventRepo,
		extractor: extractor,
	}
}

// CreateEventFromQuery makes one model call and stores at most one event.
// Every failure is a *ChatError.
func (u *chatUsecase) CreateEventFromQuery(ctx context.Context, userID, query string) (*domain.Event, error) {
	if query == "" {
		return nil, &ChatError{Kind: KindValidation, Msg: msgNoQuery}
	}

	raw, err := u.extractor.Extract(ctx, query)
	if err != nil {
		var notConfigured *ai.NotConfiguredError
		if errors.As(err, &notConfigured) {
			log.Printf("[ChatEvent] Provider not configured: %v", err)
			return nil, newChatError(KindConfiguration, err)
		}
		log.Printf("[ChatEvent] Extraction failed for user %s: %v", userID, err)
		return nil, newChatError(KindExternalService, err)
	}

	result, err := ParseExtraction(raw)
	if err != nil {
		log.Printf("[ChatEvent] Could not parse model reply for user %s: %q", userID, raw)
		return nil, &ChatError{Kind: KindParseFailure, Msg: ErrParseFailure.Error(), Err: err}
	}

	event, err := eventFromExtraction(userID, result)
	if err != nil {
		return nil, newChatError(KindUnexpected, err)
	}

	if err := u.eventRepo.Create(event); err != nil {
		log.Printf("[ChatEvent] Failed to store event for user %s: %v", userID, err)
		return nil, newChatError(KindUnexpected, err)
	}

	log.Printf("[ChatEvent] Created event %s for user %s", event.ID, userID)
	return event, nil
}

func eventFromExtraction(userID string, result *domain.ExtractionResult) (*domain.Event, error) {
	if result.Date == nil {
		return nil, domain.ErrDateRequired
	}
	date, err := datatypes.ParseDate(*result.Date)
	if err != nil {
		return nil, err
	}
	if result.StartTime == nil {
		return nil, domain.ErrStartTimeRequired
	}
	if result.EndTime == nil {
		return nil, domain.ErrEndTimeRequired
	}

	return &domain.Event{
		UserID:    userID,
		Title:     result.Title,
		Date:      date,
		StartTime: *result.StartTime,
		EndTime:   *result.EndTime,
		Category:  domain.CategoryWork,
		Completed: false,
	}, nil
}
