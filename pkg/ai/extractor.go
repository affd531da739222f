package ai

import "context"

// EventExtractionPrompt is the fixed system instruction for turning a free
// text description into event fields.
const EventExtractionPrompt = `Extract event details from the user description in JSON format with keys:
title, date, start_time, end_time.

The date should be in YYYY-MM-DD format, and times should be in 24-hour HH:MM format.
If no specific date is mentioned, use today's date.
If no end time is specified, make the event 1 hour after the start time.

Respond only with a valid JSON object, nothing else.`

// EventExtractor sends a user's description to the completion provider
// with EventExtractionPrompt and returns the raw model text.
type EventExtractor struct {
	completion CompletionService
}

func NewEventExtractor(completion CompletionService) *EventExtractor {
	return &EventExtractor{completion: completion}
}

// Extract makes exactly one completion call.
func (e *EventExtractor) Extract(ctx context.Context, query string) (string, error) {
	return e.completion.Complete(ctx, EventExtractionPrompt, query)
}
