package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"planner-backend/internal/event/domain"
)

const defaultEventTitle = "Untitled Event"

// ParseExtraction turns a model reply into an ExtractionResult. The whole
// reply is tried as a JSON object first, then the span from the first '{'
// to the last '}'. Values are not format-checked here.
func ParseExtraction(raw string) (*domain.ExtractionResult, error) {
	fields, ok := decodeObject(raw)
	if !ok {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start == -1 || end <= start {
			return nil, ErrParseFailure
		}
		if fields, ok = decodeObject(raw[start : end+1]); !ok {
			return nil, ErrParseFailure
		}
	}

	result := &domain.ExtractionResult{
		Title:     defaultEventTitle,
		Date:      fieldText(fields, "date"),
		StartTime: fieldText(fields, "start_time"),
		EndTime:   fieldText(fields, "end_time"),
	}
	if title := fieldText(fields, "title"); title != nil {
		result.Title = *title
	}
	return result, nil
}

// decodeObject only accepts a JSON object; arrays and scalars fail.
func decodeObject(s string) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// fieldText returns a string value verbatim and any other non-null value
// as its JSON text. Missing and null give nil.
func fieldText(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	text := string(raw)
	return &text
}
