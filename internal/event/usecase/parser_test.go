package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		title string
		date  *string
		start *string
		end   *string
	}{
		{
			name:  "plain object",
			raw:   `{"title":"Team sync","date":"2024-05-02","start_time":"10:00","end_time":"11:00"}`,
			title: "Team sync", date: strPtr("2024-05-02"), start: strPtr("10:00"), end: strPtr("11:00"),
		},
		{
			name:  "object wrapped in prose",
			raw:   "Sure! {\"title\":\"Dentist\",\"date\":\"2024-06-10\",\"start_time\":\"09:00\",\"end_time\":\"10:00\"} Let me know if that works.",
			title: "Dentist", date: strPtr("2024-06-10"), start: strPtr("09:00"), end: strPtr("10:00"),
		},
		{
			name:  "markdown fence over several lines",
			raw:   "```json\n{\n  \"title\": \"Gym\",\n  \"date\": \"2024-01-03\",\n  \"start_time\": \"18:00\",\n  \"end_time\": \"19:00\"\n}\n```",
			title: "Gym", date: strPtr("2024-01-03"), start: strPtr("18:00"), end: strPtr("19:00"),
		},
		{
			name:  "missing title",
			raw:   `{"date":"2024-05-02","start_time":"10:00","end_time":"11:00"}`,
			title: "Untitled Event", date: strPtr("2024-05-02"), start: strPtr("10:00"), end: strPtr("11:00"),
		},
		{
			name:  "null title and missing times",
			raw:   `{"title":null,"date":"2024-05-02"}`,
			title: "Untitled Event", date: strPtr("2024-05-02"),
		},
		{
			name:  "values are not format checked",
			raw:   `{"title":"Call","date":"tomorrow","start_time":"9am","end_time":"10am"}`,
			title: "Call", date: strPtr("tomorrow"), start: strPtr("9am"), end: strPtr("10am"),
		},
		{
			name:  "non-string scalar kept as JSON text",
			raw:   `{"title":42,"date":"2024-05-02","start_time":900,"end_time":"10:00"}`,
			title: "42", date: strPtr("2024-05-02"), start: strPtr("900"), end: strPtr("10:00"),
		},
		{
			name:  "empty object",
			raw:   `{}`,
			title: "Untitled Event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExtraction(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.start, got.StartTime)
			assert.Equal(t, tt.end, got.EndTime)
		})
	}
}

func TestParseExtractionFailures(t *testing.T) {
	for _, raw := range []string{
		"I couldn't understand that.",
		"",
		`["title","date"]`,
		`"just a string"`,
		"null",
		"} backwards {",
		`{"title": "broken"`,
		// Two objects: the greedy span covers both and is not valid JSON.
		`{"title":"a"} and {"title":"b"}`,
	} {
		_, err := ParseExtraction(raw)
		assert.ErrorIs(t, err, ErrParseFailure, raw)
	}
}
