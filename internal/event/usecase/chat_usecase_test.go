package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"planner-backend/internal/event/domain"
	"planner-backend/internal/event/repository"
	"planner-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	reply string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, query string) (string, error) {
	f.calls++
	return f.reply, f.err
}

// memoryRepo is an in-process EventRepository that runs the same
// validation as the gorm hook.
type memoryRepo struct {
	events    []*domain.Event
	createErr error
}

func (m *memoryRepo) Create(event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	if err := event.Validate(); err != nil {
		return err
	}
	event.ID = fmt.Sprintf("evt-%d", len(m.events)+1)
	m.events = append(m.events, event)
	return nil
}

func (m *memoryRepo) CreateBatch(events []*domain.Event) error {
	for _, e := range events {
		if err := m.Create(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryRepo) FindByID(userID, id string) (*domain.Event, error) {
	for _, e := range m.events {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) FindByUserID(userID string, filter repository.EventFilter) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(event *domain.Event) error { return nil }

func (m *memoryRepo) Delete(userID, id string) (bool, error) { return false, nil }

func requireChatError(t *testing.T, err error, kind ChatErrorKind, msg string) {
	t.Helper()
	var chatErr *ChatError
	require.True(t, errors.As(err, &chatErr), "expected *ChatError, got %T", err)
	assert.Equal(t, kind, chatErr.Kind)
	assert.Equal(t, msg, chatErr.Error())
}

func TestCreateEventFromQuery(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"title":"Team meeting","date":"2024-03-15","start_time":"15:00","end_time":"16:00"}`}
	uc := NewChatUsecase(repo, extractor)

	event, err := uc.CreateEventFromQuery(context.Background(), "user-1", "Team meeting on March 15 at 3pm")
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, "Team meeting", event.Title)
	assert.Equal(t, "2024-03-15", event.Date.String())
	assert.Equal(t, "15:00", event.StartTime)
	assert.Equal(t, "16:00", event.EndTime)
	assert.Equal(t, domain.CategoryWork, event.Category)
	assert.False(t, event.Completed)
	assert.Equal(t, "user-1", event.UserID)
	assert.Nil(t, event.Color)
}

func TestCreateEventFromQueryEmpty(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{}`}
	_, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "user-1", "")

	requireChatError(t, err, KindValidation, "No query provided")
	assert.Zero(t, extractor.calls)
	assert.Empty(t, repo.events)
}

func TestCreateEventFromQueryBlankIsSentToModel(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"title":"Focus time","date":"2024-04-01","start_time":"12:00","end_time":"13:00"}`}

	event, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "user-1", "   ")
	require.NoError(t, err)
	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, "Focus time", event.Title)
	assert.Len(t, repo.events, 1)
}

func TestCreateEventFromQueryUnpaddedDate(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"title":"Dentist","date":"2024-5-1","start_time":"09:00","end_time":"10:00"}`}

	event, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "user-1", "dentist may 1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", event.Date.String())
}

func TestCreateEventFromQueryProse(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `Sure! {"title":"Lunch","date":"2024-04-01","start_time":"12:00","end_time":"13:00"} Let me know if that works.`}

	event, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "u", "lunch")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", event.Title)
	assert.Len(t, repo.events, 1)
}

func TestCreateEventFromQueryUnparseable(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: "I couldn't understand that."}

	_, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "u", "???")
	requireChatError(t, err, KindParseFailure, "Failed to parse AI response")
	assert.Empty(t, repo.events)
}

func TestCreateEventFromQueryDefaultTitle(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"date":"2024-04-01","start_time":"12:00","end_time":"13:00"}`}

	event, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "u", "something at noon")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Event", event.Title)
}

func TestCreateEventFromQueryEmptyTitle(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"title":"","date":"2024-05-01","start_time":"09:00","end_time":"10:00"}`}

	event, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "u", "something on may 1st")
	require.NoError(t, err)
	assert.Equal(t, "", event.Title)
	assert.Equal(t, "2024-05-01", event.Date.String())
	assert.Len(t, repo.events, 1)
}

func TestCreateEventFromQueryNoDedup(t *testing.T) {
	repo := &memoryRepo{}
	extractor := &fakeExtractor{reply: `{"title":"Standup","date":"2024-04-01","start_time":"09:00","end_time":"09:15"}`}
	uc := NewChatUsecase(repo, extractor)

	first, err := uc.CreateEventFromQuery(context.Background(), "u", "standup")
	require.NoError(t, err)
	second, err := uc.CreateEventFromQuery(context.Background(), "u", "standup")
	require.NoError(t, err)

	assert.Len(t, repo.events, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateEventFromQueryProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ChatErrorKind
		msg  string
	}{
		{
			name: "not configured",
			err:  &ai.NotConfiguredError{Provider: ai.ProviderOpenAI, Credential: "OpenAI API key"},
			kind: KindConfiguration,
			msg:  "OpenAI API key not configured",
		},
		{
			name: "unauthorized",
			err:  &ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 401, Message: "Incorrect API key provided"},
			kind: KindExternalService,
			msg:  "openai API error (401): Incorrect API key provided",
		},
		{
			name: "no choices",
			err:  ai.ErrNoChoices,
			kind: KindExternalService,
			msg:  "AI response contained no choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepo{}
			_, err := NewChatUsecase(repo, &fakeExtractor{err: tt.err}).CreateEventFromQuery(context.Background(), "u", "meeting")
			requireChatError(t, err, tt.kind, tt.msg)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, repo.events)
		})
	}
}

func TestCreateEventFromQueryConversionErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		msg   string
	}{
		{"missing date", `{"title":"x","start_time":"10:00","end_time":"11:00"}`, "date is required"},
		{"bad date", `{"title":"x","date":"next friday","start_time":"10:00","end_time":"11:00"}`, `invalid date "next friday": must be in YYYY-MM-DD format`},
		{"missing start", `{"title":"x","date":"2024-01-01","end_time":"11:00"}`, "start_time is required"},
		{"missing end", `{"title":"x","date":"2024-01-01","start_time":"10:00"}`, "end_time is required"},
		{"time too long", `{"title":"x","date":"2024-01-01","start_time":"10:00:00","end_time":"11:00"}`, "times must be at most 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepo{}
			_, err := NewChatUsecase(repo, &fakeExtractor{reply: tt.reply}).CreateEventFromQuery(context.Background(), "u", "q")
			requireChatError(t, err, KindUnexpected, tt.msg)
			assert.Empty(t, repo.events)
		})
	}
}

func TestCreateEventFromQueryStoreError(t *testing.T) {
	repo := &memoryRepo{createErr: errors.New("database is locked")}
	extractor := &fakeExtractor{reply: `{"title":"x","date":"2024-01-01","start_time":"10:00","end_time":"11:00"}`}

	_, err := NewChatUsecase(repo, extractor).CreateEventFromQuery(context.Background(), "u", "q")
	requireChatError(t, err, KindUnexpected, "database is locked")
}
