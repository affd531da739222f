package repository

import (
	"testing"

	"planner-backend/internal/event/domain"
	"planner-backend/pkg/database"
	"planner-backend/pkg/datatypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) EventRepository {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &domain.Event{}))
	return NewGormEventRepository(db)
}

func mustDate(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := datatypes.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newEvent(t *testing.T, userID, title, date, start string) *domain.Event {
	return &domain.Event{UserID: userID, Title: title, Date: mustDate(t, date), StartTime: start, EndTime: "23:00"}
}

func TestCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)

	event := newEvent(t, "alice", "Review", "2024-02-10", "09:00")
	require.NoError(t, repo.Create(event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.CategoryWork, event.Category)

	found, err := repo.FindByID("alice", event.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Review", found.Title)
	assert.Equal(t, "2024-02-10", found.Date.String())
	assert.Nil(t, found.Color)

	other, err := repo.FindByID("bob", event.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestCreateRejectsInvalidEvent(t *testing.T) {
	repo := newTestRepo(t)

	assert.ErrorIs(t, repo.Create(&domain.Event{Title: "x", Date: mustDate(t, "2024-01-01"), StartTime: "1", EndTime: "2"}), domain.ErrOwnerRequired)
	assert.ErrorIs(t, repo.Create(newEvent(t, "alice", "x", "2024-01-01", "10:00:00")), domain.ErrTimeTooLong)

	events, err := repo.FindByUserID("alice", EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateAllowsEmptyTitle(t *testing.T) {
	repo := newTestRepo(t)

	event := newEvent(t, "alice", "", "2024-01-01", "10:00")
	require.NoError(t, repo.Create(event))

	found, err := repo.FindByID("alice", event.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "", found.Title)
}

func TestFindByUserIDFiltersAndOrder(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newEvent(t, "alice", "late", "2024-03-02", "18:00")))
	require.NoError(t, repo.Create(newEvent(t, "alice", "early", "2024-03-02", "08:00")))
	require.NoError(t, repo.Create(newEvent(t, "alice", "first", "2024-03-01", "12:00")))
	personal := newEvent(t, "alice", "done", "2024-03-05", "10:00")
	personal.Category = domain.CategoryPersonal
	personal.Completed = true
	require.NoError(t, repo.Create(personal))
	require.NoError(t, repo.Create(newEvent(t, "bob", "not mine", "2024-03-02", "09:00")))

	all, err := repo.FindByUserID("alice", EventFilter{})
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, e := range all {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"first", "early", "late", "done"}, titles)

	day := mustDate(t, "2024-03-02")
	onDay, err := repo.FindByUserID("alice", EventFilter{Date: &day})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	from, to := mustDate(t, "2024-03-02"), mustDate(t, "2024-03-05")
	ranged, err := repo.FindByUserID("alice", EventFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, ranged, 3)

	category := domain.CategoryPersonal
	completed := true
	filtered, err := repo.FindByUserID("alice", EventFilter{Category: &category, Completed: &completed})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "done", filtered[0].Title)
}

func TestCreateBatchIsAtomic(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.CreateBatch([]*domain.Event{
		newEvent(t, "alice", "ok", "2024-01-01", "10:00"),
		newEvent(t, "alice", "", "2024-01-01", "11:00"),
	})
	assert.Error(t, err)

	events, err := repo.FindByUserID("alice", EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)

	require.NoError(t, repo.CreateBatch([]*domain.Event{
		newEvent(t, "alice", "a", "2024-01-01", "10:00"),
		newEvent(t, "alice", "b", "2024-01-02", "10:00"),
	}))
	events, err = repo.FindByUserID("alice", EventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestDeleteScopedToOwner(t *testing.T) {
	repo := newTestRepo(t)
	event := newEvent(t, "alice", "keep", "2024-01-01", "10:00")
	require.NoError(t, repo.Create(event))

	deleted, err := repo.Delete("bob", event.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete("alice", event.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID("alice", event.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
