package repository

import (
	"testing"
	"time"

	authdomain "planner-backend/internal/auth/domain"
	eventdomain "planner-backend/internal/event/domain"
	eventrepo "planner-backend/internal/event/repository"
	profiledomain "planner-backend/internal/profile/domain"
	taskdomain "planner-backend/internal/task/domain"
	taskrepo "planner-backend/internal/task/repository"
	"planner-backend/pkg/database"
	"planner-backend/pkg/datatypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db,
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&profiledomain.Profile{},
		&eventdomain.Event{},
		&taskdomain.Task{},
	))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestCreateWithProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &authdomain.User{Username: "alice", Password: "hash"}
	require.NoError(t, repo.CreateWithProfile(user))
	assert.NotEmpty(t, user.ID)
	assert.EqualValues(t, 1, count(t, db, &profiledomain.Profile{}, user.ID))

	found, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Duplicate usernames roll back the profile as well.
	assert.Error(t, repo.CreateWithProfile(&authdomain.User{Username: "alice"}))
	var profiles int64
	require.NoError(t, db.Model(&profiledomain.Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)
}

func TestDeleteCascadesOwnedRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	alice := &authdomain.User{Username: "alice"}
	bob := &authdomain.User{Username: "bob"}
	require.NoError(t, repo.CreateWithProfile(alice))
	require.NoError(t, repo.CreateWithProfile(bob))

	day, err := datatypes.ParseDate("2024-07-01")
	require.NoError(t, err)

	events := eventrepo.NewGormEventRepository(db)
	tasks := taskrepo.NewGormTaskRepository(db)
	for _, owner := range []string{alice.ID, bob.ID} {
		require.NoError(t, events.Create(&eventdomain.Event{UserID: owner, Title: "Standup", Date: day, StartTime: "09:00", EndTime: "09:15"}))
		require.NoError(t, tasks.Create(&taskdomain.Task{UserID: owner, Title: "Report", DueDate: day, Duration: "1h"}))
		require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "tok-" + owner, UserID: owner, ExpiresAt: time.Now().Add(time.Hour)}))
	}

	deleted, err := repo.Delete(alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, model := range []interface{}{&eventdomain.Event{}, &taskdomain.Task{}, &profiledomain.Profile{}, &authdomain.RefreshToken{}} {
		assert.Zero(t, count(t, db, model, alice.ID))
		assert.EqualValues(t, 1, count(t, db, model, bob.ID))
	}

	gone, err := repo.FindByID(alice.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = repo.Delete(alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRotateRefreshToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &authdomain.User{Username: "alice"}
	require.NoError(t, repo.Create(user))

	now := time.Now()
	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "old", UserID: user.ID, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "stale", UserID: user.ID, ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.SaveRefreshToken(&authdomain.RefreshToken{Token: "other-device", UserID: user.ID, ExpiresAt: now.Add(time.Hour)}))

	require.NoError(t, repo.RotateRefreshToken("old", &authdomain.RefreshToken{Token: "new", UserID: user.ID, ExpiresAt: now.Add(time.Hour)}))

	for token, present := range map[string]bool{"old": false, "stale": false, "other-device": true, "new": true} {
		found, err := repo.FindRefreshToken(token)
		require.NoError(t, err)
		assert.Equal(t, present, found != nil, token)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
