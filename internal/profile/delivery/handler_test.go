package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "planner-backend/internal/auth/domain"
	"planner-backend/internal/profile/domain"
	"planner-backend/internal/profile/repository"
	"planner-backend/internal/profile/usecase"
	"planner-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewInMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &authdomain.User{}, &domain.Profile{}))
	require.NoError(t, db.Create(&authdomain.User{ID: "u1", Username: "alice"}).Error)
	require.NoError(t, db.Create(&authdomain.User{ID: "u2", Username: "bob"}).Error)

	h := NewProfileHandler(usecase.NewProfileUsecase(repository.NewProfileRepository(db)))

	r := gin.New()
	profiles := r.Group("/api/profiles")
	profiles.Use(func(c *gin.Context) {
		c.Set("userID", c.GetHeader("X-Test-User"))
	})
	profiles.GET("", h.ListProfiles)
	profiles.POST("", h.CreateProfile)
	profiles.GET("/:id", h.GetProfile)
	profiles.PATCH("/:id", h.UpdateProfile)
	profiles.DELETE("/:id", h.DeleteProfile)
	return r
}

func doRequest(r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/profiles", "u1", `{"theme_preference":"light"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)
	assert.Equal(t, "light", created["theme_preference"])
	assert.Equal(t, "alice", created["user"].(map[string]interface{})["username"])
	assert.NotContains(t, created, "user_id")

	w = doRequest(r, http.MethodPost, "/api/profiles", "u1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profiles", "u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = doRequest(r, http.MethodPatch, "/api/profiles/"+id, "u1", `{"theme_preference":"solarized"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theme_preference":"solarized"`)

	w = doRequest(r, http.MethodPatch, "/api/profiles/"+id, "u1", `{"theme_preference":"`+strings.Repeat("x", 25)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profiles/"+id, "u2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/profiles", "u2", "")
	assert.Equal(t, "[]", w.Body.String())

	w = doRequest(r, http.MethodPatch, "/api/profiles/"+id, "u2", `{"theme_preference":"light"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/profiles/"+id, "u2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profiles/"+id, "u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theme_preference":"solarized"`)

	w = doRequest(r, http.MethodDelete, "/api/profiles/"+id, "u1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profiles/"+id, "u1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
