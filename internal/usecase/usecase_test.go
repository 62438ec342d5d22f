package usecase

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-blog/internal/config"
	"cosmos-blog/internal/controller"
	"cosmos-blog/internal/repository/sqlite"
	"cosmos-blog/internal/service/auth"
)

const (
	testPassword = "test_password"
	testSecret   = "test_secret"
)

// newTestRouter builds a router backed by an in-memory database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))

	cfg := &config.Config{JWTSecret: testSecret, AdminPassword: testPassword}
	authService := auth.NewService(cfg.JWTSecret, cfg.AdminPassword, time.Hour)

	u, err := NewBlogBackend(db, cfg, authService)
	require.NoError(t, err)

	r := gin.New()
	controller.RegisterRoutes(r, u, authService)
	return r
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/auth/login", "", `{"password":"`+testPassword+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth/login", "", `{"password":"test_password"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "admin", body["role"])

	w = doRequest(r, http.MethodPost, "/api/auth/login", "", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body = decodeBody(t, w)
	assert.NotContains(t, body, "token")
}

func TestVerifyEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doRequest(r, http.MethodGet, "/api/auth/verify", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["valid"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", user["username"])
	assert.Equal(t, "admin", user["role"])

	w = doRequest(r, http.MethodGet, "/api/auth/verify", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/auth/verify", "garbage-token", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPostCRUDFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// Writes require auth.
	w := doRequest(r, http.MethodPost, "/api/posts", "", `{"title":"t","video":"v","description":"d"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/posts", token, `{"title":"Launch","video":"https://v.example/1.mp4","description":"First post"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Launch", created["title"])
	assert.Contains(t, created, "created_at")

	// Reads are public.
	w = doRequest(r, http.MethodGet, "/api/posts/"+id, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Launch", decodeBody(t, w)["title"])

	w = doRequest(r, http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	listBody := decodeBody(t, w)
	posts, ok := listBody["posts"].([]any)
	require.True(t, ok)
	assert.Len(t, posts, 1)
	pagination, ok := listBody["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["totalPosts"])

	w = doRequest(r, http.MethodPut, "/api/posts/"+id, token, `{"title":"Updated","video":"https://v.example/1.mp4","description":"Edited"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "Updated", updated["title"])
	assert.NotContains(t, updated, "created_at", "update response omits created_at")

	w = doRequest(r, http.MethodDelete, "/api/posts/"+id, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w), "message")

	w = doRequest(r, http.MethodGet, "/api/posts/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost_MissingFields(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doRequest(r, http.MethodPost, "/api/posts", token, `{"title":"","video":"v","description":"d"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePost_NotFound(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doRequest(r, http.MethodPut, "/api/posts/no-such-id", token, `{"title":"t","video":"v","description":"d"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordVisitEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/visits", "", `{"ip":"203.0.113.7","userAgent":"Mozilla/5.0","page":"/"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decodeBody(t, w), "message")

	w = doRequest(r, http.MethodPost, "/api/visits", "", `{"userAgent":"Mozilla/5.0"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	for _, ip := range []string{"203.0.113.1", "203.0.113.1", "203.0.113.2"} {
		w := doRequest(r, http.MethodPost, "/api/visits", "", `{"ip":"`+ip+`","page":"/"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/analytics", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(2), body["unique"])
	assert.Equal(t, float64(3), body["today"])
	recent, ok := body["recent"].([]any)
	require.True(t, ok)
	assert.Len(t, recent, 3)

	// Bad days values fall back to the default window.
	w = doRequest(r, http.MethodGet, "/api/analytics?days=abc", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/analytics", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCleanupEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doRequest(r, http.MethodPost, "/api/visits", "", `{"ip":"203.0.113.9","page":"/"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/analytics/cleanup?days=0", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	msg, _ := decodeBody(t, w)["message"].(string)
	assert.Contains(t, msg, "deleted 1 visits")

	// Idempotent: nothing left to remove.
	w = doRequest(r, http.MethodDelete, "/api/analytics/cleanup?days=0", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	msg, _ = decodeBody(t, w)["message"].(string)
	assert.Contains(t, msg, "deleted 0 visits")

	w = doRequest(r, http.MethodDelete, "/api/analytics/cleanup?days=-1", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doRequest(r, http.MethodPost, "/api/posts", token, `{"title":"t","video":"v","description":"d"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(r, http.MethodPost, "/api/visits", "", `{"ip":"203.0.113.5","page":"/"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/export?type=posts", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "posts")
	assert.NotContains(t, body, "visits")
	assert.Contains(t, body, "exportDate")

	w = doRequest(r, http.MethodGet, "/api/export?type=visits", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Contains(t, body, "visits")
	assert.NotContains(t, body, "posts")

	w = doRequest(r, http.MethodGet, "/api/export", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Contains(t, body, "posts")
	assert.Contains(t, body, "visits")
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}
