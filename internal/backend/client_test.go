package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstracker/fete-cms/internal/api/http/middleware"
	"github.com/rstracker/fete-cms/internal/session"
)

func testStore(t *testing.T) *session.FileStore {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "token"))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetToken(context.Background(), "abc123"))

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, store)
	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/questions", &out))
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoTokenOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, testStore(t))
	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/questions", &out))
	assert.False(t, hasAuth, "Authorization header should be absent, got %q", gotAuth)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "stale-token"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":401,"message":"token expired"}`))
	}))
	defer server.Close()

	redirected := false
	client := New(server.URL, time.Second, store)
	client.OnUnauthorized(func() { redirected = true })

	err := client.Get(ctx, "/users", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.True(t, redirected, "unauthorized hook should fire")

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "401 should clear the persisted token")
}

func TestClient_DecodesAPIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":500,"message":"temperature engine unavailable","path":"/api/records"}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, testStore(t))
	err := client.Get(context.Background(), "/records", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "temperature engine unavailable", apiErr.Message)
	assert.Equal(t, "temperature engine unavailable", Message(err, "fallback"))
}

func TestClient_UndecodableErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, testStore(t))
	err := client.Get(context.Background(), "/questions/999", nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestClient_PropagatesRequestID(t *testing.T) {
	var gotRID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, testStore(t))
	ctx := contextWithRequestID(t, "rid-42")
	require.NoError(t, client.Get(ctx, "/questions", nil))
	assert.Equal(t, "rid-42", gotRID)
}

func TestMetrics_CountsCallsAndErrors(t *testing.T) {
	ResetMetrics()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusInternalServerError)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second, testStore(t))
	ctx := context.Background()
	require.NoError(t, client.Get(ctx, "/questions", nil))
	require.Error(t, client.Get(ctx, "/questions", nil))

	m := GetMetrics()
	assert.Equal(t, int64(2), m.Calls())
	assert.Equal(t, int64(1), m.Errors())
	assert.InDelta(t, 50.0, m.ErrorRate(), 0.001)
}

func contextWithRequestID(t *testing.T, rid string) context.Context {
	t.Helper()
	return middleware.WithRequestID(context.Background(), rid)
}
