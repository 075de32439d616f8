package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestClient_RecordHit(t *testing.T) {
	var got hitDto
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, "afisha", newTestLogger(t))
	c.RecordHit(context.Background(), "/events/7", "10.0.0.1")

	assert.Equal(t, "afisha", got.App)
	assert.Equal(t, "/events/7", got.URI)
	assert.Equal(t, "10.0.0.1", got.IP)
	assert.NotEmpty(t, got.Timestamp)
}

func TestClient_ViewCounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("unique"))
		assert.Equal(t, "/events/7,/events/8", r.URL.Query().Get("uris"))
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))

		json.NewEncoder(w).Encode([]viewStatsDto{
			{App: "afisha", URI: "/events/7", Hits: 42},
			{App: "afisha", URI: "/events/8", Hits: 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "afisha", newTestLogger(t))
	views, err := c.ViewCounts(context.Background(), []int64{7, 8})

	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{7: 42, 8: 3}, views)
}

func TestClient_ViewCounts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "afisha", newTestLogger(t))
	_, err := c.ViewCounts(context.Background(), []int64{7})

	assert.Error(t, err)
}

func TestClient_Disabled(t *testing.T) {
	c := New("", "afisha", newTestLogger(t))

	c.RecordHit(context.Background(), "/events", "10.0.0.1")

	views, err := c.ViewCounts(context.Background(), []int64{7})
	require.NoError(t, err)
	assert.Empty(t, views)
}
