package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mocks "github.com/cbodonnell/purgatorium/mocks/github.com/cbodonnell/purgatorium/pkg/state"
	"github.com/cbodonnell/purgatorium/pkg/messages"
	"github.com/cbodonnell/purgatorium/pkg/network"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/cbodonnell/purgatorium/pkg/queue"
	"github.com/cbodonnell/purgatorium/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func newTestRouter(t *testing.T) (http.Handler, *state.InMemoryStateManager, *queue.InMemoryQueue[notes.Note]) {
	t.Helper()
	stateManager := state.NewInMemoryStateManager()
	require.NoError(t, stateManager.Set(context.Background(), &messages.WorldSnapshot{
		Frame: 7,
		Bullets: []messages.BulletSnapshot{
			{ID: "first", BounceCount: 1, MaxBounces: 3, Active: true},
			{ID: "second", Active: true},
		},
	}))
	spawnQueue := queue.NewInMemoryQueue[notes.Note](2)
	router := NewRouter(NewAPIServerOptions{
		StateManager: stateManager,
		SpawnQueue:   spawnQueue,
	})
	return router, stateManager, spawnQueue
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestRouter(t)
	rec := serve(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetSnapshot(t *testing.T) {
	router, _, _ := newTestRouter(t)
	rec := serve(router, http.MethodGet, "/snapshot", "")
	require.Equal(t, http.StatusOK, rec.Code)

	snapshot := &messages.WorldSnapshot{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), snapshot))
	assert.Equal(t, uint64(7), snapshot.Frame)
	assert.Len(t, snapshot.Bullets, 2)
}

func TestGetSnapshot_StateError(t *testing.T) {
	stateManager := mocks.NewStateManager(t)
	stateManager.EXPECT().Get(mock.Anything).Return(nil, errors.New("unavailable")).Once()
	router := NewRouter(NewAPIServerOptions{StateManager: stateManager})

	rec := serve(router, http.MethodGet, "/snapshot", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetBullet(t *testing.T) {
	router, _, _ := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "known bullet", path: "/bullets/first", wantStatus: http.StatusOK},
		{name: "unknown bullet", path: "/bullets/missing", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	rec := serve(router, http.MethodGet, "/bullets/first", "")
	b := messages.BulletSnapshot{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "first", b.ID)
	assert.Equal(t, 1, b.BounceCount)
}

func TestSpawn(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantQueued int
	}{
		{name: "valid note", body: `{"midi_number":60,"velocity":100,"channel":1}`, wantStatus: http.StatusAccepted, wantQueued: 1},
		{name: "malformed body", body: `{"midi_number":`, wantStatus: http.StatusBadRequest},
		{name: "pitch out of range", body: `{"midi_number":128,"velocity":100}`, wantStatus: http.StatusBadRequest},
		{name: "negative velocity", body: `{"midi_number":60,"velocity":-1}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, spawnQueue := newTestRouter(t)
			rec := serve(router, http.MethodPost, "/spawn", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantQueued, spawnQueue.Size())
		})
	}
}

func TestSpawn_QueueFull(t *testing.T) {
	router, _, spawnQueue := newTestRouter(t)
	body := `{"midi_number":60,"velocity":100}`

	assert.Equal(t, http.StatusAccepted, serve(router, http.MethodPost, "/spawn", body).Code)
	assert.Equal(t, http.StatusAccepted, serve(router, http.MethodPost, "/spawn", body).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodPost, "/spawn", body).Code)

	queued := spawnQueue.ReadAllMessages()
	require.Len(t, queued, 2)
	assert.Equal(t, 60, queued[0].MIDINumber)
}

func TestSpawn_WrongMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)
	rec := serve(router, http.MethodGet, "/spawn", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _, spawnQueue := newTestRouter(t)
	rec := serve(router, http.MethodOptions, "/spawn", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, 0, spawnQueue.Size())
}

func TestStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := network.NewHub(network.NewHubOptions{})
	server := httptest.NewServer(NewRouter(NewAPIServerOptions{
		StateManager: state.NewInMemoryStateManager(),
		Stream:       hub,
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/stream"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	msg, err := messages.NewWorldSnapshotMessage(&messages.WorldSnapshot{Frame: 3})
	require.NoError(t, err)
	hub.Broadcast(ctx, msg)

	got, err := network.ReadMessage(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeWorldSnapshot, got.Type)
}
