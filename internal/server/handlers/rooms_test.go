package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/room"
	"github.com/iudanet/gophdraw/pkg/api"
)

func TestResolveRoomName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		path  string
		want  string
	}{
		{name: "default", want: api.DefaultRoom},
		{name: "query wins", query: "team", path: "/r/other", want: "team"},
		{name: "path", path: "/r/design", want: "design"},
		{name: "path with trailing segment", path: "/r/design/extra", want: "design"},
		{name: "empty path room", path: "/r/", want: api.DefaultRoom},
		{name: "root path", path: "/", want: api.DefaultRoom},
		{name: "blank query", query: "  ", path: "/r/x", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRoomName(tt.query, tt.path))
		})
	}
}

func TestRoomsHandler_Resolve(t *testing.T) {
	handler := NewRoomsHandler(setupTestLogger(), &RoomProviderMock{})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantRoom   string
	}{
		{name: "query", target: "/api/v1/rooms/resolve?room=team", wantStatus: http.StatusOK, wantRoom: "team"},
		{name: "path", target: "/api/v1/rooms/resolve?path=/r/design", wantStatus: http.StatusOK, wantRoom: "design"},
		{name: "default", target: "/api/v1/rooms/resolve", wantStatus: http.StatusOK, wantRoom: api.DefaultRoom},
		{name: "invalid", target: "/api/v1/rooms/resolve?room=a%00b", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Resolve(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp api.ResolveRoomResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantRoom, resp.Room)
		})
	}
}

func TestRoomsHandler_List(t *testing.T) {
	handler := NewRoomsHandler(setupTestLogger(), &RoomProviderMock{
		NamesFunc: func() []string { return []string{"a", "main"} },
	})

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.RoomsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"a", "main"}, resp.Rooms)
}

func TestRoomsHandler_Operations(t *testing.T) {
	registry := room.NewRegistry(room.RegistryConfig{
		Room: room.Config{Logger: setupTestLogger()},
	})
	ctx := context.Background()
	defer func() { _ = registry.Close(ctx) }()

	r, err := registry.Get(ctx, "team")
	require.NoError(t, err)
	_, err = r.SubmitComplete("conn-1", api.StrokeSubmission{
		CorrelationID: "c1",
		Tool:          models.ToolBrush,
		Points:        []models.Point{{X: 1, Y: 2}},
	})
	// Соединение не присоединено к комнате
	require.ErrorIs(t, err, room.ErrUnknownConnection)

	_, err = r.Join("conn-1", "Alice", &discardSink{}, nil)
	require.NoError(t, err)
	_, err = r.SubmitComplete("conn-1", api.StrokeSubmission{
		CorrelationID: "c1",
		Tool:          models.ToolBrush,
		Points:        []models.Point{{X: 1, Y: 2}},
	})
	require.NoError(t, err)

	router := mux.NewRouter()
	handler := NewRoomsHandler(setupTestLogger(), registry)
	router.HandleFunc("/api/v1/rooms/{room}/operations", handler.Operations)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/team/operations", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.SnapshotResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "team", resp.Room)
	require.Len(t, resp.Operations, 1)
	assert.Equal(t, uint64(1), resp.Operations[0].Seq)
	assert.Equal(t, "c1", resp.Operations[0].CorrelationID)
	assert.Equal(t, uint64(2), resp.NextSeq)
	assert.Equal(t, 1, resp.Members)
}

func TestRoomsHandler_OperationsErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid name", err: room.ErrInvalidRoomName, wantStatus: http.StatusBadRequest},
		{name: "closed", err: room.ErrRegistryClosed, wantStatus: http.StatusServiceUnavailable},
		{name: "other", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := &RoomProviderMock{
				PeekFunc: func(context.Context, string) (room.Stats, error) { return room.Stats{}, tt.err },
			}
			handler := NewRoomsHandler(setupTestLogger(), rooms)

			w := httptest.NewRecorder()
			handler.Operations(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/x/operations", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Len(t, rooms.PeekCalls(), 1)
		})
	}
}

func TestRoomsHandler_OperationsDoesNotCreateRooms(t *testing.T) {
	errNotFound := errors.New("not found")
	store := &room.SnapshotStoreMock{
		LoadFunc: func(_ context.Context, name string) (*models.RoomSnapshot, error) {
			if name != "stored" {
				return nil, errNotFound
			}
			return &models.RoomSnapshot{Operations: []*models.Operation{
				{ID: "b", Seq: 7, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}},
				{ID: "a", Seq: 3, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}},
			}}, nil
		},
	}
	registry := room.NewRegistry(room.RegistryConfig{
		Room:     room.Config{Store: store, Logger: setupTestLogger()},
		NotFound: errNotFound,
	})
	ctx := context.Background()
	defer func() { _ = registry.Close(ctx) }()

	router := mux.NewRouter()
	handler := NewRoomsHandler(setupTestLogger(), registry)
	router.HandleFunc("/api/v1/rooms/{room}/operations", handler.Operations)

	tests := []struct {
		name     string
		target   string
		wantIDs  []string
		wantNext uint64
	}{
		{name: "unknown room", target: "/api/v1/rooms/nobody/operations", wantIDs: []string{}, wantNext: 1},
		{name: "stored room", target: "/api/v1/rooms/stored/operations", wantIDs: []string{"a", "b"}, wantNext: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, w.Code)
			var resp api.SnapshotResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

			ids := make([]string, 0, len(resp.Operations))
			for _, op := range resp.Operations {
				ids = append(ids, op.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantNext, resp.NextSeq)
			assert.Zero(t, resp.Members)
		})
	}

	assert.Empty(t, registry.Names())
}

// discardSink принимает и отбрасывает кадры
type discardSink struct{}

func (discardSink) Send([]byte) bool { return true }
