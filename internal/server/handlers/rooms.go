package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophdraw/internal/room"
	"github.com/iudanet/gophdraw/pkg/api"
)

// roomPathPrefix префикс страницы комнаты, например /r/team-a
const roomPathPrefix = "/r/"

//go:generate moq -out rooms_mock.go . RoomProvider

// RoomProvider источник комнат для HTTP API. Чтение через HTTP не создает комнат.
type RoomProvider interface {
	Peek(ctx context.Context, name string) (room.Stats, error)
	Names() []string
}

// RoomsHandler отдает состояние комнат по HTTP
type RoomsHandler struct {
	logger *slog.Logger
	rooms  RoomProvider
}

// NewRoomsHandler создает handler комнат
func NewRoomsHandler(logger *slog.Logger, rooms RoomProvider) *RoomsHandler {
	return &RoomsHandler{
		logger: logger,
		rooms:  rooms,
	}
}

// ResolveRoomName выбирает комнату: параметр room, затем путь вида /r/{room}, иначе api.DefaultRoom.
func ResolveRoomName(query, path string) string {
	if q := strings.TrimSpace(query); q != "" {
		return q
	}
	if rest, ok := strings.CutPrefix(path, roomPathPrefix); ok {
		name, _, _ := strings.Cut(rest, "/")
		if name != "" {
			return name
		}
	}
	return api.DefaultRoom
}

// Resolve обрабатывает GET /api/v1/rooms/resolve?room=...&path=...
func (h *RoomsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := ResolveRoomName(q.Get("room"), q.Get("path"))

	if err := room.ValidateName(name); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid room name")
		return
	}

	h.writeJSON(w, http.StatusOK, api.ResolveRoomResponse{Room: name})
}

// List обрабатывает GET /api/v1/rooms
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, api.RoomsResponse{Rooms: h.rooms.Names()})
}

// Operations обрабатывает GET /api/v1/rooms/{room}/operations
// Возвращает подтвержденный лог комнаты в порядке seq
func (h *RoomsHandler) Operations(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["room"]

	stats, err := h.rooms.Peek(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrInvalidRoomName):
			h.writeError(w, http.StatusBadRequest, "invalid room name")
		case errors.Is(err, room.ErrRegistryClosed):
			h.writeError(w, http.StatusServiceUnavailable, "server is shutting down")
		default:
			h.logger.Error("Failed to read room", "room", name, "error", err)
			h.writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, api.SnapshotResponse{
		Room:       name,
		Operations: stats.Snapshot.Operations,
		NextSeq:    stats.Snapshot.NextSeq,
		Members:    stats.Members,
	})
}

func (h *RoomsHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *RoomsHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: msg})
}
