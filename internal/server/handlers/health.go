package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

//go:generate moq -out health_mock.go . ConnectionCounter

// ConnectionCounter сообщает число открытых WebSocket-соединений
type ConnectionCounter interface {
	ConnectionCount() int
}

// HealthResponse тело ответа GET /api/v1/health
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version,omitempty"`
	Uptime      string `json:"uptime"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

// HealthHandler отдает состояние процесса для проверок живости
type HealthHandler struct {
	logger  *slog.Logger
	rooms   RoomProvider
	conns   ConnectionCounter
	started time.Time
	now     func() time.Time
	version string
}

// NewHealthHandler rooms и conns могут быть nil: соответствующие счетчики будут нулевыми.
func NewHealthHandler(logger *slog.Logger, version string, rooms RoomProvider, conns ConnectionCounter) *HealthHandler {
	now := time.Now
	return &HealthHandler{
		logger:  logger,
		version: version,
		rooms:   rooms,
		conns:   conns,
		now:     now,
		started: now(),
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  h.now().Sub(h.started).Truncate(time.Second).String(),
	}
	if h.rooms != nil {
		resp.Rooms = len(h.rooms.Names())
	}
	if h.conns != nil {
		resp.Connections = h.conns.ConnectionCount()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode health response", "error", err)
	}
}
