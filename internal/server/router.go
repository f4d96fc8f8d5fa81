package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophdraw/internal/server/handlers"
	"github.com/iudanet/gophdraw/internal/server/middleware"
)

// RouterDeps зависимости HTTP слоя
type RouterDeps struct {
	Logger    *slog.Logger
	Rooms     handlers.RoomProvider
	WS        http.Handler
	Conns     handlers.ConnectionCounter // Conns счетчик соединений для /health, может быть nil
	Limiter   *middleware.RateLimiter    // Limiter nil отключает ограничение подключений
	StaticDir string
	Version   string
}

// NewRouter собирает маршруты сервера
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	health := handlers.NewHealthHandler(deps.Logger, deps.Version, deps.Rooms, deps.Conns)
	rooms := handlers.NewRoomsHandler(deps.Logger, deps.Rooms)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", health.Health).Methods(http.MethodGet)
	api.HandleFunc("/rooms", rooms.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms/resolve", rooms.Resolve).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{room}/operations", rooms.Operations).Methods(http.MethodGet)

	var ws http.Handler = deps.WS
	if deps.Limiter != nil {
		ws = deps.Limiter.Middleware(ws)
	}
	r.Handle("/ws", ws).Methods(http.MethodGet)

	if deps.StaticDir != "" {
		static := handlers.NewStaticHandler(deps.StaticDir)
		r.HandleFunc("/r/{room}", static.RoomPage).Methods(http.MethodGet)
		r.PathPrefix("/").HandlerFunc(static.Files).Methods(http.MethodGet)
	}

	// Порядок: recovery снаружи, чтобы паника в логировании тоже перехватывалась
	var h http.Handler = r
	h = middleware.LoggingMiddleware(deps.Logger, "/api/v1/health")(h)
	h = middleware.TracingMiddleware(h)
	h = middleware.RecoveryMiddleware(deps.Logger)(h)

	return h
}
