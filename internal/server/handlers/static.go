package handlers

import (
	"net/http"
	"path/filepath"
)

// StaticHandler отдает веб-клиент. Страница комнаты /r/{room} получает тот же index.html,
// комната определяется на клиенте через /api/v1/rooms/resolve.
type StaticHandler struct {
	files http.Handler
	dir   string
}

// NewStaticHandler создает handler статики из каталога dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

// Files обрабатывает GET / и ресурсы клиента
func (h *StaticHandler) Files(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}

// RoomPage обрабатывает GET /r/{room}
func (h *StaticHandler) RoomPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
