package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/ksuid"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/room"
)

// Rooms источник комнат по имени
type Rooms interface {
	Get(ctx context.Context, name string) (*room.Room, error)
}

// SessionResumer восстанавливает профиль по токену прошлой сессии
type SessionResumer interface {
	Resume(room, token string) (*models.UserProfile, error)
}

// Session состояние соединения после join. Передается через цикл чтения явно.
type Session struct {
	Room    *room.Room
	ConnID  string
	Profile models.UserProfile
}

// Joined сообщает, вошло ли соединение в комнату
func (s Session) Joined() bool {
	return s.Room != nil
}

// Config параметры хаба
type Config struct {
	Rooms       Rooms
	Sessions    SessionResumer // Sessions может быть nil: токены не проверяются
	Logger      *slog.Logger
	CheckOrigin func(r *http.Request) bool // CheckOrigin nil разрешает любой Origin
	Now         func() time.Time
}

// Hub принимает websocket соединения и связывает их с комнатами
type Hub struct {
	rooms    Rooms
	sessions SessionResumer
	logger   *slog.Logger
	now      func() time.Time
	clients  map[*Client]struct{}
	upgrader websocket.Upgrader
	wg       sync.WaitGroup
	mu       sync.Mutex
	closed   bool
}

// NewHub создает хаб
func NewHub(cfg Config) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Hub{
		rooms:    cfg.Rooms,
		sessions: cfg.Sessions,
		logger:   logger,
		now:      now,
		clients:  make(map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeHTTP обрабатывает GET /ws: апгрейд соединения и запуск read/write pump
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту ошибкой
		h.logger.Warn("Failed to upgrade websocket", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	c := newClient(ksuid.New().String(), conn, h.logger)
	if !h.track(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		c.Close()
		return
	}

	h.logger.Info("WebSocket connected", "conn_id", c.id, "remote_addr", r.RemoteAddr)

	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		c.writePump()
	}()
	go func() {
		defer h.wg.Done()
		h.serveClient(c)
	}()
}

func (h *Hub) serveClient(c *Client) {
	// Контекст запроса отменяется после апгрейда, поэтому соединение живет со своим
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-c.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	sess := c.readPump(ctx, func(ctx context.Context, sess Session, raw []byte) Session {
		return h.dispatch(ctx, c, sess, raw)
	})

	if sess.Joined() {
		sess.Room.RemoveUser(c.id)
	}
	c.Close()
	h.untrack(c)

	h.logger.Info("WebSocket disconnected", "conn_id", c.id)
}

func (h *Hub) track(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) untrack(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, c)
}

// ConnectionCount количество открытых соединений
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Shutdown закрывает все соединения и ждет завершения их горутин
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		c.Close()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
