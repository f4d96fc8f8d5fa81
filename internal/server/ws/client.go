package ws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait время на запись одного кадра
	writeWait = 10 * time.Second

	// pongWait время ожидания pong от клиента
	pongWait = 60 * time.Second

	// pingPeriod должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize максимальный размер входящего кадра
	maxMessageSize = 512 * 1024

	// sendBufferSize емкость очереди исходящих кадров
	sendBufferSize = 256
)

// Client одно websocket соединение.
// Исходящие кадры идут через буферизованную очередь, которую вычитывает writePump.
type Client struct {
	conn      *websocket.Conn
	logger    *slog.Logger
	send      chan []byte
	done      chan struct{}
	id        string
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		logger: logger.With("conn_id", id),
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// ID идентификатор соединения
func (c *Client) ID() string {
	return c.id
}

// Send ставит кадр в очередь не блокируясь.
// Переполненная очередь означает медленного клиента: соединение закрывается.
func (c *Client) Send(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		c.logger.Warn("Send buffer full, closing connection")
		c.Close()
		return false
	}
}

// Close закрывает соединение. Повторные вызовы безопасны.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Done закрывается, когда соединение закрыто
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// writePump пишет кадры из очереди и отправляет ping.
// Единственный писатель соединения.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			if err := c.write(websocket.TextMessage, frame); err != nil {
				c.logger.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("Ping failed", "error", err)
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	return c.conn.WriteMessage(messageType, data)
}

// readPump читает кадры и передает их handle. Единственный читатель соединения.
// handle получает и возвращает состояние сессии, оно не хранится в Client.
func (c *Client) readPump(ctx context.Context, handle func(ctx context.Context, sess Session, raw []byte) Session) Session {
	var sess Session

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket read error", "error", err)
			}
			return sess
		}
		if messageType != websocket.TextMessage {
			c.logger.Debug("Ignoring non-text frame", "type", messageType)
			continue
		}

		sess = handle(ctx, sess, raw)
	}
}
