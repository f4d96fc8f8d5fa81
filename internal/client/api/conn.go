package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/gophdraw/pkg/api"
)

const writeWait = 10 * time.Second

// ErrClosed соединение закрыто
var ErrClosed = errors.New("connection closed")

// Conn websocket соединение с комнатой.
// Send безопасен из нескольких горутин, Receive вызывается из одной.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

// WebSocketURL строит адрес /ws из адреса сервера (http -> ws, https -> wss)
func WebSocketURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	u.RawQuery = ""

	return u.String(), nil
}

// Dial подключается к серверу
func Dial(ctx context.Context, serverURL string) (*Conn, error) {
	wsURL, err := WebSocketURL(serverURL)
	if err != nil {
		return nil, err
	}

	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", wsURL, err)
	}

	return &Conn{ws: ws}, nil
}

// Send отправляет сообщение протокола
func (c *Conn) Send(t api.MessageType, payload any) error {
	frame, err := api.Encode(t, payload)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return ErrClosed
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("write %s: %w", t, err)
	}
	return nil
}

// Receive читает следующее сообщение. Некорректные кадры пропускаются.
func (c *Conn) Receive() (api.Envelope, error) {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return api.Envelope{}, err
		}

		env, err := api.Decode(raw)
		if err != nil {
			continue
		}
		return env, nil
	}
}

// Close закрывает соединение. Повторный вызов безопасен.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	return c.ws.Close()
}
