package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdraw/pkg/api"
)

func TestWebSocketURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8080", want: "ws://localhost:8080/ws"},
		{in: "https://draw.example.com/", want: "wss://draw.example.com/ws"},
		{in: "https://draw.example.com/board?x=1", want: "wss://draw.example.com/board/ws"},
		{in: "ws://localhost:8080", want: "ws://localhost:8080/ws"},
		{in: "ftp://localhost", wantErr: true},
		{in: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := WebSocketURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// echoServer возвращает каждый кадр обратно, предварительно отправив мусорный кадр
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws", r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
			_ = conn.WriteMessage(mt, data)
		}
	}))
}

func TestConn_SendReceive(t *testing.T) {
	server := echoServer(t)
	defer server.Close()

	conn, err := Dial(context.Background(), server.URL)
	require.NoError(t, err)

	require.NoError(t, conn.Send(api.TypePing, api.PingMessage{ClientTs: 42}))

	env, err := conn.Receive()
	require.NoError(t, err)
	assert.Equal(t, api.TypePing, env.Type)

	var msg api.PingMessage
	require.NoError(t, env.DecodeData(&msg))
	assert.Equal(t, int64(42), msg.ClientTs)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	assert.ErrorIs(t, conn.Send(api.TypeUndo, nil), ErrClosed)
}

func TestDial_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := Dial(context.Background(), server.URL)
	assert.Error(t, err)
}
