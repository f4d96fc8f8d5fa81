package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/gophdraw/pkg/api"
)

// Client представляет HTTP клиент для REST API сервера
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Snapshot получает подтвержденный лог комнаты
func (c *Client) Snapshot(ctx context.Context, room string) (*api.SnapshotResponse, error) {
	var resp api.SnapshotResponse
	path := "/api/v1/rooms/" + url.PathEscape(room) + "/operations"
	if err := c.doRequest(ctx, http.MethodGet, path, &resp); err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	return &resp, nil
}

// ResolveRoom определяет комнату по имени или пути страницы (/r/{room})
func (c *Client) ResolveRoom(ctx context.Context, room, pagePath string) (string, error) {
	q := url.Values{}
	if room != "" {
		q.Set("room", room)
	}
	if pagePath != "" {
		q.Set("path", pagePath)
	}

	var resp api.ResolveRoomResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/rooms/resolve?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("resolve room request failed: %w", err)
	}
	return resp.Room, nil
}

// Rooms возвращает список комнат сервера
func (c *Client) Rooms(ctx context.Context) ([]string, error) {
	var resp api.RoomsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/rooms", &resp); err != nil {
		return nil, fmt.Errorf("rooms request failed: %w", err)
	}
	return resp.Rooms, nil
}

// doRequest выполняет HTTP запрос без тела
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
