package sync

import (
	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/pkg/api"
)

// EventType тип события сессии
type EventType string

// События, которые получает подписчик Events
const (
	EventJoined       EventType = "joined"
	EventDisconnected EventType = "disconnected"
	EventRoster       EventType = "roster"
	EventPreview      EventType = "preview"
	EventCreated      EventType = "created"
	EventRemoved      EventType = "removed"
	EventCleared      EventType = "cleared"
	EventCursor       EventType = "cursor"
	EventServerError  EventType = "error"
)

// Event изменение состояния комнаты для UI
type Event struct {
	Err         error
	Operation   *models.Operation
	Roster      map[string]models.UserProfile
	Cursor      *api.CursorRelay
	Type        EventType
	OperationID string
	Message     string
}
