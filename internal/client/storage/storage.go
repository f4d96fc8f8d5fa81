package storage

import (
	"context"

	"github.com/iudanet/gophdraw/internal/models"
)

//go:generate moq -out storage_mock.go . LogStorage SessionStorage

// LogStorage локальная копия подтвержденного лога комнаты.
// Нужна для просмотра холста без подключения к серверу.
type LogStorage interface {
	// ReplaceLog перезаписывает лог комнаты целиком (sessionInit)
	ReplaceLog(ctx context.Context, room string, ops []*models.Operation) error

	// PutOperation добавляет или заменяет операцию (operationCreated)
	PutOperation(ctx context.Context, room string, op *models.Operation) error

	// DeleteOperation удаляет операцию по id (operationRemoved)
	DeleteOperation(ctx context.Context, room, id string) error

	// ClearLog удаляет все операции комнаты (roomCleared)
	ClearLog(ctx context.Context, room string) error

	// GetLog возвращает операции комнаты по возрастанию seq
	GetLog(ctx context.Context, room string) ([]*models.Operation, error)
}

// Session данные прошлого подключения к комнате
type Session struct {
	Room        string `json:"room"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	ResumeToken string `json:"resumeToken"`
}

// SessionStorage хранит сессии по имени комнаты
type SessionStorage interface {
	// SaveSession сохраняет сессию комнаты
	SaveSession(ctx context.Context, session *Session) error

	// GetSession возвращает сессию комнаты или ErrSessionNotFound
	GetSession(ctx context.Context, room string) (*Session, error)

	// DeleteSession удаляет сессию комнаты
	DeleteSession(ctx context.Context, room string) error
}
