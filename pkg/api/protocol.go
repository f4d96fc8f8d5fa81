package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/gophdraw/internal/models"
)

// MessageType имя сообщения в конверте {"type": ..., "data": ...}
type MessageType string

// Сообщения клиент -> сервер
const (
	TypeJoin        MessageType = "join"
	TypeChunk       MessageType = "chunk"
	TypeStrokeEnd   MessageType = "strokeEnd"
	TypeStrokeFinal MessageType = "strokeFinal"
	TypeCursor      MessageType = "cursor"
	TypeUndo        MessageType = "undo"
	TypeRedo        MessageType = "redo"
	TypeClear       MessageType = "clear"
	TypePing        MessageType = "ping"
)

// Сообщения сервер -> клиент
const (
	TypeSessionInit      MessageType = "sessionInit"
	TypeRosterUpdate     MessageType = "rosterUpdate"
	TypeChunkRelay       MessageType = "chunkRelay"
	TypeOperationCreated MessageType = "operationCreated"
	TypeOperationRemoved MessageType = "operationRemoved"
	TypeRoomCleared      MessageType = "roomCleared"
	TypeCursorRelay      MessageType = "cursorRelay"
	TypePong             MessageType = "pong"
	TypeError            MessageType = "error"
)

var (
	// ErrMalformedMessage indicates a frame that is not a valid envelope
	ErrMalformedMessage = errors.New("malformed message")

	// ErrMissingType indicates an envelope without a type
	ErrMissingType = errors.New("message type is missing")
)

// Envelope конверт каждого текстового кадра websocket
type Envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode упаковывает payload в конверт. nil payload дает сообщение без data.
func Encode(t MessageType, payload any) ([]byte, error) {
	env := Envelope{Type: t}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", t, err)
		}
		env.Data = data
	}

	out, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return out, nil
}

// Decode разбирает конверт, не трогая payload.
func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	if env.Type == "" {
		return Envelope{}, ErrMissingType
	}
	return env, nil
}

// DecodeData разбирает payload конверта в v.
func (e Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: %s has no data", ErrMalformedMessage, e.Type)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedMessage, e.Type, err)
	}
	return nil
}

// JoinRequest вход в комнату
type JoinRequest struct {
	Room        string `json:"room"`
	DisplayName string `json:"displayName,omitempty"`
	ResumeToken string `json:"resumeToken,omitempty"` // токен прошлой сессии, сохраняет userId
}

// ChunkMessage очередная порция точек штриха в процессе рисования
type ChunkMessage struct {
	Meta          *models.StrokeMeta `json:"meta,omitempty"` // передается с первым чанком штриха
	CorrelationID string             `json:"correlationId"`
	Points        []models.Point     `json:"points"`
}

// StrokeEndMessage завершение буферизованного штриха
type StrokeEndMessage struct {
	Meta          *models.StrokeMeta `json:"meta,omitempty"`
	CorrelationID string             `json:"correlationId"`
}

// StrokeSubmission штрих, полностью собранный клиентом
type StrokeSubmission struct {
	CorrelationID string         `json:"correlationId,omitempty"`
	Tool          models.Tool    `json:"tool"`
	Color         string         `json:"color"`
	Points        []models.Point `json:"points"`
	StrokeWidth   float64        `json:"strokeWidth"`
}

// StrokeFinalMessage отправка готового штриха одним сообщением
type StrokeFinalMessage struct {
	Operation StrokeSubmission `json:"operation"`
}

// CursorMessage позиция курсора клиента
type CursorMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PingMessage проба задержки
type PingMessage struct {
	ClientTs int64 `json:"clientTs"`
}

// SessionInit первое сообщение после join: профиль и весь лог комнаты
type SessionInit struct {
	Profile     models.UserProfile  `json:"profile"`
	UserID      string              `json:"userId"`
	Room        string              `json:"room"`
	ResumeToken string              `json:"resumeToken,omitempty"`
	Operations  []*models.Operation `json:"operations"`
}

// RosterUpdate список участников комнаты (userId -> профиль)
type RosterUpdate struct {
	Users map[string]models.UserProfile `json:"users"`
}

// ChunkRelay чанк другого участника для превью
type ChunkRelay struct {
	Meta          *models.StrokeMeta `json:"meta,omitempty"`
	CorrelationID string             `json:"correlationId"`
	AuthorID      string             `json:"authorId"`
	Points        []models.Point     `json:"points"`
}

// OperationCreated новая (или возвращенная redo) операция лога
type OperationCreated struct {
	Operation *models.Operation `json:"operation"`
}

// OperationRemoved операция снята undo
type OperationRemoved struct {
	OperationID string `json:"operationId"`
}

// CursorRelay курсор другого участника
type CursorRelay struct {
	UserID string  `json:"userId"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Pong ответ на ping с обоими временами в миллисекундах
type Pong struct {
	ClientTs int64 `json:"clientTs"`
	ServerTs int64 `json:"serverTs"`
}

// ErrorMessage ошибка обработки сообщения клиента
type ErrorMessage struct {
	Message string `json:"message"`
}
