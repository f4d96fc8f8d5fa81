package room

import (
	"context"

	"github.com/iudanet/gophdraw/internal/models"
)

//go:generate moq -out interfaces_mock.go . SnapshotStore Sink TokenIssuer

// SnapshotStore сохраняет и загружает снимок комнаты.
type SnapshotStore interface {
	Load(ctx context.Context, room string) (*models.RoomSnapshot, error)
	Save(ctx context.Context, room string, snapshot *models.RoomSnapshot) error
}

// Sink очередь исходящих кадров одного соединения.
// Send не должен блокироваться: комната вызывает его под своей блокировкой.
// false означает, что кадр не принят (соединение медленное или закрыто).
type Sink interface {
	Send(frame []byte) bool
}

// TokenIssuer выдает токен, по которому переподключившийся клиент сохраняет свой userId.
type TokenIssuer interface {
	Issue(room string, profile models.UserProfile) (string, error)
}
