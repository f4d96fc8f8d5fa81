package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/gophdraw/internal/models"
)

// SnapshotStore defines interface for room state persistence.
// Запись хранится по имени комнаты и перезаписывается целиком при каждом сохранении.
type SnapshotStore interface {
	// Load retrieves the last saved snapshot of the room
	// Returns ErrSnapshotNotFound if the room was never saved
	Load(ctx context.Context, room string) (*models.RoomSnapshot, error)

	// Save overwrites the snapshot of the room
	Save(ctx context.Context, room string, snapshot *models.RoomSnapshot) error

	// Delete removes the snapshot of the room
	// Deleting a missing room is not an error
	Delete(ctx context.Context, room string) error

	// Close releases the underlying connection
	Close() error
}

// EncodeSnapshot сериализует снимок в JSON вида {"operations": [...], "nextSeq": N}.
func EncodeSnapshot(snapshot *models.RoomSnapshot) ([]byte, error) {
	ops := snapshot.Operations
	if ops == nil {
		ops = []*models.Operation{}
	}

	data, err := json.Marshal(models.RoomSnapshot{Operations: ops, NextSeq: snapshot.NextSeq})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot разбирает JSON снимка. NextSeq восстанавливается из лога, если он отсутствует.
func DecodeSnapshot(data []byte) (*models.RoomSnapshot, error) {
	var snapshot models.RoomSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if snapshot.Operations == nil {
		snapshot.Operations = []*models.Operation{}
	}
	models.SortBySeq(snapshot.Operations)
	snapshot.NextSeq = snapshot.ResolveNextSeq()
	return &snapshot, nil
}

// ValidateRoomName returns ErrInvalidRoomName for an empty name.
func ValidateRoomName(room string) error {
	if room == "" {
		return ErrInvalidRoomName
	}
	return nil
}
