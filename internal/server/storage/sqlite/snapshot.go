package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/server/storage"
)

// Load retrieves the last saved snapshot of the room
func (s *Storage) Load(ctx context.Context, room string) (*models.RoomSnapshot, error) {
	if err := storage.ValidateRoomName(room); err != nil {
		return nil, err
	}

	query := `SELECT operations, next_seq FROM room_snapshots WHERE room = ?`

	var (
		raw     string
		nextSeq int64
	)
	err := s.db.QueryRowContext(ctx, query, room).Scan(&raw, &nextSeq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snapshot, err := storage.DecodeSnapshot([]byte(raw))
	if err != nil {
		return nil, err
	}

	// Колонка next_seq авторитетна, но не может откатить счетчик ниже лога
	if uint64(nextSeq) > snapshot.NextSeq {
		snapshot.NextSeq = uint64(nextSeq)
	}

	return snapshot, nil
}

// Save overwrites the snapshot of the room
func (s *Storage) Save(ctx context.Context, room string, snapshot *models.RoomSnapshot) error {
	if err := storage.ValidateRoomName(room); err != nil {
		return err
	}

	data, err := storage.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO room_snapshots (room, operations, next_seq, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(room) DO UPDATE SET
			operations = excluded.operations,
			next_seq = excluded.next_seq,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, room, string(data), int64(snapshot.NextSeq), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot of the room
func (s *Storage) Delete(ctx context.Context, room string) error {
	if err := storage.ValidateRoomName(room); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM room_snapshots WHERE room = ?`, room); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
