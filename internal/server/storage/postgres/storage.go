package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/server/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS room_snapshots (
    room       TEXT PRIMARY KEY,
    operations JSONB NOT NULL,
    next_seq   BIGINT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ storage.SnapshotStore = (*Storage)(nil)

// Storage represents PostgreSQL snapshot storage backed by a pgx pool
type Storage struct {
	pool *pgxpool.Pool
}

// New opens a pool for dsn and creates the snapshot table if needed.
func New(ctx context.Context, dsn string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{pool: pool}, nil
}

// Load retrieves the last saved snapshot of the room
func (s *Storage) Load(ctx context.Context, room string) (*models.RoomSnapshot, error) {
	if err := storage.ValidateRoomName(room); err != nil {
		return nil, err
	}

	var (
		raw     []byte
		nextSeq int64
	)
	err := s.pool.QueryRow(ctx,
		`SELECT operations, next_seq FROM room_snapshots WHERE room = $1`, room,
	).Scan(&raw, &nextSeq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snapshot, err := storage.DecodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
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

	_, err = s.pool.Exec(ctx, `
		INSERT INTO room_snapshots (room, operations, next_seq, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (room) DO UPDATE SET
			operations = EXCLUDED.operations,
			next_seq = EXCLUDED.next_seq,
			updated_at = EXCLUDED.updated_at`,
		room, data, int64(snapshot.NextSeq),
	)
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

	if _, err := s.pool.Exec(ctx, `DELETE FROM room_snapshots WHERE room = $1`, room); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// Close closes the pool
func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
