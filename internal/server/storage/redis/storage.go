package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/server/storage"
)

// keyPrefix пространство имен ключей снимков
const keyPrefix = "gophdraw:room:"

var _ storage.SnapshotStore = (*Storage)(nil)

// Storage keeps one JSON snapshot per room under a plain string key.
type Storage struct {
	client *redis.Client
}

// New connects to Redis at addr and checks the connection.
func New(ctx context.Context, addr, password string, db int) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Storage{client: client}, nil
}

func roomKey(room string) string {
	return keyPrefix + room
}

// Load retrieves the last saved snapshot of the room
func (s *Storage) Load(ctx context.Context, room string) (*models.RoomSnapshot, error) {
	if err := storage.ValidateRoomName(room); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, roomKey(room)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return storage.DecodeSnapshot(data)
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

	if err := s.client.Set(ctx, roomKey(room), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot of the room
func (s *Storage) Delete(ctx context.Context, room string) error {
	if err := storage.ValidateRoomName(room); err != nil {
		return err
	}

	if err := s.client.Del(ctx, roomKey(room)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// Close closes the client
func (s *Storage) Close() error {
	return s.client.Close()
}
