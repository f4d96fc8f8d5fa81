package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/server/storage"
)

func TestStorage_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	snapshot := &models.RoomSnapshot{
		Operations: []*models.Operation{
			newTestOperation(1, models.ToolBrush),
			newTestOperation(2, models.ToolEraser),
		},
		NextSeq: 3,
	}

	require.NoError(t, s.Save(ctx, "main", snapshot))

	loaded, err := s.Load(ctx, "main")
	require.NoError(t, err)
	require.Len(t, loaded.Operations, 2)
	assert.Equal(t, snapshot.Operations[0].ID, loaded.Operations[0].ID)
	assert.Equal(t, models.ToolEraser, loaded.Operations[1].Tool)
	assert.Equal(t, uint64(3), loaded.NextSeq)
}

func TestStorage_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := &models.RoomSnapshot{Operations: []*models.Operation{newTestOperation(1, models.ToolBrush)}, NextSeq: 2}
	require.NoError(t, s.Save(ctx, "main", first))

	// После clear лог пуст, но счетчик продолжает расти
	second := &models.RoomSnapshot{NextSeq: 2}
	require.NoError(t, s.Save(ctx, "main", second))

	loaded, err := s.Load(ctx, "main")
	require.NoError(t, err)
	assert.Empty(t, loaded.Operations)
	assert.Equal(t, uint64(2), loaded.NextSeq)
}

func TestStorage_LoadNotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.Save(ctx, "room-a", &models.RoomSnapshot{NextSeq: 1}))
	require.NoError(t, s.Delete(ctx, "room-a"))

	_, err := s.Load(ctx, "room-a")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// Повторное удаление не является ошибкой
	assert.NoError(t, s.Delete(ctx, "room-a"))
}

func TestStorage_InvalidRoomName(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.ErrorIs(t, s.Save(ctx, "", &models.RoomSnapshot{}), storage.ErrInvalidRoomName)
	_, err := s.Load(ctx, "")
	assert.ErrorIs(t, err, storage.ErrInvalidRoomName)
}

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newTestOperation(seq uint64, tool models.Tool) *models.Operation {
	return &models.Operation{
		ID:          uuid.New().String(),
		Seq:         seq,
		AuthorID:    "user-1",
		Tool:        tool,
		Color:       "#0b66ff",
		StrokeWidth: 4,
		Points:      []models.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
		CreatedAt:   time.Now().UTC(),
	}
}
