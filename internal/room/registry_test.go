package room

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdraw/internal/models"
)

var errTestNotFound = errors.New("not found")

// memoryStore хранилище снимков в памяти для тестов реестра
type memoryStore struct {
	data  map[string]*models.RoomSnapshot
	loads atomic.Int32
	mu    sync.Mutex
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]*models.RoomSnapshot)}
}

func (m *memoryStore) Load(_ context.Context, room string) (*models.RoomSnapshot, error) {
	m.loads.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.data[room]
	if !ok {
		return nil, errTestNotFound
	}
	return s, nil
}

func (m *memoryStore) Save(_ context.Context, room string, snapshot *models.RoomSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[room] = snapshot
	return nil
}

func newTestRegistry(store SnapshotStore) *Registry {
	return NewRegistry(RegistryConfig{
		Room: Config{
			Store:        store,
			Logger:       setupTestLogger(),
			SaveDebounce: time.Hour,
		},
		NotFound: errTestNotFound,
	})
}

func TestRegistry_GetReturnsSingleInstance(t *testing.T) {
	store := newMemoryStore()
	g := newTestRegistry(store)
	ctx := context.Background()

	const workers = 16
	rooms := make([]*Room, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := g.Get(ctx, "shared")
			if err != nil {
				panic(err)
			}
			rooms[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range rooms {
		assert.Same(t, rooms[0], r)
	}
	assert.Equal(t, int32(1), store.loads.Load())
	assert.Equal(t, []string{"shared"}, g.Names())
}

func TestRegistry_GetRestoresSnapshot(t *testing.T) {
	store := newMemoryStore()
	store.data["main"] = &models.RoomSnapshot{
		Operations: []*models.Operation{
			{ID: "b", Seq: 5, Tool: models.ToolEraser, Points: []models.Point{{X: 1, Y: 1}}},
			{ID: "a", Seq: 2, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}},
		},
	}
	g := newTestRegistry(store)

	r, err := g.Get(context.Background(), "main")
	require.NoError(t, err)

	ops := r.Operations()
	require.Len(t, ops, 2)
	assert.Equal(t, "a", ops[0].ID)
	assert.Equal(t, "b", ops[1].ID)

	// После перезапуска seq не переиспользуется
	_, _ = join(t, r, "conn-a")
	op := drawStroke(t, r, "conn-a", "c1", models.ToolBrush)
	assert.Equal(t, uint64(6), op.Seq)
}

func TestRegistry_ReloadAfterClearDoesNotReuseSeq(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	g := newTestRegistry(store)
	r, err := g.Get(ctx, "main")
	require.NoError(t, err)
	_, _ = join(t, r, "conn-a")
	drawStroke(t, r, "conn-a", "c1", models.ToolBrush)
	drawStroke(t, r, "conn-a", "c2", models.ToolBrush)
	r.Clear()
	require.NoError(t, g.Close(ctx))

	restarted := newTestRegistry(store)
	r, err = restarted.Get(ctx, "main")
	require.NoError(t, err)
	assert.Empty(t, r.Operations())

	_, _ = join(t, r, "conn-b")
	op := drawStroke(t, r, "conn-b", "c3", models.ToolBrush)
	assert.Equal(t, uint64(3), op.Seq)
}

func TestRegistry_LoadFailureIsNotCached(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	store := &SnapshotStoreMock{
		LoadFunc: func(context.Context, string) (*models.RoomSnapshot, error) {
			if fail.Load() {
				return nil, errors.New("connection refused")
			}
			return &models.RoomSnapshot{
				Operations: []*models.Operation{{ID: "a", Seq: 9, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}}},
				NextSeq:    10,
			}, nil
		},
	}
	g := newTestRegistry(store)
	ctx := context.Background()

	_, err := g.Get(ctx, "flaky")
	require.Error(t, err)
	assert.Empty(t, g.Names())
	_, ok := g.Lookup("flaky")
	assert.False(t, ok)

	// Хранилище восстановилось: следующий Get загружает снимок заново
	fail.Store(false)
	r, err := g.Get(ctx, "flaky")
	require.NoError(t, err)
	assert.Len(t, r.Operations(), 1)
	assert.Len(t, store.LoadCalls(), 2)

	_, _ = join(t, r, "conn-a")
	op := drawStroke(t, r, "conn-a", "c1", models.ToolBrush)
	assert.Equal(t, uint64(10), op.Seq)
}

func TestRegistry_LoadIgnoresCallerCancel(t *testing.T) {
	store := &SnapshotStoreMock{
		LoadFunc: func(ctx context.Context, _ string) (*models.RoomSnapshot, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &models.RoomSnapshot{
				Operations: []*models.Operation{{ID: "a", Seq: 9, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}}},
				NextSeq:    10,
			}, nil
		},
	}
	g := newTestRegistry(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := g.Get(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, r.Operations(), 1)

	_, _ = join(t, r, "conn-a")
	op := drawStroke(t, r, "conn-a", "c1", models.ToolBrush)
	assert.Equal(t, uint64(10), op.Seq)
}

func TestRegistry_WaitersSeeLoadFailure(t *testing.T) {
	release := make(chan struct{})
	store := &SnapshotStoreMock{
		LoadFunc: func(context.Context, string) (*models.RoomSnapshot, error) {
			<-release
			return nil, errors.New("timeout")
		},
	}
	g := newTestRegistry(store)

	errs := make(chan error, 2)
	go func() {
		_, err := g.Get(context.Background(), "slow")
		errs <- err
	}()
	require.Eventually(t, func() bool { return len(g.Names()) == 1 }, time.Second, time.Millisecond)
	go func() {
		_, err := g.Get(context.Background(), "slow")
		errs <- err
	}()

	close(release)
	for i := 0; i < 2; i++ {
		assert.Error(t, <-errs)
	}
	assert.Empty(t, g.Names())
}

func TestRegistry_Peek(t *testing.T) {
	store := newMemoryStore()
	store.data["stored"] = &models.RoomSnapshot{
		Operations: []*models.Operation{{ID: "a", Seq: 4, Tool: models.ToolBrush, Points: []models.Point{{X: 1, Y: 1}}}},
	}
	g := newTestRegistry(store)
	ctx := context.Background()

	stats, err := g.Peek(ctx, "stored")
	require.NoError(t, err)
	require.Len(t, stats.Snapshot.Operations, 1)
	assert.Equal(t, uint64(5), stats.Snapshot.NextSeq)

	stats, err = g.Peek(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, stats.Snapshot.Operations)
	assert.Equal(t, uint64(1), stats.Snapshot.NextSeq)

	// Чтение не регистрирует комнаты
	assert.Empty(t, g.Names())

	r, err := g.Get(ctx, "live")
	require.NoError(t, err)
	_, _ = join(t, r, "conn-a")
	drawStroke(t, r, "conn-a", "c1", models.ToolBrush)

	stats, err = g.Peek(ctx, "live")
	require.NoError(t, err)
	assert.Len(t, stats.Snapshot.Operations, 1)
	assert.Equal(t, 1, stats.Members)

	_, err = g.Peek(ctx, "bad name")
	assert.ErrorIs(t, err, ErrInvalidRoomName)

	require.NoError(t, g.Close(ctx))
	_, err = g.Peek(ctx, "live")
	assert.ErrorIs(t, err, ErrRegistryClosed)
}

func TestRegistry_GetInvalidName(t *testing.T) {
	g := newTestRegistry(nil)

	_, err := g.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRoomName)
	assert.Empty(t, g.Names())
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "default room", input: "main"},
		{name: "unicode", input: "комната-1"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: "my room", wantErr: true},
		{name: "control char", input: "a\x00b", wantErr: true},
		{name: "too long", input: string(make([]byte, MaxRoomNameLength+1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoomName)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegistry_Evict(t *testing.T) {
	store := newMemoryStore()
	g := newTestRegistry(store)
	ctx := context.Background()

	r, err := g.Get(ctx, "room-a")
	require.NoError(t, err)
	_, _ = join(t, r, "conn-a")
	drawStroke(t, r, "conn-a", "c1", models.ToolBrush)

	assert.ErrorIs(t, g.Evict(ctx, "room-a"), ErrRoomBusy)

	r.RemoveUser("conn-a")
	require.NoError(t, g.Evict(ctx, "room-a"))
	assert.Empty(t, g.Names())

	// Выгруженная комната не принимает участников
	_, err = r.Join("conn-b", "", &recordingSink{}, nil)
	assert.ErrorIs(t, err, ErrRoomEvicted)

	// Снимок сохранен при выгрузке и загружается в новый экземпляр
	reloaded, err := g.Get(ctx, "room-a")
	require.NoError(t, err)
	assert.NotSame(t, r, reloaded)
	assert.Len(t, reloaded.Operations(), 1)

	assert.NoError(t, g.Evict(ctx, "missing"))
}

func TestRegistry_SweepDropsIdleBuffersAndRooms(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	g := NewRegistry(RegistryConfig{
		Room: Config{
			Logger: setupTestLogger(),
			Now:    func() time.Time { return now },
		},
		StrokeIdleTimeout: 30 * time.Second,
		RoomIdleTTL:       time.Minute,
	})
	ctx := context.Background()

	busy, err := g.Get(ctx, "busy")
	require.NoError(t, err)
	_, _ = join(t, busy, "conn-a")
	require.NoError(t, busy.BufferChunk("conn-a", "c1", []models.Point{{X: 1, Y: 1}}, nil))

	_, err = g.Get(ctx, "empty")
	require.NoError(t, err)
	_, err = g.Get(ctx, "main")
	require.NoError(t, err)

	g.Sweep(ctx, now.Add(2*time.Minute))

	assert.Equal(t, 0, busy.PendingStrokes())
	// Пустая комната выгружена, main и комната с участником остаются
	assert.Equal(t, []string{"busy", "main"}, g.Names())
}

func TestRegistry_StartAndClose(t *testing.T) {
	store := newMemoryStore()
	g := NewRegistry(RegistryConfig{
		Room: Config{
			Store:        store,
			Logger:       setupTestLogger(),
			SaveDebounce: time.Hour,
		},
		NotFound:      errTestNotFound,
		SweepInterval: 5 * time.Millisecond,
	})
	ctx := context.Background()
	g.Start(ctx)
	g.Start(ctx)

	for _, name := range []string{"a", "b"} {
		r, err := g.Get(ctx, name)
		require.NoError(t, err)
		_, _ = join(t, r, "conn-"+name)
		drawStroke(t, r, "conn-"+name, "c1", models.ToolBrush)
	}

	require.NoError(t, g.Close(ctx))

	// Close сохранил обе комнаты, не дожидаясь таймера
	store.mu.Lock()
	assert.Len(t, store.data, 2)
	assert.Len(t, store.data["a"].Operations, 1)
	store.mu.Unlock()

	_, err := g.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrRegistryClosed)
	assert.NoError(t, g.Close(ctx))
}

func TestRegistry_GetWaitsForLoad(t *testing.T) {
	release := make(chan struct{})
	store := &SnapshotStoreMock{
		LoadFunc: func(context.Context, string) (*models.RoomSnapshot, error) {
			<-release
			return &models.RoomSnapshot{NextSeq: 10}, nil
		},
	}
	g := newTestRegistry(store)

	first := make(chan *Room)
	go func() {
		r, _ := g.Get(context.Background(), "slow")
		first <- r
	}()

	// Второй вызов с истекшим контекстом не дожидается загрузки
	require.Eventually(t, func() bool { return len(g.Names()) == 1 }, time.Second, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Get(ctx, "slow")
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	r := <-first
	require.NotNil(t, r)
	assert.Equal(t, uint64(10), r.Snapshot().NextSeq)
	assert.Len(t, store.LoadCalls(), 1)
}
