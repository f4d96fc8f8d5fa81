package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/pkg/api"
)

const (
	// MaxRoomNameLength ограничение длины имени комнаты в символах
	MaxRoomNameLength = 64

	// DefaultStrokeIdleTimeout время, после которого брошенный буфер штриха удаляется
	DefaultStrokeIdleTimeout = 30 * time.Second

	// DefaultSweepInterval период обхода комнат фоновой задачей
	DefaultSweepInterval = 10 * time.Second

	// DefaultLoadTimeout предел загрузки снимка; не зависит от контекста вызывающего
	DefaultLoadTimeout = 10 * time.Second
)

// RegistryConfig параметры реестра комнат
type RegistryConfig struct {
	Room              Config
	NotFound          error         // NotFound ошибка хранилища "снимка нет", не логируется
	StrokeIdleTimeout time.Duration // StrokeIdleTimeout возраст буфера, после которого он удаляется
	SweepInterval     time.Duration
	RoomIdleTTL       time.Duration // RoomIdleTTL 0 - пустые комнаты не выгружаются
	LoadTimeout       time.Duration
}

// entry комната реестра; ready закрывается после загрузки снимка, err выставляется до закрытия
type entry struct {
	room  *Room
	err   error
	ready chan struct{}
}

// Registry владеет всеми комнатами процесса и гарантирует один экземпляр на имя.
type Registry struct {
	cfg     RegistryConfig
	logger  *slog.Logger
	rooms   map[string]*entry
	cancel  context.CancelFunc
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
	started bool
}

// NewRegistry создает пустой реестр
func NewRegistry(cfg RegistryConfig) *Registry {
	cfg.Room = cfg.Room.withDefaults()
	if cfg.StrokeIdleTimeout <= 0 {
		cfg.StrokeIdleTimeout = DefaultStrokeIdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = DefaultLoadTimeout
	}

	return &Registry{
		cfg:    cfg,
		logger: cfg.Room.Logger,
		rooms:  make(map[string]*entry),
	}
}

// ValidateName проверяет имя комнаты: непустое, не длиннее MaxRoomNameLength, без управляющих символов.
func ValidateName(name string) error {
	if name == "" || !utf8.ValidString(name) || utf8.RuneCountInString(name) > MaxRoomNameLength {
		return ErrInvalidRoomName
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ErrInvalidRoomName
		}
	}
	return nil
}

// Get возвращает комнату, создавая и загружая ее при первом обращении.
// Конкурентные вызовы с одним именем получают один и тот же экземпляр.
// Если снимок не удалось прочитать, комната не кэшируется и следующий Get повторит загрузку.
func (g *Registry) Get(ctx context.Context, name string) (*Room, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil, ErrRegistryClosed
	}

	e, ok := g.rooms[name]
	if !ok {
		e = &entry{room: New(name, g.cfg.Room), ready: make(chan struct{})}
		g.rooms[name] = e
	}
	g.mu.Unlock()

	if !ok {
		// Загрузка без блокировки реестра; остальные ждут ready
		e.err = g.load(ctx, e.room)
		if e.err != nil {
			g.drop(name, e)
		}
		close(e.ready)
		if e.err != nil {
			return nil, e.err
		}
		return e.room, nil
	}

	select {
	case <-e.ready:
		if e.err != nil {
			return nil, e.err
		}
		return e.room, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// load восстанавливает снимок. Отмена контекста вызывающего загрузку не прерывает:
// комнату ждут и другие участники. "Не найдено" означает новую пустую комнату.
func (g *Registry) load(ctx context.Context, r *Room) error {
	store := g.cfg.Room.Store
	if store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.cfg.LoadTimeout)
	defer cancel()

	snapshot, err := store.Load(ctx, r.name)
	if err != nil {
		if g.cfg.NotFound != nil && errors.Is(err, g.cfg.NotFound) {
			return nil
		}
		g.logger.Error("Failed to load room snapshot", "room", r.name, "error", err)
		return fmt.Errorf("load room %q: %w", r.name, err)
	}

	r.restore(snapshot)
	g.logger.Info("Room loaded", "room", r.name, "operations", len(snapshot.Operations), "next_seq", snapshot.ResolveNextSeq())
	return nil
}

// drop убирает из реестра комнату, которая так и не загрузилась
func (g *Registry) drop(name string, e *entry) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rooms[name] == e {
		delete(g.rooms, name)
	}
}

// Lookup возвращает уже созданную комнату без загрузки
func (g *Registry) Lookup(name string) (*Room, bool) {
	g.mu.Lock()
	e, ok := g.rooms[name]
	g.mu.Unlock()
	if !ok {
		return nil, false
	}

	<-e.ready
	if e.err != nil {
		return nil, false
	}
	return e.room, true
}

// Peek возвращает состояние комнаты без ее создания: загруженная комната отвечает
// из памяти, иначе снимок читается из хранилища и в реестр не попадает.
func (g *Registry) Peek(ctx context.Context, name string) (Stats, error) {
	if err := ValidateName(name); err != nil {
		return Stats{}, err
	}

	g.mu.Lock()
	closed := g.closed
	g.mu.Unlock()
	if closed {
		return Stats{}, ErrRegistryClosed
	}

	if r, ok := g.Lookup(name); ok {
		return r.Stats(), nil
	}

	empty := Stats{Snapshot: &models.RoomSnapshot{Operations: []*models.Operation{}, NextSeq: 1}}
	store := g.cfg.Room.Store
	if store == nil {
		return empty, nil
	}

	snapshot, err := store.Load(ctx, name)
	if err != nil {
		if g.cfg.NotFound != nil && errors.Is(err, g.cfg.NotFound) {
			return empty, nil
		}
		return Stats{}, fmt.Errorf("read room %q: %w", name, err)
	}

	ops := make([]*models.Operation, 0, len(snapshot.Operations))
	for _, op := range snapshot.Operations {
		ops = append(ops, op.Clone())
	}
	models.SortBySeq(ops)

	return Stats{Snapshot: &models.RoomSnapshot{Operations: ops, NextSeq: snapshot.ResolveNextSeq()}}, nil
}

// Names возвращает отсортированные имена созданных комнат
func (g *Registry) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.rooms))
	for name := range g.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evict сохраняет комнату и удаляет ее из реестра.
// Комнату с подключенными участниками выгрузить нельзя.
func (g *Registry) Evict(ctx context.Context, name string) error {
	g.mu.Lock()
	e, ok := g.rooms[name]
	if !ok {
		g.mu.Unlock()
		return nil
	}
	select {
	case <-e.ready:
	default:
		g.mu.Unlock()
		return ErrRoomBusy
	}
	if !e.room.markEvicted() {
		g.mu.Unlock()
		return ErrRoomBusy
	}
	delete(g.rooms, name)
	g.mu.Unlock()

	if err := e.room.Flush(ctx); err != nil {
		return fmt.Errorf("evict %q: %w", name, err)
	}

	g.logger.Info("Room evicted", "room", name)
	return nil
}

// Start запускает фоновую задачу, удаляющую брошенные буферы штрихов
// и (если задан RoomIdleTTL) выгружающую пустые комнаты.
func (g *Registry) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started || g.closed {
		return
	}
	g.started = true

	ctx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.done = make(chan struct{})

	go g.janitor(ctx)
}

func (g *Registry) janitor(ctx context.Context) {
	defer close(g.done)

	ticker := time.NewTicker(g.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Sweep(ctx, g.cfg.Room.Now())
		}
	}
}

// Sweep выполняет один проход фоновой задачи
func (g *Registry) Sweep(ctx context.Context, now time.Time) {
	for _, r := range g.readyRooms() {
		r.SweepIdleBuffers(now, g.cfg.StrokeIdleTimeout)

		if g.cfg.RoomIdleTTL <= 0 || r.name == api.DefaultRoom {
			continue
		}
		idle := r.IdleSince()
		if idle.IsZero() || now.Sub(idle) < g.cfg.RoomIdleTTL {
			continue
		}
		if err := g.Evict(ctx, r.name); err != nil && !errors.Is(err, ErrRoomBusy) {
			g.logger.Error("Failed to evict idle room", "room", r.name, "error", err)
		}
	}
}

func (g *Registry) readyRooms() []*Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*Room, 0, len(g.rooms))
	for _, e := range g.rooms {
		select {
		case <-e.ready:
			out = append(out, e.room)
		default:
		}
	}
	return out
}

// Close останавливает фоновую задачу и сохраняет все комнаты.
// После Close реестр не выдает комнат.
func (g *Registry) Close(ctx context.Context) error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	cancel, done := g.cancel, g.done
	g.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	var errs []error
	for _, r := range g.readyRooms() {
		if err := r.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	g.mu.Lock()
	g.rooms = make(map[string]*entry)
	g.mu.Unlock()

	return errors.Join(errs...)
}
