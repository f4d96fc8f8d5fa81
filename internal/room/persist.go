package room

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/iudanet/gophdraw/internal/telemetry"
)

// saveTimeout ограничивает одну фоновую запись снимка
const saveTimeout = 10 * time.Second

// scheduleSaveLocked планирует отложенную запись снимка.
// Пока запись ожидает, новые изменения не создают новых таймеров: при срабатывании
// сохраняется состояние на момент записи, а не на момент планирования.
func (r *Room) scheduleSaveLocked() {
	if r.cfg.Store == nil || r.pending {
		return
	}

	r.pending = true
	r.saveTimer = time.AfterFunc(r.cfg.SaveDebounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := r.save(ctx); err != nil {
			// Комната продолжает работать из памяти, следующее изменение повторит запись
			r.logger.Error("Failed to save room snapshot", "error", err)
		}
	})
}

// save копирует текущее состояние и пишет его в хранилище.
// saveMu берется до копирования, поэтому записи одной комнаты не перегоняют друг друга.
func (r *Room) save(ctx context.Context) error {
	if r.cfg.Store == nil {
		return nil
	}

	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	r.mu.Lock()
	snapshot := r.snapshotLocked()
	r.pending = false
	r.saveTimer = nil
	r.mu.Unlock()

	ctx, span := telemetry.StartSpan(ctx, "room.save",
		attribute.String("room", r.name),
		attribute.Int("operations", len(snapshot.Operations)),
		attribute.Int64("next_seq", int64(snapshot.NextSeq)),
	)
	defer span.End()

	if err := r.cfg.Store.Save(ctx, r.name, snapshot); err != nil {
		telemetry.RecordError(span, err)
		return fmt.Errorf("save room %q: %w", r.name, err)
	}

	r.logger.Debug("Room snapshot saved", "operations", len(snapshot.Operations), "next_seq", snapshot.NextSeq)
	return nil
}

// Flush отменяет отложенную запись и сохраняет снимок синхронно.
// Используется при выгрузке комнаты и остановке сервера.
func (r *Room) Flush(ctx context.Context) error {
	r.mu.Lock()
	if r.saveTimer != nil {
		r.saveTimer.Stop()
	}
	r.mu.Unlock()

	return r.save(ctx)
}

// SavePending сообщает, ожидает ли комната отложенной записи
func (r *Room) SavePending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pending
}
