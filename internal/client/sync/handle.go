package sync

import (
	"context"

	"github.com/iudanet/gophdraw/internal/client/storage"
	"github.com/iudanet/gophdraw/pkg/api"
)

// handle применяет сообщение сервера к контроллеру и локальному кэшу
func (s *Service) handle(ctx context.Context, conn Conn, env api.Envelope) {
	switch env.Type {
	case api.TypeSessionInit:
		var msg api.SessionInit
		if !s.decode(env, &msg) {
			return
		}
		s.onSessionInit(ctx, conn, msg)

	case api.TypeRosterUpdate:
		var msg api.RosterUpdate
		if !s.decode(env, &msg) {
			return
		}
		s.mu.Lock()
		s.roster = msg.Users
		s.mu.Unlock()
		s.ctrl.RetainCursors(msg.Users)
		s.emit(Event{Type: EventRoster, Roster: msg.Users})

	case api.TypeChunkRelay:
		var msg api.ChunkRelay
		if !s.decode(env, &msg) {
			return
		}
		if s.ctrl.AppendRemotePreviewPoints(msg.CorrelationID, msg.AuthorID, msg.Meta, msg.Points...) {
			s.emit(Event{Type: EventPreview})
		}

	case api.TypeOperationCreated:
		var msg api.OperationCreated
		if !s.decode(env, &msg) || msg.Operation == nil {
			return
		}
		s.ctrl.ApplyConfirmedOperation(msg.Operation)
		s.cache(func() error { return s.cfg.Cache.PutOperation(ctx, s.cfg.Room, msg.Operation) })
		s.confirmed(msg.Operation)
		s.emit(Event{Type: EventCreated, Operation: msg.Operation})

	case api.TypeOperationRemoved:
		var msg api.OperationRemoved
		if !s.decode(env, &msg) {
			return
		}
		s.ctrl.RemoveOperation(msg.OperationID)
		s.cache(func() error { return s.cfg.Cache.DeleteOperation(ctx, s.cfg.Room, msg.OperationID) })
		s.emit(Event{Type: EventRemoved, OperationID: msg.OperationID})

	case api.TypeRoomCleared:
		s.ctrl.ClearAll()
		s.discardAll()
		s.cache(func() error { return s.cfg.Cache.ClearLog(ctx, s.cfg.Room) })
		s.emit(Event{Type: EventCleared})

	case api.TypeCursorRelay:
		var msg api.CursorRelay
		if !s.decode(env, &msg) {
			return
		}
		s.ctrl.UpdateCursor(msg.UserID, msg.Name, msg.Color, msg.X, msg.Y)
		s.emit(Event{Type: EventCursor, Cursor: &msg})

	case api.TypePong:
		var msg api.Pong
		if !s.decode(env, &msg) {
			return
		}
		s.mu.Lock()
		ch, ok := s.pings[msg.ClientTs]
		s.mu.Unlock()
		if ok {
			select {
			case ch <- msg:
			default:
			}
		}

	case api.TypeError:
		var msg api.ErrorMessage
		_ = env.DecodeData(&msg)
		s.logger.Warn("Server reported error", "message", msg.Message)
		s.emit(Event{Type: EventServerError, Message: msg.Message})

	default:
		s.logger.Debug("Unknown message type", "type", env.Type)
	}
}

func (s *Service) decode(env api.Envelope, v any) bool {
	if err := env.DecodeData(v); err != nil {
		s.logger.Debug("Dropping malformed message", "type", env.Type, "error", err)
		return false
	}
	return true
}

// cache выполняет запись в локальный кэш; ошибка кэша не мешает работе сессии
func (s *Service) cache(fn func() error) {
	if s.cfg.Cache == nil {
		return
	}
	if err := fn(); err != nil {
		s.logger.Warn("Failed to update local cache", "error", err)
	}
}

// onSessionInit загружает лог комнаты, сохраняет сессию и повторно отправляет
// штрихи, которые были завершены локально, но не дошли до сервера.
func (s *Service) onSessionInit(ctx context.Context, conn Conn, msg api.SessionInit) {
	s.ctrl.LoadSnapshot(msg.Operations)
	for _, op := range msg.Operations {
		s.confirmed(op)
	}

	s.mu.Lock()
	s.profile = msg.Profile
	if msg.ResumeToken != "" {
		s.token = msg.ResumeToken
	}
	token := s.token
	s.mu.Unlock()

	s.cache(func() error { return s.cfg.Cache.ReplaceLog(ctx, s.cfg.Room, msg.Operations) })
	s.cache(func() error {
		return s.cfg.Cache.SaveSession(ctx, &storage.Session{
			Room:        s.cfg.Room,
			UserID:      msg.Profile.UserID,
			DisplayName: msg.Profile.DisplayName,
			Color:       msg.Profile.Color,
			ResumeToken: token,
		})
	})

	// Список на повторную отправку и публикация соединения атомарны относительно DrawStroke
	s.mu.Lock()
	resend := make([]string, 0, len(s.ended))
	for corr := range s.ended {
		resend = append(resend, corr)
	}
	s.conn = conn
	select {
	case <-s.joinedCh:
	default:
		close(s.joinedCh)
	}
	s.mu.Unlock()

	for _, corr := range resend {
		if err := s.resubmit(conn.Send, corr); err != nil {
			s.logger.Warn("Failed to resend stroke", "correlation_id", corr, "error", err)
		}
	}

	s.logger.Info("Joined room", "user_id", msg.Profile.UserID, "operations", len(msg.Operations), "resent", len(resend))
	s.emit(Event{Type: EventJoined})
}
