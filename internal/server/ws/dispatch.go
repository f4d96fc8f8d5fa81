package ws

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/room"
	"github.com/iudanet/gophdraw/internal/telemetry"
	"github.com/iudanet/gophdraw/internal/validation"
	"github.com/iudanet/gophdraw/pkg/api"
)

// errNotJoined сообщение пришло до join
var errNotJoined = errors.New("message before join")

// dispatch обрабатывает один входящий кадр и возвращает новое состояние сессии.
// Паника в обработчике перехватывается здесь: соединение и остальные комнаты продолжают работу.
func (h *Hub) dispatch(ctx context.Context, c *Client, sess Session, raw []byte) (next Session) {
	next = sess

	env, err := api.Decode(raw)
	if err != nil {
		c.logger.Debug("Dropping malformed message", "error", err)
		return next
	}

	ctx, span := telemetry.StartSpan(ctx, "ws.dispatch",
		attribute.String("message.type", string(env.Type)),
		attribute.String("conn.id", c.id),
		attribute.Int("message.size", len(raw)),
	)
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Error("Panic recovered in dispatch",
				"type", env.Type,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			telemetry.RecordError(span, fmt.Errorf("panic: %v", rec))
			next = sess
		}
	}()

	if env.Type == api.TypeJoin {
		next, err = h.handleJoin(ctx, c, sess, env)
	} else {
		if sess.Joined() {
			span.SetAttributes(attribute.String("room", sess.Room.Name()))
		}
		err = h.handle(c, sess, env)
	}

	if err != nil {
		telemetry.RecordError(span, err)
		c.logger.Debug("Message dropped", "type", env.Type, "error", err)
	}

	return next
}

func (h *Hub) handleJoin(ctx context.Context, c *Client, sess Session, env api.Envelope) (Session, error) {
	var req api.JoinRequest
	if len(env.Data) > 0 {
		if err := env.DecodeData(&req); err != nil {
			return sess, err
		}
	}
	if req.Room == "" {
		req.Room = api.DefaultRoom
	}
	if err := room.ValidateName(req.Room); err != nil {
		h.reply(c, api.TypeError, api.ErrorMessage{Message: err.Error()})
		return sess, err
	}

	// Повторный join переводит соединение в другую комнату
	if sess.Joined() {
		if sess.Room.Name() == req.Room {
			return sess, room.ErrAlreadyJoined
		}
		sess.Room.RemoveUser(c.id)
		sess = Session{}
	}

	resume := h.resume(c, req)
	displayName := validation.SanitizeDisplayName(req.DisplayName)

	// Комната могла быть выгружена между Get и Join
	for attempt := 0; attempt < 2; attempt++ {
		r, err := h.rooms.Get(ctx, req.Room)
		if err != nil {
			h.reply(c, api.TypeError, api.ErrorMessage{Message: "room unavailable"})
			return sess, fmt.Errorf("get room: %w", err)
		}

		res, err := r.Join(c.id, displayName, c, resume)
		if errors.Is(err, room.ErrRoomEvicted) {
			continue
		}
		if err != nil {
			return sess, fmt.Errorf("join room: %w", err)
		}

		return Session{Room: r, ConnID: c.id, Profile: res.Profile}, nil
	}

	return sess, room.ErrRoomEvicted
}

func (h *Hub) resume(c *Client, req api.JoinRequest) *models.UserProfile {
	if req.ResumeToken == "" || h.sessions == nil {
		return nil
	}

	profile, err := h.sessions.Resume(req.Room, req.ResumeToken)
	if err != nil {
		// Недействительный токен не мешает войти с новым userId
		c.logger.Debug("Resume token rejected", "error", err)
		return nil
	}
	return profile
}

func (h *Hub) handle(c *Client, sess Session, env api.Envelope) error {
	if env.Type == api.TypePing {
		var msg api.PingMessage
		if err := env.DecodeData(&msg); err != nil {
			return err
		}
		h.reply(c, api.TypePong, api.Pong{ClientTs: msg.ClientTs, ServerTs: h.now().UnixMilli()})
		return nil
	}

	if !sess.Joined() {
		return errNotJoined
	}
	r := sess.Room

	switch env.Type {
	case api.TypeChunk:
		var msg api.ChunkMessage
		if err := env.DecodeData(&msg); err != nil {
			return err
		}
		return r.BufferChunk(c.id, msg.CorrelationID, msg.Points, msg.Meta)

	case api.TypeStrokeEnd:
		var msg api.StrokeEndMessage
		if err := env.DecodeData(&msg); err != nil {
			return err
		}
		_, err := r.Finalize(c.id, msg.CorrelationID, msg.Meta)
		return err

	case api.TypeStrokeFinal:
		var msg api.StrokeFinalMessage
		if err := env.DecodeData(&msg); err != nil {
			return err
		}
		_, err := r.SubmitComplete(c.id, msg.Operation)
		return err

	case api.TypeCursor:
		var msg api.CursorMessage
		if err := env.DecodeData(&msg); err != nil {
			return err
		}
		return r.RelayCursor(c.id, msg.X, msg.Y)

	case api.TypeUndo:
		r.Undo()
	case api.TypeRedo:
		r.Redo()
	case api.TypeClear:
		r.Clear()

	default:
		return fmt.Errorf("unknown message type %q", env.Type)
	}

	return nil
}

// reply отправляет сообщение только этому соединению
func (h *Hub) reply(c *Client, t api.MessageType, payload any) {
	frame, err := api.Encode(t, payload)
	if err != nil {
		c.logger.Error("Failed to encode reply", "type", t, "error", err)
		return
	}
	c.Send(frame)
}
