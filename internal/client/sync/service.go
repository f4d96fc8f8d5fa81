package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/google/uuid"

	"github.com/iudanet/gophdraw/internal/client/reconcile"
	"github.com/iudanet/gophdraw/internal/client/storage"
	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/pkg/api"
)

const eventBufferSize = 256

var (
	// ErrNotConnected сессия сейчас не подключена к комнате
	ErrNotConnected = errors.New("not connected")
	// ErrEmptyStroke штрих без точек не отправляется
	ErrEmptyStroke = errors.New("stroke has no points")
	// ErrStrokeDiscarded комнату очистили до подтверждения штриха
	ErrStrokeDiscarded = errors.New("stroke discarded by room clear")
)

// Conn соединение с сервером
type Conn interface {
	Send(t api.MessageType, payload any) error
	Receive() (api.Envelope, error)
	Close() error
}

// Dialer открывает новое соединение
type Dialer func(ctx context.Context) (Conn, error)

// Cache локальная копия лога и сессии
type Cache interface {
	storage.LogStorage
	storage.SessionStorage
}

// Config параметры сессии
type Config struct {
	Dial        Dialer
	Cache       Cache // Cache может быть nil
	Logger      *slog.Logger
	Controller  *reconcile.Controller
	NewBackOff  func() backoff.BackOff
	Now         func() time.Time
	Room        string
	DisplayName string
}

// Service поддерживает подключение к комнате и держит контроллер согласованным с сервером.
// Run переподключается с экспоненциальной задержкой; после переподключения
// незавершенные на сервере штрихи отправляются повторно целиком.
type Service struct {
	cfg      Config
	logger   *slog.Logger
	ctrl     *reconcile.Controller
	conn     Conn
	joinedCh chan struct{}
	events   chan Event
	waiters  map[string][]chan *models.Operation
	pings    map[int64]chan api.Pong
	ended    map[string]struct{}
	roster   map[string]models.UserProfile
	profile  models.UserProfile
	token    string
	mu       sync.Mutex
}

// NewService создает сессию. Подключение выполняет Run.
func NewService(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Controller == nil {
		cfg.Controller = reconcile.NewController(cfg.Now)
	}
	if cfg.NewBackOff == nil {
		cfg.NewBackOff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 0
			return b
		}
	}
	if cfg.Room == "" {
		cfg.Room = api.DefaultRoom
	}

	return &Service{
		cfg:      cfg,
		logger:   cfg.Logger.With("room", cfg.Room),
		ctrl:     cfg.Controller,
		joinedCh: make(chan struct{}),
		events:   make(chan Event, eventBufferSize),
		waiters:  make(map[string][]chan *models.Operation),
		pings:    make(map[int64]chan api.Pong),
		ended:    make(map[string]struct{}),
	}
}

// Controller контроллер согласования этой сессии
func (s *Service) Controller() *reconcile.Controller {
	return s.ctrl
}

// Events поток событий комнаты. При переполнении события отбрасываются.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Profile профиль текущей сессии (пустой до первого join)
func (s *Service) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Roster текущий состав комнаты
func (s *Service) Roster() map[string]models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.UserProfile, len(s.roster))
	for k, v := range s.roster {
		out[k] = v
	}
	return out
}

// Run подключается к комнате и обрабатывает сообщения до отмены ctx.
func (s *Service) Run(ctx context.Context) error {
	b := s.cfg.NewBackOff()

	err := backoff.RetryNotify(func() error {
		return s.session(ctx, b)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		s.logger.Warn("Connection lost, reconnecting", "error", err, "retry_in", next)
	})

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// session одно подключение: join и цикл чтения
func (s *Service) session(ctx context.Context, b backoff.BackOff) error {
	if ctx.Err() != nil {
		return backoff.Permanent(ctx.Err())
	}

	conn, err := s.cfg.Dial(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("dial: %w", err)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer func() { _ = conn.Close() }()

	join := api.JoinRequest{
		Room:        s.cfg.Room,
		DisplayName: s.cfg.DisplayName,
		ResumeToken: s.resumeToken(ctx),
	}
	if err := conn.Send(api.TypeJoin, join); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	for {
		env, err := conn.Receive()
		if err != nil {
			s.disconnected(err)
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("receive: %w", err)
		}

		if env.Type == api.TypeSessionInit {
			// Соединение живое: следующий разрыв снова начинает с минимальной задержки
			b.Reset()
		}
		s.handle(ctx, conn, env)
	}
}

func (s *Service) resumeToken(ctx context.Context) string {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token != "" || s.cfg.Cache == nil {
		return token
	}

	sess, err := s.cfg.Cache.GetSession(ctx, s.cfg.Room)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			s.logger.Warn("Failed to read cached session", "error", err)
		}
		return ""
	}
	return sess.ResumeToken
}

func (s *Service) disconnected(err error) {
	s.mu.Lock()
	wasJoined := s.conn != nil
	s.conn = nil
	select {
	case <-s.joinedCh:
		s.joinedCh = make(chan struct{})
	default:
	}
	s.mu.Unlock()

	if wasJoined {
		s.emit(Event{Type: EventDisconnected, Err: err})
	}
}

// WaitJoined ждет завершения join и возвращает профиль
func (s *Service) WaitJoined(ctx context.Context) (models.UserProfile, error) {
	s.mu.Lock()
	ch := s.joinedCh
	s.mu.Unlock()

	select {
	case <-ch:
		return s.Profile(), nil
	case <-ctx.Done():
		return models.UserProfile{}, ctx.Err()
	}
}

func (s *Service) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.logger.Debug("Event dropped", "type", e.Type)
	}
}

func (s *Service) send(t api.MessageType, payload any) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}
	return conn.Send(t, payload)
}

// DrawStroke рисует штрих: оптимистично добавляет его в контроллер, отправляет точки
// пакетами по ChunkSize (первый пакет несет meta), завершает strokeEnd и ждет подтверждения.
// При разрыве штрих будет отправлен повторно после переподключения.
func (s *Service) DrawStroke(ctx context.Context, meta models.StrokeMeta, points []models.Point) (*models.Operation, error) {
	if len(points) == 0 {
		return nil, ErrEmptyStroke
	}
	if err := models.ValidatePoints(points); err != nil {
		return nil, err
	}

	correlationID := uuid.New().String()
	if err := s.ctrl.BeginLocalStroke(correlationID, meta, points[0]); err != nil {
		return nil, err
	}
	s.ctrl.AppendLocalPoints(correlationID, points[1:]...)

	wait := s.await(correlationID)

	var sendErr error
	for i, chunk := range SplitChunks(points, ChunkSize) {
		msg := api.ChunkMessage{CorrelationID: correlationID, Points: chunk}
		if i == 0 {
			msg.Meta = &meta
		}
		if sendErr = s.send(api.TypeChunk, msg); sendErr != nil {
			break
		}
	}

	s.mu.Lock()
	s.ended[correlationID] = struct{}{}
	connected := s.conn != nil
	s.mu.Unlock()

	switch {
	case sendErr == nil:
		sendErr = s.send(api.TypeStrokeEnd, api.StrokeEndMessage{CorrelationID: correlationID, Meta: &meta})
	case connected:
		// Соединение появилось после ошибки: отправляем штрих целиком
		sendErr = s.resubmit(s.send, correlationID)
	}
	if sendErr != nil {
		s.logger.Debug("Stroke will be resent after reconnect", "correlation_id", correlationID, "error", sendErr)
	}

	select {
	case op, ok := <-wait:
		if !ok {
			return nil, ErrStrokeDiscarded
		}
		return op, nil
	case <-ctx.Done():
		s.cancelWait(correlationID, wait)
		return nil, ctx.Err()
	}
}

func (s *Service) await(correlationID string) chan *models.Operation {
	ch := make(chan *models.Operation, 1)
	s.mu.Lock()
	s.waiters[correlationID] = append(s.waiters[correlationID], ch)
	s.mu.Unlock()
	return ch
}

func (s *Service) cancelWait(correlationID string, ch chan *models.Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.waiters[correlationID]
	for i, w := range list {
		if w == ch {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.waiters, correlationID)
		return
	}
	s.waiters[correlationID] = list
}

// confirmed будит ожидающих подтверждения штриха
func (s *Service) confirmed(op *models.Operation) {
	if op.CorrelationID == "" {
		return
	}

	s.mu.Lock()
	list := s.waiters[op.CorrelationID]
	delete(s.waiters, op.CorrelationID)
	delete(s.ended, op.CorrelationID)
	s.mu.Unlock()

	for _, ch := range list {
		ch <- op.Clone()
	}
}

// discardAll будит всех ожидающих с ErrStrokeDiscarded: clear на сервере
// удаляет и лог, и недописанные буферы, подтверждений уже не будет.
func (s *Service) discardAll() {
	s.mu.Lock()
	waiters := s.waiters
	s.waiters = make(map[string][]chan *models.Operation)
	clear(s.ended)
	s.mu.Unlock()

	for _, list := range waiters {
		for _, ch := range list {
			close(ch)
		}
	}
}

// resubmit отправляет локальный штрих одним сообщением strokeFinal
func (s *Service) resubmit(send func(api.MessageType, any) error, correlationID string) error {
	st, ok := s.ctrl.LocalStroke(correlationID)
	if !ok {
		return nil
	}

	return send(api.TypeStrokeFinal, api.StrokeFinalMessage{Operation: api.StrokeSubmission{
		CorrelationID: correlationID,
		Tool:          st.Meta.Tool,
		Color:         st.Meta.Color,
		StrokeWidth:   st.Meta.StrokeWidth,
		Points:        st.Points,
	}})
}

// Undo отменяет последнюю операцию комнаты
func (s *Service) Undo() error {
	return s.send(api.TypeUndo, nil)
}

// Redo возвращает последнюю отмененную операцию
func (s *Service) Redo() error {
	return s.send(api.TypeRedo, nil)
}

// Clear очищает холст комнаты
func (s *Service) Clear() error {
	return s.send(api.TypeClear, nil)
}

// MoveCursor сообщает позицию курсора остальным участникам
func (s *Service) MoveCursor(x, y float64) error {
	return s.send(api.TypeCursor, api.CursorMessage{X: x, Y: y})
}

// Ping измеряет время до сервера и обратно
func (s *Service) Ping(ctx context.Context) (time.Duration, api.Pong, error) {
	sent := s.cfg.Now()
	ch := make(chan api.Pong, 1)

	s.mu.Lock()
	ts := sent.UnixMilli()
	for {
		if _, busy := s.pings[ts]; !busy {
			break
		}
		ts++
	}
	s.pings[ts] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pings, ts)
		s.mu.Unlock()
	}()

	if err := s.send(api.TypePing, api.PingMessage{ClientTs: ts}); err != nil {
		return 0, api.Pong{}, err
	}

	select {
	case pong := <-ch:
		return s.cfg.Now().Sub(sent), pong, nil
	case <-ctx.Done():
		return 0, api.Pong{}, ctx.Err()
	}
}
