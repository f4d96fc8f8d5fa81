package room

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/seq"
	"github.com/iudanet/gophdraw/pkg/api"
)

// DefaultSaveDebounce задержка между изменением лога и записью снимка
const DefaultSaveDebounce = 300 * time.Millisecond

// Config общие зависимости комнат
type Config struct {
	Store        SnapshotStore // Store может быть nil: комната живет только в памяти
	Tokens       TokenIssuer   // Tokens может быть nil: токены не выдаются
	Logger       *slog.Logger
	Now          func() time.Time
	SaveDebounce time.Duration
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.SaveDebounce <= 0 {
		c.SaveDebounce = DefaultSaveDebounce
	}
	return c
}

// member участник комнаты, привязанный к одному соединению
type member struct {
	sink    Sink
	profile models.UserProfile
}

// JoinResult результат входа в комнату
type JoinResult struct {
	Profile     models.UserProfile
	ResumeToken string
	Operations  []*models.Operation
}

// Room владеет логом операций одной комнаты и назначает им seq.
// Все методы безопасны для конкурентного вызова. Рассылка идет под блокировкой комнаты,
// поэтому каждое соединение получает изменения лога в порядке их применения.
type Room struct {
	lastEmpty time.Time
	cfg       Config
	logger    *slog.Logger
	counter   *seq.Counter
	members   map[string]*member
	buffers   map[string]map[string]*tempBuffer
	saveTimer *time.Timer
	name      string
	ops       []*models.Operation
	redo      []*models.Operation
	colorIdx  int
	mu        sync.Mutex
	saveMu    sync.Mutex
	pending   bool
	evicted   bool
}

// New создает пустую комнату. Снимок загружает Registry через restore.
func New(name string, cfg Config) *Room {
	cfg = cfg.withDefaults()
	return &Room{
		name:      name,
		cfg:       cfg,
		logger:    cfg.Logger.With("room", name),
		counter:   seq.New(),
		members:   make(map[string]*member),
		buffers:   make(map[string]map[string]*tempBuffer),
		lastEmpty: cfg.Now(),
	}
}

// Name возвращает имя комнаты
func (r *Room) Name() string {
	return r.name
}

// restore заменяет состояние комнаты загруженным снимком
func (r *Room) restore(snapshot *models.RoomSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]*models.Operation, 0, len(snapshot.Operations))
	for _, op := range snapshot.Operations {
		if err := op.Validate(); err != nil {
			r.logger.Warn("Skipping invalid operation from snapshot", "operation_id", op.ID, "error", err)
			continue
		}
		ops = append(ops, op.Clone())
	}
	models.SortBySeq(ops)

	r.ops = ops
	r.redo = nil
	r.counter.Restore(snapshot.ResolveNextSeq())
}

// Join регистрирует соединение. resume восстанавливает userId прошлой сессии.
// Присоединившийся получает sessionInit, затем вся комната получает rosterUpdate.
func (r *Room) Join(connID, displayName string, sink Sink, resume *models.UserProfile) (JoinResult, error) {
	if connID == "" {
		return JoinResult{}, ErrInvalidConnectionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.evicted {
		return JoinResult{}, ErrRoomEvicted
	}
	if _, ok := r.members[connID]; ok {
		return JoinResult{}, ErrAlreadyJoined
	}

	profile := r.newProfileLocked(displayName, resume)
	r.members[connID] = &member{profile: profile, sink: sink}

	token := ""
	if r.cfg.Tokens != nil {
		t, err := r.cfg.Tokens.Issue(r.name, profile)
		if err != nil {
			r.logger.Warn("Failed to issue resume token", "user_id", profile.UserID, "error", err)
		} else {
			token = t
		}
	}

	ops := r.operationsLocked()
	r.sendLocked(sink, api.TypeSessionInit, api.SessionInit{
		UserID:      profile.UserID,
		Profile:     profile,
		Room:        r.name,
		Operations:  ops,
		ResumeToken: token,
	})
	r.broadcastLocked("", api.TypeRosterUpdate, api.RosterUpdate{Users: r.rosterLocked()})

	r.logger.Info("User joined", "conn_id", connID, "user_id", profile.UserID, "members", len(r.members))

	return JoinResult{Profile: profile, Operations: ops, ResumeToken: token}, nil
}

func (r *Room) newProfileLocked(displayName string, resume *models.UserProfile) models.UserProfile {
	var profile models.UserProfile
	if resume != nil && resume.UserID != "" {
		profile = *resume
	} else {
		profile.UserID = uuid.New().String()
	}

	if displayName != "" {
		profile.DisplayName = displayName
	}
	if profile.DisplayName == "" {
		profile.DisplayName = "Guest-" + profile.UserID[:min(4, len(profile.UserID))]
	}

	if profile.Color == "" {
		profile.Color = models.Palette[r.colorIdx%len(models.Palette)]
		r.colorIdx++
	}

	return profile
}

// RemoveUser удаляет соединение и его незавершенные штрихи.
// Возвращает false, если соединение не было участником.
func (r *Room) RemoveUser(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[connID]
	if !ok {
		return false
	}

	delete(r.members, connID)
	// Брошенные штрихи не финализируются
	delete(r.buffers, connID)

	if len(r.members) == 0 {
		r.lastEmpty = r.cfg.Now()
	}

	r.broadcastLocked("", api.TypeRosterUpdate, api.RosterUpdate{Users: r.rosterLocked()})
	r.logger.Info("User left", "conn_id", connID, "user_id", m.profile.UserID, "members", len(r.members))

	return true
}

// Finalize превращает буфер штриха в операцию лога.
// Пустой или отсутствующий буфер ничего не создает и возвращает nil, nil.
func (r *Room) Finalize(connID, correlationID string, meta *models.StrokeMeta) (*models.Operation, error) {
	if correlationID == "" {
		return nil, ErrMissingCorrelationID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[connID]
	if !ok {
		return nil, ErrUnknownConnection
	}

	buf := r.takeBufferLocked(connID, correlationID)
	if buf == nil || len(buf.points) == 0 {
		return nil, nil
	}

	if meta == nil {
		meta = buf.meta
	}
	resolved := meta.WithDefaults(m.profile.Color)
	if !resolved.Tool.Valid() {
		return nil, models.ErrInvalidTool
	}

	op := &models.Operation{
		ID:            uuid.New().String(),
		Seq:           r.counter.Next(),
		CorrelationID: correlationID,
		AuthorID:      m.profile.UserID,
		Tool:          resolved.Tool,
		Color:         resolved.Color,
		StrokeWidth:   resolved.StrokeWidth,
		Points:        buf.points,
		CreatedAt:     r.cfg.Now().UTC(),
	}
	r.commitLocked(op)

	return op.Clone(), nil
}

// SubmitComplete добавляет в лог штрих, собранный клиентом целиком.
func (r *Room) SubmitComplete(connID string, stroke api.StrokeSubmission) (*models.Operation, error) {
	if len(stroke.Points) == 0 {
		return nil, ErrEmptyStroke
	}
	if err := models.ValidatePoints(stroke.Points); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[connID]
	if !ok {
		return nil, ErrUnknownConnection
	}

	meta := &models.StrokeMeta{Tool: stroke.Tool, Color: stroke.Color, StrokeWidth: stroke.StrokeWidth}
	resolved := meta.WithDefaults(m.profile.Color)
	if !resolved.Tool.Valid() {
		return nil, models.ErrInvalidTool
	}

	points := make([]models.Point, len(stroke.Points))
	copy(points, stroke.Points)

	op := &models.Operation{
		ID:            uuid.New().String(),
		Seq:           r.counter.Next(),
		CorrelationID: stroke.CorrelationID,
		AuthorID:      m.profile.UserID,
		Tool:          resolved.Tool,
		Color:         resolved.Color,
		StrokeWidth:   resolved.StrokeWidth,
		Points:        points,
		CreatedAt:     r.cfg.Now().UTC(),
	}
	if stroke.CorrelationID != "" {
		// Клиент мог успеть отправить чанки с тем же id
		r.takeBufferLocked(connID, stroke.CorrelationID)
	}
	r.commitLocked(op)

	return op.Clone(), nil
}

// commitLocked добавляет новую операцию: история redo становится недействительной.
func (r *Room) commitLocked(op *models.Operation) {
	r.redo = nil
	r.ops = append(r.ops, op)
	r.scheduleSaveLocked()
	r.broadcastLocked("", api.TypeOperationCreated, api.OperationCreated{Operation: op})
}

// Undo снимает последнюю операцию лога (любого автора) в стек redo.
// На пустом логе возвращает nil и ничего не рассылает.
func (r *Room) Undo() *models.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ops) == 0 {
		return nil
	}

	last := len(r.ops) - 1
	op := r.ops[last]
	r.ops[last] = nil
	r.ops = r.ops[:last]
	r.redo = append(r.redo, op)

	r.scheduleSaveLocked()
	r.broadcastLocked("", api.TypeOperationRemoved, api.OperationRemoved{OperationID: op.ID})

	return op.Clone()
}

// Redo возвращает в лог последнюю снятую операцию с ее исходным seq.
// На пустом стеке возвращает nil и ничего не рассылает.
func (r *Room) Redo() *models.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.redo) == 0 {
		return nil
	}

	last := len(r.redo) - 1
	op := r.redo[last]
	r.redo[last] = nil
	r.redo = r.redo[:last]

	r.insertSortedLocked(op)
	r.scheduleSaveLocked()
	r.broadcastLocked("", api.TypeOperationCreated, api.OperationCreated{Operation: op})

	return op.Clone()
}

func (r *Room) insertSortedLocked(op *models.Operation) {
	i := sort.Search(len(r.ops), func(i int) bool { return r.ops[i].Seq > op.Seq })
	r.ops = append(r.ops, nil)
	copy(r.ops[i+1:], r.ops[i:])
	r.ops[i] = op
}

// Clear очищает лог, redo и все незавершенные штрихи. Счетчик seq не сбрасывается.
func (r *Room) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops = nil
	r.redo = nil
	r.buffers = make(map[string]map[string]*tempBuffer)

	r.scheduleSaveLocked()
	r.broadcastLocked("", api.TypeRoomCleared, nil)

	r.logger.Info("Room cleared")
}

// RelayCursor пересылает позицию курсора остальным участникам. Не сохраняется.
func (r *Room) RelayCursor(connID string, x, y float64) error {
	if !(models.Point{X: x, Y: y}).Valid() {
		return models.ErrInvalidPoint
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[connID]
	if !ok {
		return ErrUnknownConnection
	}

	r.broadcastLocked(connID, api.TypeCursorRelay, api.CursorRelay{
		UserID: m.profile.UserID,
		X:      x,
		Y:      y,
		Name:   m.profile.DisplayName,
		Color:  m.profile.Color,
	})

	return nil
}

// Operations возвращает копию лога в порядке seq
func (r *Room) Operations() []*models.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.operationsLocked()
}

func (r *Room) operationsLocked() []*models.Operation {
	out := make([]*models.Operation, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.Clone()
	}
	return out
}

// Roster возвращает участников комнаты (userId -> профиль)
func (r *Room) Roster() map[string]models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rosterLocked()
}

func (r *Room) rosterLocked() map[string]models.UserProfile {
	out := make(map[string]models.UserProfile, len(r.members))
	for _, m := range r.members {
		out[m.profile.UserID] = m.profile
	}
	return out
}

// Snapshot возвращает запись для сохранения: лог и счетчик
func (r *Room) Snapshot() *models.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() *models.RoomSnapshot {
	return &models.RoomSnapshot{
		Operations: r.operationsLocked(),
		NextSeq:    r.counter.Peek(),
	}
}

// MemberCount количество подключенных соединений
func (r *Room) MemberCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.members)
}

// IdleSince возвращает момент, когда комната опустела.
// Нулевое время означает, что в комнате есть участники.
func (r *Room) IdleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) > 0 {
		return time.Time{}
	}
	return r.lastEmpty
}

// markEvicted помечает пустую комнату выгруженной. Возвращает false, если в комнате есть участники.
func (r *Room) markEvicted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) > 0 {
		return false
	}
	r.evicted = true
	return true
}

// broadcastLocked кодирует сообщение один раз и ставит его в очередь всем участникам,
// кроме exclude.
func (r *Room) broadcastLocked(exclude string, t api.MessageType, payload any) {
	frame, err := api.Encode(t, payload)
	if err != nil {
		r.logger.Error("Failed to encode broadcast", "type", t, "error", err)
		return
	}

	for connID, m := range r.members {
		if connID == exclude {
			continue
		}
		if !m.sink.Send(frame) {
			r.logger.Debug("Frame dropped", "conn_id", connID, "type", t)
		}
	}
}

func (r *Room) sendLocked(sink Sink, t api.MessageType, payload any) {
	frame, err := api.Encode(t, payload)
	if err != nil {
		r.logger.Error("Failed to encode message", "type", t, "error", err)
		return
	}
	if !sink.Send(frame) {
		r.logger.Debug("Frame dropped", "type", t)
	}
}

// Stats сводка по комнате для HTTP API
type Stats struct {
	Snapshot *models.RoomSnapshot
	Members  int
}

// Stats возвращает снимок и число участников комнаты
func (r *Room) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{Snapshot: r.snapshotLocked(), Members: len(r.members)}
}
