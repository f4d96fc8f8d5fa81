package reconcile

import (
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/gophdraw/internal/models"
)

// CursorStaleAfter курсор, не обновлявшийся дольше, не отображается
const CursorStaleAfter = 3 * time.Second

var (
	// ErrStrokeExists штрих с таким correlation id уже начат или подтвержден
	ErrStrokeExists = errors.New("stroke already exists")
	// ErrMissingCorrelationID пустой correlation id
	ErrMissingCorrelationID = errors.New("correlation id is required")
)

// LayerKind слой отрисовки
type LayerKind int

const (
	// LayerConfirmed подтвержденная сервером операция
	LayerConfirmed LayerKind = iota
	// LayerLocal свой штрих, еще не подтвержденный
	LayerLocal
	// LayerPreview чужой штрих в процессе рисования
	LayerPreview
)

func (k LayerKind) String() string {
	switch k {
	case LayerConfirmed:
		return "confirmed"
	case LayerLocal:
		return "local"
	case LayerPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Layer элемент порядка отрисовки. Для LayerConfirmed заполнен Operation, иначе Stroke.
type Layer struct {
	Operation *models.Operation
	Stroke    Stroke
	Kind      LayerKind
}

//go:generate moq -out renderer_mock.go . Renderer

// Renderer растеризует слои; реализуется UI
type Renderer interface {
	DrawOperation(op *models.Operation)
	DrawStroke(kind LayerKind, stroke Stroke)
}

// Cursor последняя известная позиция курсора участника
type Cursor struct {
	Seen   time.Time
	UserID string
	Name   string
	Color  string
	X      float64
	Y      float64
}

// Controller клиентское зеркало комнаты: подтвержденный лог, свои оптимистичные штрихи
// и чужие превью. Безопасен для вызова из сетевой горутины и горутины ввода.
type Controller struct {
	now           func() time.Time
	confirmedCorr map[string]struct{}
	cursors       map[string]Cursor
	confirmed     []*models.Operation
	local         strokeSet
	previews      strokeSet
	mu            sync.Mutex
}

// NewController создает пустой контроллер. now nil означает time.Now.
func NewController(now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		now:           now,
		confirmedCorr: make(map[string]struct{}),
		local:         newStrokeSet(),
		previews:      newStrokeSet(),
		cursors:       make(map[string]Cursor),
	}
}

// BeginLocalStroke создает оптимистичный штрих. Штрих с уже подтвержденным
// или начатым correlation id не создается.
func (c *Controller) BeginLocalStroke(correlationID string, meta models.StrokeMeta, first models.Point) error {
	if correlationID == "" {
		return ErrMissingCorrelationID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.confirmedCorr[correlationID]; ok {
		return ErrStrokeExists
	}
	if _, ok := c.local.get(correlationID); ok {
		return ErrStrokeExists
	}

	c.local.add(&Stroke{
		CorrelationID: correlationID,
		Meta:          meta,
		Points:        []models.Point{first},
	})
	return nil
}

// AppendLocalPoints дописывает точки в свой штрих. Отсутствующий штрих игнорируется.
func (c *Controller) AppendLocalPoints(correlationID string, points ...models.Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.local.get(correlationID)
	if !ok {
		return false
	}
	st.Points = append(st.Points, points...)
	return true
}

// DiscardLocalStroke удаляет свой неподтвержденный штрих (например, пустой)
func (c *Controller) DiscardLocalStroke(correlationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.local.remove(correlationID)
}

// LocalStroke возвращает копию своего неподтвержденного штриха
func (c *Controller) LocalStroke(correlationID string) (Stroke, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.local.get(correlationID)
	if !ok {
		return Stroke{}, false
	}
	return st.clone(), true
}

// AppendRemotePreviewPoints дописывает точки в превью чужого штриха.
// Превью создается только по чанку с meta (первый чанк штриха) и только если
// штрих еще не подтвержден: поздний relay не воскрешает уже зафиксированный штрих.
func (c *Controller) AppendRemotePreviewPoints(correlationID, authorID string, meta *models.StrokeMeta, points ...models.Point) bool {
	if correlationID == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.previews.get(correlationID); ok {
		st.Points = append(st.Points, points...)
		return true
	}

	if meta == nil {
		return false
	}
	if _, ok := c.confirmedCorr[correlationID]; ok {
		return false
	}

	st := &Stroke{
		CorrelationID: correlationID,
		AuthorID:      authorID,
		Meta:          *meta,
		Points:        append([]models.Point(nil), points...),
	}
	c.previews.add(st)
	return true
}

// ApplyConfirmedOperation заменяет оптимистичный штрих или превью подтвержденной операцией.
// Лог остается отсортированным по seq независимо от порядка прихода.
func (c *Controller) ApplyConfirmedOperation(op *models.Operation) {
	if op == nil {
		return
	}
	op = op.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	if op.CorrelationID != "" {
		c.local.remove(op.CorrelationID)
		c.previews.remove(op.CorrelationID)
		c.confirmedCorr[op.CorrelationID] = struct{}{}
	}

	c.insertLocked(op)
}

func (c *Controller) insertLocked(op *models.Operation) {
	for i, existing := range c.confirmed {
		if existing.ID == op.ID {
			c.confirmed = slices.Delete(c.confirmed, i, i+1)
			break
		}
	}

	i := sort.Search(len(c.confirmed), func(i int) bool {
		return c.confirmed[i].Seq > op.Seq
	})
	c.confirmed = slices.Insert(c.confirmed, i, op)
}

// RemoveOperation удаляет операцию из подтвержденного лога (undo на сервере)
func (c *Controller) RemoveOperation(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, op := range c.confirmed {
		if op.ID == id {
			c.confirmed = slices.Delete(c.confirmed, i, i+1)
			return true
		}
	}
	return false
}

// ClearAll очищает лог, свои штрихи и превью
func (c *Controller) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmed = nil
	c.local.reset()
	c.previews.reset()
}

// LoadSnapshot заменяет подтвержденный лог полным логом комнаты (sessionInit).
// Свои штрихи, попавшие в лог, удаляются; превью сбрасываются.
func (c *Controller) LoadSnapshot(ops []*models.Operation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmed = make([]*models.Operation, 0, len(ops))
	for _, op := range ops {
		if op == nil {
			continue
		}
		op = op.Clone()
		if op.CorrelationID != "" {
			c.local.remove(op.CorrelationID)
			c.confirmedCorr[op.CorrelationID] = struct{}{}
		}
		c.confirmed = append(c.confirmed, op)
	}
	models.SortBySeq(c.confirmed)
	c.previews.reset()
}

// Confirmed возвращает копию подтвержденного лога в порядке seq
func (c *Controller) Confirmed() []*models.Operation {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*models.Operation, len(c.confirmed))
	for i, op := range c.confirmed {
		out[i] = op.Clone()
	}
	return out
}

// PendingCount количество своих неподтвержденных штрихов
func (c *Controller) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.local.len()
}

// PreviewCount количество чужих штрихов в процессе рисования
func (c *Controller) PreviewCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.previews.len()
}

// Layers возвращает порядок отрисовки: подтвержденные по seq, затем свои, затем превью.
func (c *Controller) Layers() []Layer {
	c.mu.Lock()
	defer c.mu.Unlock()

	layers := make([]Layer, 0, len(c.confirmed)+c.local.len()+c.previews.len())
	for _, op := range c.confirmed {
		layers = append(layers, Layer{Kind: LayerConfirmed, Operation: op.Clone()})
	}
	for _, st := range c.local.values() {
		layers = append(layers, Layer{Kind: LayerLocal, Stroke: st})
	}
	for _, st := range c.previews.values() {
		layers = append(layers, Layer{Kind: LayerPreview, Stroke: st})
	}
	return layers
}

// Render отрисовывает кадр в порядке Layers. Renderer вызывается без блокировки контроллера.
func (c *Controller) Render(r Renderer) {
	for _, l := range c.Layers() {
		if l.Kind == LayerConfirmed {
			r.DrawOperation(l.Operation)
			continue
		}
		r.DrawStroke(l.Kind, l.Stroke)
	}
}

// UpdateCursor запоминает позицию курсора участника
func (c *Controller) UpdateCursor(userID, name, color string, x, y float64) {
	if userID == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursors[userID] = Cursor{
		UserID: userID,
		Name:   name,
		Color:  color,
		X:      x,
		Y:      y,
		Seen:   c.now(),
	}
}

// RetainCursors удаляет курсоры участников, которых нет в составе комнаты
func (c *Controller) RetainCursors(users map[string]models.UserProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.cursors {
		if _, ok := users[id]; !ok {
			delete(c.cursors, id)
		}
	}
}

// ActiveCursors возвращает курсоры, обновленные не позже CursorStaleAfter назад, по userId.
// Устаревшие записи удаляются.
func (c *Controller) ActiveCursors(now time.Time) []Cursor {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Cursor, 0, len(c.cursors))
	for id, cur := range c.cursors {
		if now.Sub(cur.Seen) > CursorStaleAfter {
			delete(c.cursors, id)
			continue
		}
		out = append(out, cur)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
