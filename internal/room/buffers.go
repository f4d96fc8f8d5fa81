package room

import (
	"time"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/pkg/api"
)

// tempBuffer точки штриха, который еще рисуется
type tempBuffer struct {
	touched time.Time
	meta    *models.StrokeMeta
	points  []models.Point
}

// BufferChunk дописывает точки в буфер штриха (создавая его) и пересылает чанк остальным.
// Порядок точек внутри пары (соединение, correlationID) совпадает с порядком приема.
func (r *Room) BufferChunk(connID, correlationID string, points []models.Point, meta *models.StrokeMeta) error {
	if correlationID == "" {
		return ErrMissingCorrelationID
	}
	// Пустой чанк не создает буфер и не пересылается
	if len(points) == 0 {
		return ErrEmptyChunk
	}
	if err := models.ValidatePoints(points); err != nil {
		return err
	}
	if meta != nil && meta.Tool != "" && !meta.Tool.Valid() {
		return models.ErrInvalidTool
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[connID]
	if !ok {
		return ErrUnknownConnection
	}

	strokes, ok := r.buffers[connID]
	if !ok {
		strokes = make(map[string]*tempBuffer)
		r.buffers[connID] = strokes
	}

	buf, ok := strokes[correlationID]
	if !ok {
		buf = &tempBuffer{}
		strokes[correlationID] = buf
	}

	buf.points = append(buf.points, points...)
	buf.touched = r.cfg.Now()
	if meta != nil {
		metaCopy := *meta
		buf.meta = &metaCopy
	}

	relayed := make([]models.Point, len(points))
	copy(relayed, points)

	r.broadcastLocked(connID, api.TypeChunkRelay, api.ChunkRelay{
		CorrelationID: correlationID,
		AuthorID:      m.profile.UserID,
		Points:        relayed,
		Meta:          meta,
	})

	return nil
}

// takeBufferLocked извлекает буфер и удаляет его из комнаты
func (r *Room) takeBufferLocked(connID, correlationID string) *tempBuffer {
	strokes, ok := r.buffers[connID]
	if !ok {
		return nil
	}

	buf := strokes[correlationID]
	delete(strokes, correlationID)
	if len(strokes) == 0 {
		delete(r.buffers, connID)
	}

	return buf
}

// PendingStrokes количество незавершенных штрихов в комнате
func (r *Room) PendingStrokes() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, strokes := range r.buffers {
		n += len(strokes)
	}
	return n
}

// SweepIdleBuffers удаляет буферы, которые не обновлялись дольше maxIdle.
// Возвращает количество удаленных буферов. Удаленные штрихи не финализируются.
func (r *Room) SweepIdleBuffers(now time.Time, maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for connID, strokes := range r.buffers {
		for correlationID, buf := range strokes {
			if now.Sub(buf.touched) > maxIdle {
				delete(strokes, correlationID)
				dropped++
			}
		}
		if len(strokes) == 0 {
			delete(r.buffers, connID)
		}
	}

	if dropped > 0 {
		r.logger.Debug("Idle stroke buffers dropped", "count", dropped)
	}

	return dropped
}
