package models

import (
	"errors"
	"math"
	"sort"
	"time"
)

// Tool определяет семантику композиции штриха.
// Ластик деструктивен и не коммутирует с кистью, поэтому порядок рендера важен.
type Tool string

const (
	ToolBrush  Tool = "brush"
	ToolEraser Tool = "eraser"
)

// DefaultStrokeWidth толщина штриха, если клиент ее не передал
const DefaultStrokeWidth = 4.0

var (
	// ErrEmptyPoints indicates that a stroke has no points
	ErrEmptyPoints = errors.New("stroke has no points")

	// ErrInvalidTool indicates that the tool is not one of the known tools
	ErrInvalidTool = errors.New("unknown tool")

	// ErrInvalidPoint indicates a point with NaN or infinite coordinates
	ErrInvalidPoint = errors.New("invalid point coordinates")
)

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	return t == ToolBrush || t == ToolEraser
}

// Point одна точка штриха. T - клиентское время в миллисекундах (только для информации).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t,omitempty"`
}

// Valid reports whether the coordinates are finite numbers.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// StrokeMeta атрибуты рендера штриха, все поля опциональны
type StrokeMeta struct {
	Tool        Tool    `json:"tool,omitempty"`
	Color       string  `json:"color,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// WithDefaults заполняет пустые поля: кисть, цвет автора, толщина 4.
func (m *StrokeMeta) WithDefaults(authorColor string) StrokeMeta {
	out := StrokeMeta{Tool: ToolBrush, Color: authorColor, StrokeWidth: DefaultStrokeWidth}
	if m == nil {
		return out
	}
	if m.Tool != "" {
		out.Tool = m.Tool
	}
	if m.Color != "" {
		out.Color = m.Color
	}
	if m.StrokeWidth > 0 {
		out.StrokeWidth = m.StrokeWidth
	}
	return out
}

// Operation представляет один зафиксированный штрих в логе комнаты.
// Неизменяема после создания: Seq назначается только комнатой и задает порядок рендера.
type Operation struct {
	CreatedAt     time.Time `json:"createdAt"`               // CreatedAt время создания (только для информации, не для сортировки)
	ID            string    `json:"id"`                      // ID глобально уникальный идентификатор (UUID)
	CorrelationID string    `json:"correlationId,omitempty"` // CorrelationID временный id оптимистичного штриха на клиенте
	AuthorID      string    `json:"authorId"`                // AuthorID идентификатор пользователя сессии
	Tool          Tool      `json:"tool"`
	Color         string    `json:"color"`
	Points        []Point   `json:"points"`
	StrokeWidth   float64   `json:"strokeWidth"`
	Seq           uint64    `json:"seq"` // Seq строго возрастающий номер внутри комнаты
}

// Validate checks the invariants every committed operation must hold.
func (o *Operation) Validate() error {
	if len(o.Points) == 0 {
		return ErrEmptyPoints
	}
	if !o.Tool.Valid() {
		return ErrInvalidTool
	}
	return ValidatePoints(o.Points)
}

// ValidatePoints returns ErrInvalidPoint if any point is not finite.
func ValidatePoints(points []Point) error {
	for _, p := range points {
		if !p.Valid() {
			return ErrInvalidPoint
		}
	}
	return nil
}

// Clone создает глубокую копию операции
func (o *Operation) Clone() *Operation {
	points := make([]Point, len(o.Points))
	copy(points, o.Points)

	clone := *o
	clone.Points = points
	return &clone
}

// SortBySeq сортирует операции по возрастанию Seq на месте.
func SortBySeq(ops []*Operation) {
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Seq < ops[j].Seq
	})
}

// RoomSnapshot запись, которая сохраняется для каждой комнаты.
// Перезаписывается целиком при каждом сохранении.
type RoomSnapshot struct {
	Operations []*Operation `json:"operations"`
	NextSeq    uint64       `json:"nextSeq"`
}

// ResolveNextSeq возвращает счетчик, который гарантированно больше любого Seq в логе.
// Старые снимки могут не содержать NextSeq - тогда он выводится из последней операции.
func (s *RoomSnapshot) ResolveNextSeq() uint64 {
	next := s.NextSeq
	for _, op := range s.Operations {
		if op.Seq >= next {
			next = op.Seq + 1
		}
	}
	if next == 0 {
		next = 1
	}
	return next
}
