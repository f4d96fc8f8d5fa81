package reconcile

import "github.com/iudanet/gophdraw/internal/models"

// Stroke незавершенный штрих: свой (оптимистичный) или чужой (превью)
type Stroke struct {
	CorrelationID string
	AuthorID      string
	Meta          models.StrokeMeta
	Points        []models.Point
}

func (s *Stroke) clone() Stroke {
	out := *s
	out.Points = make([]models.Point, len(s.Points))
	copy(out.Points, s.Points)
	return out
}

// strokeSet штрихи по correlation id в порядке добавления
type strokeSet struct {
	byID  map[string]*Stroke
	order []string
}

func newStrokeSet() strokeSet {
	return strokeSet{byID: make(map[string]*Stroke)}
}

func (s *strokeSet) get(id string) (*Stroke, bool) {
	st, ok := s.byID[id]
	return st, ok
}

func (s *strokeSet) add(st *Stroke) {
	if _, ok := s.byID[st.CorrelationID]; !ok {
		s.order = append(s.order, st.CorrelationID)
	}
	s.byID[st.CorrelationID] = st
}

func (s *strokeSet) remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *strokeSet) len() int {
	return len(s.order)
}

func (s *strokeSet) values() []Stroke {
	out := make([]Stroke, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].clone())
	}
	return out
}

func (s *strokeSet) reset() {
	s.byID = make(map[string]*Stroke)
	s.order = nil
}
