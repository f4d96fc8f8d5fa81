package api

import "github.com/iudanet/gophdraw/internal/models"

// DefaultRoom комната по умолчанию, если клиент ее не указал
const DefaultRoom = "main"

// SnapshotResponse ответ GET /api/v1/rooms/{room}/operations
type SnapshotResponse struct {
	Room       string              `json:"room"`
	Operations []*models.Operation `json:"operations"`
	NextSeq    uint64              `json:"nextSeq"`
	Members    int                 `json:"members"`
}

// ResolveRoomResponse ответ GET /api/v1/rooms/resolve
type ResolveRoomResponse struct {
	Room string `json:"room"`
}

// RoomsResponse список активных комнат
type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
