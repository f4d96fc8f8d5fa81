package room

import "errors"

var (
	// ErrUnknownConnection indicates a message from a connection that has not joined the room
	ErrUnknownConnection = errors.New("connection is not a member of the room")

	// ErrAlreadyJoined indicates a second join from the same connection
	ErrAlreadyJoined = errors.New("connection already joined the room")

	// ErrInvalidConnectionID indicates an empty connection id
	ErrInvalidConnectionID = errors.New("invalid connection id")

	// ErrMissingCorrelationID indicates a stroke message without correlation id
	ErrMissingCorrelationID = errors.New("correlation id is required")

	// ErrEmptyChunk indicates a chunk message with missing or empty points
	ErrEmptyChunk = errors.New("chunk has no points")

	// ErrEmptyStroke indicates a submitted stroke without points
	ErrEmptyStroke = errors.New("stroke has no points")

	// ErrInvalidRoomName indicates a room name that cannot be used as a key
	ErrInvalidRoomName = errors.New("invalid room name")

	// ErrRegistryClosed indicates that the registry is shutting down
	ErrRegistryClosed = errors.New("room registry is closed")

	// ErrRoomEvicted indicates a join into a room that was dropped from the registry; get it again
	ErrRoomEvicted = errors.New("room was evicted")

	// ErrRoomBusy indicates an eviction attempt while members are connected
	ErrRoomBusy = errors.New("room has connected members")
)
