package storage

import "errors"

// Common storage errors
var (
	// ErrSnapshotNotFound indicates that no snapshot was saved for the room yet
	ErrSnapshotNotFound = errors.New("room snapshot not found")

	// ErrInvalidRoomName indicates that the room name is empty
	ErrInvalidRoomName = errors.New("invalid room name")

	// ErrCorruptSnapshot indicates that the stored record cannot be decoded
	ErrCorruptSnapshot = errors.New("corrupt room snapshot")
)
