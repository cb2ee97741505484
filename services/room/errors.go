package room

import "errors"

var (
	// ErrRoomNotFound signals a lookup for a room that does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomOccupied signals a booking attempt on an occupied room.
	ErrRoomOccupied = errors.New("room is already occupied")
	// ErrRoomVacant signals a release attempt on a room nobody occupies.
	ErrRoomVacant = errors.New("room is not occupied")
	// ErrRoomNumberTaken signals a create with a duplicate room number.
	ErrRoomNumberTaken = errors.New("room number already exists")
	// ErrInvalidStatus signals an unknown booking status filter.
	ErrInvalidStatus = errors.New("invalid booking status")
)
