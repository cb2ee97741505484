package room

import "stayhub/models"

// RoomService defines room inventory and booking operations.
type RoomService interface {
	CreateRoom(r models.Room) (*models.Room, error)
	ListRooms() ([]models.Room, error)

	// BookRoom claims a vacant room for the given user. Exactly one of two
	// concurrent bookings for the same room succeeds.
	BookRoom(roomNumber string, userID int64) (*models.Room, error)

	// ReleaseRoom vacates an occupied room (checkout).
	ReleaseRoom(roomNumber string) (*models.Room, error)

	ListUserBookings(userID int64) ([]models.Room, error)
	ListOccupied() ([]models.Room, error)
	ListByStatus(status string) ([]models.Room, error)
}
