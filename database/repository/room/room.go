package roomRepo

import "stayhub/models"

// RoomRepository defines persistence operations for rooms. Query methods that
// return rooms resolve the occupant reference into the Occupant field.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByNumber(roomNumber string) (*models.Room, error)
	GetAll() ([]models.Room, error)
	GetByOccupant(userID int64) ([]models.Room, error)
	GetOccupied() ([]models.Room, error)
	GetByStatus(status string) ([]models.Room, error)

	// Book conditionally sets the occupant on a vacant room in a single
	// write. It returns mongo.ErrNoDocuments when no vacant room with the
	// given number exists, so two concurrent bookings can never both win.
	Book(roomNumber string, occupantID int64) (*models.Room, error)

	// Release clears the occupant of an occupied room in a single write.
	Release(roomNumber string) (*models.Room, error)
}
