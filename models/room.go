package models

import "time"

// Room types offered for rent.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeShared = "Shared"
)

// Booking status filters accepted by the admin bookings query. The booking
// write path does not populate Status; the filter contract exists regardless.
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// RoomLocation describes where a room is.
type RoomLocation struct {
	Building string `bson:"building" json:"building"`
	Floor    int    `bson:"floor" json:"floor"`
	Landmark string `bson:"landmark" json:"landmark"`
	Address  string `bson:"address" json:"address"`
}

// Room is a rentable unit. OccupantID is a weak reference to a User and is
// meaningful only while IsOccupied is set. Occupant is populated by queries
// that resolve the reference; it is never persisted.
type Room struct {
	RoomNumber string       `bson:"roomNumber" json:"roomNumber"`
	Type       string       `bson:"type" json:"type"`
	Price      int          `bson:"price" json:"price"`
	Images     []string     `bson:"images" json:"images"`
	Location   RoomLocation `bson:"location" json:"location"`
	Amenities  []string     `bson:"amenities" json:"amenities"`
	IsOccupied bool         `bson:"isOccupied" json:"isOccupied"`
	OccupantID int64        `bson:"currentOccupant,omitempty" json:"occupantId,omitempty"`
	Occupant   *User        `bson:"occupant,omitempty" json:"currentOccupant,omitempty"`
	Status     string       `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ValidRoomType reports whether t is one of the offered room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeShared:
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is an accepted booking status filter.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
