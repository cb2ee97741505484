package models

import "time"

// User is a registered tenant. UserID is the external chat identifier the
// conversation surface knows the user by; it is the lookup key everywhere.
type User struct {
	UserID       int64     `bson:"userId" json:"userId"`
	Name         string    `bson:"name" json:"name"`
	Age          int       `bson:"age" json:"age"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	Address      string    `bson:"address" json:"address"`
	StayDuration int       `bson:"stayDuration" json:"stayDuration"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
