package models

import "time"

// Feedback is a rated free-text review left by a user.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	UserID    int64     `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Rating    int       `bson:"rating" json:"rating"`
	Feedback  string    `bson:"feedback" json:"feedback"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
