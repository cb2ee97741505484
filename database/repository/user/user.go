package userRepo

import "stayhub/models"

// UserRepository defines persistence operations for registered users.
// Lookups are keyed by the external userId, not the storage id.
type UserRepository interface {
	Create(user *models.User) error
	GetByUserID(userID int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(userID int64) error
}
