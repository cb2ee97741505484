package user

import "stayhub/models"

// UserService defines user account operations.
type UserService interface {
	RegisterUser(u models.User) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	DeleteUser(userID int64) error
}
