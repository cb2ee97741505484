package user

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userRepo "stayhub/database/repository/user"
	"stayhub/models"
	"stayhub/utils"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser persists a new user record. The external id and email are
// both unique; a collision on either is a conflict, not a storage failure.
func (s *DefaultUserService) RegisterUser(u models.User) (*models.User, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByUserID(u.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	byEmail, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if byEmail != nil {
		return nil, ErrEmailTaken
	}

	if err := s.Repo.Create(&u); err != nil {
		// The unique index may still fire if two registrations race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		logger.Error("Failed to register user", zap.Int64("userID", u.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", zap.Int64("userID", u.UserID), zap.String("email", u.Email))
	return &u, nil
}

// GetUserByID fetches a user by their external id.
func (s *DefaultUserService) GetUserByID(userID int64) (*models.User, error) {
	u, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetAllUsers returns every registered user.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// DeleteUser hard-deletes a user by their external id. Rooms the user
// occupies are left untouched.
func (s *DefaultUserService) DeleteUser(userID int64) error {
	if err := s.Repo.Delete(userID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}
		return err
	}
	utils.GetLogger().Info("User deleted", zap.Int64("userID", userID))
	return nil
}
