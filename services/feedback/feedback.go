package feedback

import (
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	feedbackRepo "stayhub/database/repository/feedback"
	"stayhub/models"
	"stayhub/utils"
)

var (
	// ErrFeedbackNotFound signals an operation on a missing entry.
	ErrFeedbackNotFound = errors.New("feedback not found")
	// ErrInvalidRating signals a rating outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// DefaultFeedbackService is the production implementation of FeedbackService.
type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}

// SubmitFeedback stores a new feedback entry and assigns it an id.
func (s *DefaultFeedbackService) SubmitFeedback(fb models.Feedback) (*models.Feedback, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, ErrInvalidRating
	}

	fb.ID = uuid.NewString()
	if err := s.Repo.Create(&fb); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Feedback submitted",
		zap.String("id", fb.ID), zap.Int64("userID", fb.UserID), zap.Int("rating", fb.Rating))
	return &fb, nil
}

// ListFeedback returns all feedback entries.
func (s *DefaultFeedbackService) ListFeedback() ([]models.Feedback, error) {
	return s.Repo.GetAll()
}

// UpdateFeedback replaces the body text of an entry.
func (s *DefaultFeedbackService) UpdateFeedback(id, body string) (*models.Feedback, error) {
	fb, err := s.Repo.UpdateBody(id, body)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return fb, nil
}

// DeleteFeedback hard-deletes an entry.
func (s *DefaultFeedbackService) DeleteFeedback(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrFeedbackNotFound
		}
		return err
	}
	utils.GetLogger().Info("Feedback deleted", zap.String("id", id))
	return nil
}
