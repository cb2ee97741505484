package feedbackRepo

import "stayhub/models"

// FeedbackRepository defines persistence operations for feedback entries.
type FeedbackRepository interface {
	Create(fb *models.Feedback) error
	GetAll() ([]models.Feedback, error)

	// UpdateBody replaces the free-text body of an entry, leaving the
	// rating and authorship untouched.
	UpdateBody(id, body string) (*models.Feedback, error)
	Delete(id string) error
}
