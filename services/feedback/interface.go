package feedback

import "stayhub/models"

// FeedbackService defines feedback lifecycle operations.
type FeedbackService interface {
	SubmitFeedback(fb models.Feedback) (*models.Feedback, error)
	ListFeedback() ([]models.Feedback, error)
	UpdateFeedback(id, body string) (*models.Feedback, error)
	DeleteFeedback(id string) error
}
