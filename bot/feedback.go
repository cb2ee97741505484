package bot

import (
	"context"
	"errors"
	"strings"

	"stayhub/bot/client"
	"stayhub/models"
)

func (e *Engine) feedbackStep(ctx context.Context, sess *models.Session, from Sender, message string) ([]Reply, error) {
	switch sess.Step {
	case StepFeedbackRating:
		rating, ok := validRating(message)
		if !ok {
			return []Reply{text("Please enter a valid rating between 1 and 5.")}, nil
		}
		sess.FeedbackData = models.FeedbackDraft{Rating: rating}
		sess.Step = StepFeedbackMessage
		return []Reply{text("Please share your feedback:")}, nil

	case StepFeedbackMessage:
		body, ok := validFeedbackBody(message)
		if !ok {
			return []Reply{text("Please provide meaningful feedback (at least 10 characters).")}, nil
		}
		rating := sess.FeedbackData.Rating
		sess.ResetFlow()

		err := e.api.SubmitFeedback(ctx, models.Feedback{
			UserID:   from.ID,
			Name:     strings.TrimSpace(from.FirstName + " " + from.LastName),
			Rating:   rating,
			Feedback: body,
		})
		if err != nil {
			return []Reply{text("❌ Failed to submit feedback. Please try again later.")}, nil
		}
		return []Reply{text("✅ Thank you for your feedback!")}, nil
	}
	return nil, nil
}

// viewFeedbackCommand loads all feedback into the session and renders the
// first entry with pagination and manage buttons.
func (e *Engine) viewFeedbackCommand(ctx context.Context, sess *models.Session) ([]Reply, error) {
	feedbacks, err := e.api.ListFeedback(ctx)
	if err != nil {
		return []Reply{text("❌ Error fetching feedback. Please try again later.")}, nil
	}
	if len(feedbacks) == 0 {
		return []Reply{text("No feedback found.")}, nil
	}

	sess.Feedbacks = feedbacks
	sess.FeedbackIndex = 0
	return []Reply{feedbackPage(feedbacks[0], false)}, nil
}

func feedbackPage(fb models.Feedback, edit bool) Reply {
	return Reply{
		Text: formatFeedbackMessage(fb),
		Inline: [][]Button{
			{
				{Text: "⬅️ Previous", Data: "prev_feedback"},
				{Text: "➡️ Next", Data: "next_feedback"},
			},
			{
				{Text: "🗑️ Delete", Data: "delete_feedback_" + fb.ID},
				{Text: "✏️ Update", Data: "update_feedback_" + fb.ID},
			},
		},
		Edit: edit,
	}
}

// pageFeedback moves the loaded-feedback cursor circularly and re-renders the
// current entry in place.
func (e *Engine) pageFeedback(sess *models.Session, delta int) []Reply {
	n := len(sess.Feedbacks)
	if n == 0 {
		return []Reply{text("No feedback loaded. Use /view_feedback first.")}
	}
	sess.FeedbackIndex = (sess.FeedbackIndex + delta + n) % n
	return []Reply{feedbackPage(sess.Feedbacks[sess.FeedbackIndex], true)}
}

func (e *Engine) deleteFeedbackAction(ctx context.Context, sess *models.Session, id string) ([]Reply, error) {
	err := e.api.DeleteFeedback(ctx, id)
	if errors.Is(err, client.ErrNotFound) {
		return []Reply{text("❌ Feedback not found.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error deleting feedback. Please try again later.")}, nil
	}
	return []Reply{text("✅ Feedback deleted successfully.")}, nil
}

func (e *Engine) updateFeedbackAction(sess *models.Session, id string) []Reply {
	sess.Step = StepUpdateFeedback
	sess.FeedbackID = id
	return []Reply{text("Please enter the updated feedback:")}
}

func (e *Engine) updateFeedbackStep(ctx context.Context, sess *models.Session, message string) ([]Reply, error) {
	body, ok := validFeedbackBody(message)
	if !ok {
		return []Reply{text("Please provide meaningful feedback (at least 10 characters).")}, nil
	}
	id := sess.FeedbackID
	sess.ResetFlow()

	err := e.api.UpdateFeedback(ctx, id, body)
	if errors.Is(err, client.ErrNotFound) {
		return []Reply{text("❌ Feedback not found.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error updating feedback. Please try again later.")}, nil
	}
	return []Reply{text("✅ Feedback updated successfully.")}, nil
}
