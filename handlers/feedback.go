package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/feedback"
)

// FeedbackHandler exposes the feedback lifecycle.
type FeedbackHandler struct {
	FeedbackService feedback.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{FeedbackService: fs}
}

type feedbackRequest struct {
	UserID   *int64 `json:"userId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Rating   *int   `json:"rating" binding:"required"`
	Feedback string `json:"feedback" binding:"required"`
}

// CreateFeedbackHandler handles POST /api/feedback.
func (h *FeedbackHandler) CreateFeedbackHandler(c *gin.Context) {
	logger := getLogger(c)

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	created, err := h.FeedbackService.SubmitFeedback(models.Feedback{
		UserID:   *req.UserID,
		Name:     req.Name,
		Rating:   *req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		if err == feedback.ErrInvalidRating {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to submit feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully", "feedback": created})
}

// ListFeedbackHandler handles GET /api/feedback.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	feedbacks, err := h.FeedbackService.ListFeedback()
	if err != nil {
		getLogger(c).Error("Failed to fetch feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	c.JSON(http.StatusOK, feedbacks)
}

// UpdateFeedbackHandler handles PUT /api/feedback/:id, replacing body text only.
func (h *FeedbackHandler) UpdateFeedbackHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback is required"})
		return
	}

	updated, err := h.FeedbackService.UpdateFeedback(id, req.Feedback)
	if err != nil {
		if err == feedback.ErrFeedbackNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		getLogger(c).Error("Failed to update feedback", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated successfully", "feedback": updated})
}

// DeleteFeedbackHandler handles DELETE /api/feedback/:id.
func (h *FeedbackHandler) DeleteFeedbackHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.FeedbackService.DeleteFeedback(id); err != nil {
		if err == feedback.ErrFeedbackNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		getLogger(c).Error("Failed to delete feedback", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
