package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/user"
)

// UserHandler exposes user registration and admin user management.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// registerRequest uses pointers for numerics so that a present zero value is
// distinguishable from an absent field.
type registerRequest struct {
	Name         string `json:"name" binding:"required"`
	Age          *int   `json:"age" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Address      string `json:"address" binding:"required"`
	StayDuration *int   `json:"stayDuration" binding:"required"`
	UserID       *int64 `json:"userId" binding:"required"`
}

// RegisterUserHandler handles POST /api/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	u := models.User{
		UserID:       *req.UserID,
		Name:         req.Name,
		Age:          *req.Age,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		StayDuration: *req.StayDuration,
	}

	registered, err := h.UserService.RegisterUser(u)
	if err != nil {
		switch err {
		case user.ErrEmailTaken, user.ErrAlreadyRegistered:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Registration failed", zap.Int64("userID", u.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": registered})
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		getLogger(c).Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByIDHandler handles GET /api/admin/users/:userId.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	u, err := h.UserService.GetUserByID(userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		getLogger(c).Error("Failed to fetch user", zap.Int64("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUserHandler handles DELETE /api/admin/users/:userId. The delete is
// hard; rooms the user occupies are not released.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(userID); err != nil {
		if err == user.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		getLogger(c).Error("Failed to delete user", zap.Int64("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// parseUserID reads the :userId path param as an int64.
func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return userID, true
}
