package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhub/models"
	"stayhub/services/room"
	"stayhub/services/user"
)

// BookingHandler exposes booking operations over rooms.
type BookingHandler struct {
	RoomService room.RoomService
	UserService user.UserService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(rs room.RoomService, us user.UserService) *BookingHandler {
	return &BookingHandler{RoomService: rs, UserService: us}
}

type bookingRequest struct {
	UserID     *int64       `json:"userId" binding:"required"`
	RoomNumber string       `json:"roomNumber" binding:"required"`
	UserData   *models.User `json:"userData"`
}

// CreateBookingHandler handles POST /api/bookings. The occupancy check and
// the occupant write are a single conditional update, so concurrent bookings
// for the same room cannot both succeed.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and roomNumber are required"})
		return
	}

	if _, err := h.UserService.GetUserByID(*req.UserID); err != nil {
		if err == user.ErrUserNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not registered"})
			return
		}
		logger.Error("Failed to verify user", zap.Int64("userID", *req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	booked, err := h.RoomService.BookRoom(req.RoomNumber, *req.UserID)
	if err != nil {
		switch err {
		case room.ErrRoomNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case room.ErrRoomOccupied:
			c.JSON(http.StatusConflict, gin.H{"error": "Room is already occupied"})
		default:
			logger.Error("Booking failed", zap.String("roomNumber", req.RoomNumber), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book room"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room booked successfully", "status": "success", "room": booked})
}

// CheckoutHandler handles DELETE /api/bookings/:roomNumber, vacating an
// occupied room.
func (h *BookingHandler) CheckoutHandler(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	released, err := h.RoomService.ReleaseRoom(roomNumber)
	if err != nil {
		switch err {
		case room.ErrRoomNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case room.ErrRoomVacant:
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not occupied"})
		default:
			getLogger(c).Error("Checkout failed", zap.String("roomNumber", roomNumber), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release room"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room released successfully", "room": released})
}

// ListUserBookingsHandler handles GET /api/bookings/user/:userId.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	rooms, err := h.RoomService.ListUserBookings(userID)
	if err != nil {
		getLogger(c).Error("Failed to fetch bookings", zap.Int64("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// ListBookingsHandler handles GET /api/admin/bookings, returning occupied rooms.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	rooms, err := h.RoomService.ListOccupied()
	if err != nil {
		getLogger(c).Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// ListBookingsByStatusHandler handles GET /api/admin/bookings/:status.
func (h *BookingHandler) ListBookingsByStatusHandler(c *gin.Context) {
	status := c.Param("status")

	rooms, err := h.RoomService.ListByStatus(status)
	if err != nil {
		if err == room.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		getLogger(c).Error("Failed to fetch bookings", zap.String("status", status), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}
