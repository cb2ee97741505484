package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	GetAllUsersHandler  gin.HandlerFunc
	GetUserByIDHandler  gin.HandlerFunc
	DeleteUserHandler   gin.HandlerFunc

	// Room endpoints.
	ListRoomsHandler        gin.HandlerFunc
	CreateRoomHandler       gin.HandlerFunc
	UploadRoomPhotosHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler        gin.HandlerFunc
	CheckoutHandler             gin.HandlerFunc
	ListUserBookingsHandler     gin.HandlerFunc
	ListBookingsHandler         gin.HandlerFunc
	ListBookingsByStatusHandler gin.HandlerFunc

	// Feedback endpoints.
	CreateFeedbackHandler gin.HandlerFunc
	ListFeedbackHandler   gin.HandlerFunc
	UpdateFeedbackHandler gin.HandlerFunc
	DeleteFeedbackHandler gin.HandlerFunc
}
