package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayhub/handlers"
	"stayhub/middleware"
)

// RegisterPublicRoutes registers registration, room browsing and booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.GET("/rooms", hb.ListRoomsHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
		api.DELETE("/bookings/:roomNumber", hb.CheckoutHandler)
		api.GET("/bookings/user/:userId", hb.ListUserBookingsHandler)
	}
}

// RegisterFeedbackRoutes registers the feedback lifecycle endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.POST("", hb.CreateFeedbackHandler)
		api.GET("", hb.ListFeedbackHandler)
		api.PUT("/:id", hb.UpdateFeedbackHandler)
		api.DELETE("/:id", hb.DeleteFeedbackHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations behind the
// admin authorization predicate.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminKeyMiddleware())
		adminGroup.GET("/users", hb.GetAllUsersHandler)
		adminGroup.GET("/users/:userId", hb.GetUserByIDHandler)
		adminGroup.DELETE("/users/:userId", hb.DeleteUserHandler)
		adminGroup.POST("/room", hb.CreateRoomHandler)
		adminGroup.POST("/room/photos", hb.UploadRoomPhotosHandler)
		adminGroup.GET("/bookings", hb.ListBookingsHandler)
		adminGroup.GET("/bookings/:status", hb.ListBookingsByStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stayhub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
