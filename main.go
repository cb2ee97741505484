package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/database"
	feedbackRepoPkg "stayhub/database/repository/feedback"
	roomRepoPkg "stayhub/database/repository/room"
	userRepoPkg "stayhub/database/repository/user"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/feedback"
	"stayhub/services/room"
	"stayhub/services/user"
	"stayhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	storageService, err := utils.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	roomService := &room.DefaultRoomService{Repo: roomRepo, Cache: utils.GetCacheClient()}
	feedbackService := &feedback.DefaultFeedbackService{Repo: feedbackRepo}

	// Handlers.
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService, storageService)
	bookingHandler := handlers.NewBookingHandler(roomService, userService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterUserHandler: userHandler.RegisterUserHandler,
		GetAllUsersHandler:  userHandler.GetAllUsersHandler,
		GetUserByIDHandler:  userHandler.GetUserByIDHandler,
		DeleteUserHandler:   userHandler.DeleteUserHandler,

		// Room endpoints.
		ListRoomsHandler:        roomHandler.ListRoomsHandler,
		CreateRoomHandler:       roomHandler.CreateRoomHandler,
		UploadRoomPhotosHandler: roomHandler.UploadRoomPhotosHandler,

		// Booking endpoints.
		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		CheckoutHandler:             bookingHandler.CheckoutHandler,
		ListUserBookingsHandler:     bookingHandler.ListUserBookingsHandler,
		ListBookingsHandler:         bookingHandler.ListBookingsHandler,
		ListBookingsByStatusHandler: bookingHandler.ListBookingsByStatusHandler,

		// Feedback endpoints.
		CreateFeedbackHandler: feedbackHandler.CreateFeedbackHandler,
		ListFeedbackHandler:   feedbackHandler.ListFeedbackHandler,
		UpdateFeedbackHandler: feedbackHandler.UpdateFeedbackHandler,
		DeleteFeedbackHandler: feedbackHandler.DeleteFeedbackHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
