// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/config"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/controllers"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/database"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/middleware"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/routes"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/store"
	"github.com/amirulkanak/delibox-parcel-delivery-backend/utils"
)

func main() {
	// Load environment variables from .env file
	config.LoadEnv()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if config.Get("APP_ENV", "development") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService; nil means email is disabled
	emailService := utils.NewEmailService()
	if emailService == nil {
		logger.Warn().Msg("POSTMARK_API_TOKEN not set, email disabled")
	}

	// Connect to MongoDB
	client, err := database.Connect(config.Get("MONGODB_URI", "mongodb://localhost:27017"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Fatal().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()
	logger.Info().Msg("connected to MongoDB")

	db := client.Database(config.Get("MONGODB_DB", "delibox"))
	if err := database.EnsureIndexes(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Initialize stores
	userStore := store.NewMongoUserStore(db)
	parcelStore := store.NewMongoParcelStore(db)
	reviewStore := store.NewMongoReviewStore(db)

	// Initialize controllers
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(userStore)
	parcelController := controllers.NewParcelController(parcelStore, userStore, emailService, logger)
	reviewController := controllers.NewReviewController(reviewStore, userStore)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	// Register routes
	routes.RegisterRoutes(router, authController, userController, parcelController, reviewController)

	// CORS allowlist for the frontend origins
	allowedOrigins := strings.Split(config.Get("FRONTEND_URLS", "http://localhost:5173"), ",")
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowCredentials(),
	)

	// Start the server
	port := config.Get("PORT", "5000")
	logger.Info().Str("port", port).Msg("server is online")
	if err := http.ListenAndServe(":"+port, cors(router)); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
