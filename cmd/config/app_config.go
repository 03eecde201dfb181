package config

import (
	"Melt-App/internal/api/handlers"
	"Melt-App/internal/api/routes"
	"Melt-App/internal/middleware"
	"Melt-App/internal/utils"
	"Melt-App/internal/utils/storage"
	"Melt-App/pkg/collection"
	"Melt-App/pkg/community"
	"Melt-App/pkg/journal"
	"Melt-App/pkg/jwt"
	"Melt-App/pkg/mood"
	"Melt-App/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the application. db may be nil: the listener still serves the
// AI and health routes while persistence-backed routes answer 503.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	journalRepository := journal.NewJournalRepository(db)
	communityRepository := community.NewCommunityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	moodService := mood.NewMoodService()
	collectionService := collection.NewCollectionService(collectionRepository)
	journalService := journal.NewJournalService(journalRepository)
	communityService := community.NewCommunityService(communityRepository, s3)

	// Handler
	aiHandler := handlers.NewAIHandler(moodService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, validator)
	journalHandler := handlers.NewJournalHandler(journalService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	adminHandler := handlers.NewAdminHandler(userService, collectionService, journalService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		AIHandler:         aiHandler,
		UserHandler:       userHandler,
		CollectionHandler: collectionHandler,
		JournalHandler:    journalHandler,
		CommunityHandler:  communityHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		DatabaseReady:     db != nil,
	}
	routesConfig.Setup()
	return app, nil
}
