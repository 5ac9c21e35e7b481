package config

import (
	"Meal-Planner-Backend/internal/api/handlers"
	"Meal-Planner-Backend/internal/api/routes"
	"Meal-Planner-Backend/internal/middleware"
	"Meal-Planner-Backend/internal/utils"
	"Meal-Planner-Backend/internal/utils/storage"
	"Meal-Planner-Backend/pkg/category"
	"Meal-Planner-Backend/pkg/jwt"
	"Meal-Planner-Backend/pkg/midtrans"
	"Meal-Planner-Backend/pkg/recipe"
	"Meal-Planner-Backend/pkg/session"
	"Meal-Planner-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	fileStorage := storage.NewStorage()
	if utils.GetConfig("AWS_S3_BUCKET") == "" {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		app.Static("/uploads", uploadDir)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	sessionRepository := session.NewSessionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		userRepository,
	)
	recipeService := recipe.NewRecipeService(recipeRepository, fileStorage)
	categoryService := category.NewCategoryService(categoryRepository, recipeRepository)
	sessionService := session.NewSessionService(sessionRepository, fileStorage)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	sessionHandler := handlers.NewSessionHandler(sessionService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		CategoryHandler: categoryHandler,
		SessionHandler:  sessionHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
